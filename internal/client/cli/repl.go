package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error

	Home(ctx context.Context) error
	Projects(ctx context.Context, query string) error
	Sort(ctx context.Context, args []string) error
	Project(ctx context.Context, id string) error
	Mine(ctx context.Context) error
	NewProject(ctx context.Context) error
	EditProject(ctx context.Context, id string) error
	RemoveProject(ctx context.Context, id string) error
	Techs(ctx context.Context) error

	Users(ctx context.Context, query string) error
	User(ctx context.Context, username string) error
	Skills(ctx context.Context) error

	Comments(ctx context.Context, projectID string) error
	Comment(ctx context.Context, projectID string) error
	EditComment(ctx context.Context, id string) error
	RemoveComment(ctx context.Context, id string) error
}

const (
	guestHelp = "Available commands: home, projects [query], sort <key>, project <id>, techs, " +
		"users [query], user <username>, skills, comments <projectId>, register, login, exit"
	memberHelp = "Available commands: home, projects [query], sort <key>, project <id>, mine, " +
		"newproject, editproject <id>, rmproject <id>, techs, users [query], user <username>, skills, " +
		"comments <projectId>, comment <projectId>, editcomment <id>, rmcomment <id>, " +
		"whoami, profile, avatar <path>, logout, exit"
)

// withArg calls fn with the first argument or prints usage when it is missing.
func withArg(args []string, usage string, fn func(string) error) error {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return nil
	}
	return fn(args[0])
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Command
// errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("showcase %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "avatar":
			cmdErr = withArg(args, "avatar <path>", func(p string) error { return a.Avatar(ctx, p) })

		case "home":
			cmdErr = a.Home(ctx)
		case "projects", "p":
			cmdErr = a.Projects(ctx, rest)
		case "sort":
			cmdErr = a.Sort(ctx, args)
		case "project":
			cmdErr = withArg(args, "project <id>", func(id string) error { return a.Project(ctx, id) })
		case "mine":
			cmdErr = a.Mine(ctx)
		case "newproject":
			cmdErr = a.NewProject(ctx)
		case "editproject":
			cmdErr = withArg(args, "editproject <id>", func(id string) error { return a.EditProject(ctx, id) })
		case "rmproject":
			cmdErr = withArg(args, "rmproject <id>", func(id string) error { return a.RemoveProject(ctx, id) })
		case "techs":
			cmdErr = a.Techs(ctx)

		case "users", "u":
			cmdErr = a.Users(ctx, rest)
		case "user":
			cmdErr = withArg(args, "user <username>", func(name string) error { return a.User(ctx, name) })
		case "skills":
			cmdErr = a.Skills(ctx)

		case "comments":
			cmdErr = withArg(args, "comments <projectId>", func(id string) error { return a.Comments(ctx, id) })
		case "comment":
			cmdErr = withArg(args, "comment <projectId>", func(id string) error { return a.Comment(ctx, id) })
		case "editcomment":
			cmdErr = withArg(args, "editcomment <id>", func(id string) error { return a.EditComment(ctx, id) })
		case "rmcomment":
			cmdErr = withArg(args, "rmcomment <id>", func(id string) error { return a.RemoveComment(ctx, id) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
