package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// getPassword is swapped in tests.
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = a.prompt("Enter username"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Enter email"); err != nil {
		return err
	}
	if req.FullName, err = a.prompt("Enter full name"); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}

	res, err := a.store.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.FullName)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	var req models.LoginRequest
	var err error

	if req.Email, err = a.prompt("Enter email"); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}

	res, err := a.store.Login(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", res.User.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	st := a.store.State()
	if !store.SelectIsAuthenticated(st) {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	u := store.SelectCurrentUser(st)
	if u == nil {
		fmt.Fprintln(a.out, "Signed in, profile not loaded yet")
		return nil
	}
	printUser(a.out, *u)
	return nil
}

// optional reads a field; an empty answer leaves it unchanged (nil).
func (a *App) optional(label, current string) (*string, error) {
	v, err := a.prompt(fmt.Sprintf("%s [%s] (blank keeps current)", label, current))
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	var cur models.User
	if u := store.SelectCurrentUser(a.store.State()); u != nil {
		cur = *u
	}

	var req models.UpdateProfileRequest
	var err error
	if req.FullName, err = a.optional("Full name", cur.FullName); err != nil {
		return err
	}
	if req.Bio, err = a.optional("Bio", cur.Bio); err != nil {
		return err
	}
	if req.Location, err = a.optional("Location", cur.Location); err != nil {
		return err
	}
	if req.Website, err = a.optional("Website", cur.Website); err != nil {
		return err
	}
	if req.Skills, err = GetList(a.reader, "Skills (blank keeps current)", a.out); err != nil {
		return err
	}

	u, err := a.store.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	printUser(a.out, u)
	return nil
}

func (a *App) Avatar(ctx context.Context, path string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	u, err := a.store.UpdateAvatar(ctx, models.Upload{Filename: filepath.Base(path), Content: f})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Avatar updated:", u.Avatar)
	return nil
}
