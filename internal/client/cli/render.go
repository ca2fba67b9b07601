package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

const dateLayout = "2006-01-02"

func printProjects(w io.Writer, items []models.Project) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tTECHNOLOGIES\tCREATED")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.AuthorName(),
			strings.Join(p.Technologies, ", "), p.CreatedAt.Format(dateLayout))
	}
	_ = tw.Flush()
}

func printProject(w io.Writer, p models.Project, owner bool) {
	title := p.Title
	if owner {
		title += " (yours)"
	}
	fmt.Fprintf(w, "%s\n%s\n\n%s\n\n", title, strings.Repeat("=", len(title)), p.Description)
	if name := p.AuthorName(); name != "" {
		fmt.Fprintln(w, "Author:      ", name)
	}
	fmt.Fprintln(w, "Technologies:", strings.Join(p.Technologies, ", "))
	if p.GithubURL != "" {
		fmt.Fprintln(w, "GitHub:      ", p.GithubURL)
	}
	if p.LiveURL != "" {
		fmt.Fprintln(w, "Live:        ", p.LiveURL)
	}
	if p.ImageURL != "" {
		fmt.Fprintln(w, "Image:       ", p.ImageURL)
	}
	fmt.Fprintln(w, "Created:     ", p.CreatedAt.Format(dateLayout))
}

func printUsers(w io.Writer, items []models.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tNAME\tLOCATION\tSKILLS")
	for _, u := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Username, u.FullName, u.Location, strings.Join(u.Skills, ", "))
	}
	_ = tw.Flush()
}

func printUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "%s (@%s)\n", u.FullName, u.Username)
	if u.Bio != "" {
		fmt.Fprintln(w, u.Bio)
	}
	if u.Location != "" {
		fmt.Fprintln(w, "Location:", u.Location)
	}
	if u.Website != "" {
		fmt.Fprintln(w, "Website: ", u.Website)
	}
	if len(u.Skills) > 0 {
		fmt.Fprintln(w, "Skills:  ", strings.Join(u.Skills, ", "))
	}
	if !u.JoinedDate.IsZero() {
		fmt.Fprintln(w, "Joined:  ", u.JoinedDate.Format(dateLayout))
	}
}

func printComments(w io.Writer, st store.State, items []models.Comment) {
	fmt.Fprintf(w, "Comments (%d):\n", len(items))
	for _, c := range items {
		mark := ""
		if store.SelectIsCommentAuthor(st, c) {
			mark = " (yours)"
		}
		fmt.Fprintf(w, "  [%s] %s, %s%s\n    %s\n", c.ID, c.Author.FullName, c.CreatedAt.Format(dateLayout), mark, c.Content)
	}
}
