package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/client/views"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func (a *App) Users(ctx context.Context, query string) error {
	if _, err := a.store.FetchUsers(ctx, models.UserQuery{Limit: listLimit}); err != nil {
		return err
	}
	items := views.ListUsers(store.SelectUsers(a.store.State()), query, a.userSort)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No developers found")
		return nil
	}
	fmt.Fprintf(a.out, "%d developer(s), sorted by %s\n", len(items), a.userSort)
	printUsers(a.out, items)
	return nil
}

// User shows a developer's profile followed by their projects.
func (a *App) User(ctx context.Context, username string) error {
	u, err := a.store.FetchUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	printUser(a.out, u)

	if _, err := a.store.FetchProjectsByUser(ctx, u.ID, models.ProjectQuery{Limit: listLimit}); err != nil {
		return err
	}
	items := views.SortProjects(views.ProjectsByAuthorID(store.SelectProjects(a.store.State()), u.ID), views.ProjectsByRecent)
	fmt.Fprintf(a.out, "Projects (%d):\n", len(items))
	printProjects(a.out, items)
	return nil
}

func (a *App) Skills(ctx context.Context) error {
	if _, err := a.store.FetchUsers(ctx, models.UserQuery{Limit: listLimit}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(views.Skills(store.SelectUsers(a.store.State())), ", "))
	return nil
}
