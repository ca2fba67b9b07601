package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/client/views"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

var errNotOwner = errors.New("you can only change your own projects")

// Home shows the newest projects and developers.
func (a *App) Home(ctx context.Context) error {
	if _, err := a.store.FetchProjects(ctx, models.ProjectQuery{Limit: listLimit}); err != nil {
		return err
	}
	if _, err := a.store.FetchUsers(ctx, models.UserQuery{Limit: listLimit}); err != nil {
		return err
	}
	st := a.store.State()

	fmt.Fprintln(a.out, "Featured projects:")
	printProjects(a.out, views.HomeProjects(store.SelectProjects(st), "", a.config.HomePreviewProjects))
	fmt.Fprintln(a.out, "Featured developers:")
	printUsers(a.out, views.HomeUsers(store.SelectUsers(st), "", a.config.HomePreviewUsers))
	return nil
}

func (a *App) Projects(ctx context.Context, query string) error {
	if _, err := a.store.FetchProjects(ctx, models.ProjectQuery{Limit: listLimit}); err != nil {
		return err
	}
	items := views.ListProjects(store.SelectProjects(a.store.State()), query, a.projectSort)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No projects found")
		return nil
	}
	fmt.Fprintf(a.out, "%d project(s), sorted by %s\n", len(items), a.projectSort)
	printProjects(a.out, items)
	return nil
}

// Sort sets the listing order: "sort <key>" for projects, "sort users <key>"
// for developers.
func (a *App) Sort(_ context.Context, args []string) error {
	if len(args) == 2 && args[0] == "users" {
		switch key := views.UserSort(args[1]); key {
		case views.UsersByName, views.UsersByRecent, views.UsersByUsername:
			a.userSort = key
			fmt.Fprintln(a.out, "Developers sorted by", key)
			return nil
		}
		return fmt.Errorf("unknown sort key %q (name|recent|username)", args[1])
	}
	if len(args) != 1 {
		printlnFn("Usage: sort <recent|title|author> | sort users <name|recent|username>")
		return nil
	}
	switch key := views.ProjectSort(args[0]); key {
	case views.ProjectsByRecent, views.ProjectsByTitle, views.ProjectsByAuthor:
		a.projectSort = key
		fmt.Fprintln(a.out, "Projects sorted by", key)
		return nil
	}
	return fmt.Errorf("unknown sort key %q (recent|title|author)", args[0])
}

func (a *App) Project(ctx context.Context, id string) error {
	if _, err := a.store.FetchProjectByID(ctx, id); err != nil {
		return err
	}
	st := a.store.State()
	p, found := views.ResolveProject(store.SelectCurrentProject(st), store.SelectProjects(st), id)
	if !found {
		return fmt.Errorf("project %s not found", id)
	}
	printProject(a.out, p, store.SelectIsOwner(st, p))

	if _, err := a.store.FetchCommentsByProject(ctx, id, models.CommentQuery{Limit: listLimit}); err != nil {
		return err
	}
	st = a.store.State()
	printComments(a.out, st, views.CommentsForProject(store.SelectComments(st), id))
	return nil
}

func (a *App) Mine(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	u := store.SelectCurrentUser(a.store.State())
	if u == nil {
		return errors.New("profile not loaded yet, try again")
	}
	if _, err := a.store.FetchProjectsByUser(ctx, u.ID, models.ProjectQuery{Limit: listLimit}); err != nil {
		return err
	}
	items := views.SortProjects(views.ProjectsByAuthorID(store.SelectProjects(a.store.State()), u.ID), a.projectSort)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "You have not published any projects yet")
		return nil
	}
	printProjects(a.out, items)
	return nil
}

// openImage opens an optional image path; blank means none.
func openImage(path string) (*models.Upload, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &models.Upload{Filename: filepath.Base(path), Content: f}, func() { _ = f.Close() }, nil
}

func (a *App) NewProject(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var req models.CreateProjectRequest
	var err error
	if req.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if req.Description, err = GetMultiline(a.reader, "Description (at least 50 characters)", a.out); err != nil {
		return err
	}
	if req.GithubURL, err = a.prompt("GitHub URL (optional)"); err != nil {
		return err
	}
	if req.LiveURL, err = a.prompt("Live URL (optional)"); err != nil {
		return err
	}
	if req.Technologies, err = GetList(a.reader, "Technologies", a.out); err != nil {
		return err
	}
	imagePath, err := a.prompt("Image file (optional)")
	if err != nil {
		return err
	}

	if err := models.Validate(req); err != nil {
		return err
	}
	image, closeImage, err := openImage(imagePath)
	if err != nil {
		return err
	}
	defer closeImage()
	req.Image = image

	p, err := a.store.CreateProject(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project created:", p.ID)
	return nil
}

// link reads a URL field for editing: blank keeps it, "-" clears it.
func (a *App) link(label, current string) (*string, error) {
	v, err := a.prompt(fmt.Sprintf("%s [%s] (blank keeps current, - clears)", label, current))
	if err != nil || v == "" {
		return nil, err
	}
	if v == "-" {
		v = ""
	}
	return &v, nil
}

func (a *App) EditProject(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cur, err := a.store.FetchProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if !store.SelectIsOwner(a.store.State(), cur) {
		return errNotOwner
	}

	var req models.UpdateProjectRequest
	if req.Title, err = a.optional("Title", cur.Title); err != nil {
		return err
	}
	desc, err := GetMultiline(a.reader, "Description (blank keeps current)", a.out)
	if err != nil {
		return err
	}
	if desc != "" {
		req.Description = &desc
	}
	if req.GithubURL, err = a.link("GitHub URL", cur.GithubURL); err != nil {
		return err
	}
	if req.LiveURL, err = a.link("Live URL", cur.LiveURL); err != nil {
		return err
	}
	if req.Technologies, err = GetList(a.reader, "Technologies ["+strings.Join(cur.Technologies, ", ")+"] (blank keeps current)", a.out); err != nil {
		return err
	}
	imagePath, err := a.prompt("New image file (optional)")
	if err != nil {
		return err
	}

	if err := models.Validate(req); err != nil {
		return err
	}
	image, closeImage, err := openImage(imagePath)
	if err != nil {
		return err
	}
	defer closeImage()
	req.Image = image

	p, err := a.store.UpdateProject(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project updated")
	printProject(a.out, p, true)
	return nil
}

func (a *App) RemoveProject(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, "Delete project "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project deleted")
	return nil
}

func (a *App) Techs(ctx context.Context) error {
	if _, err := a.store.FetchProjects(ctx, models.ProjectQuery{Limit: listLimit}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(views.Technologies(store.SelectProjects(a.store.State())), ", "))
	return nil
}
