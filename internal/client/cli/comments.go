package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/client/views"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

var errNotCommentAuthor = errors.New("you can only change your own comments")

func (a *App) Comments(ctx context.Context, projectID string) error {
	if _, err := a.store.FetchCommentsByProject(ctx, projectID, models.CommentQuery{Limit: listLimit}); err != nil {
		return err
	}
	st := a.store.State()
	printComments(a.out, st, views.CommentsForProject(store.SelectComments(st), projectID))
	return nil
}

func (a *App) Comment(ctx context.Context, projectID string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Your comment", a.out)
	if err != nil {
		return err
	}
	c, err := a.store.CreateComment(ctx, models.CreateCommentRequest{Content: content, ProjectID: projectID})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment posted:", c.ID)
	return nil
}

// ownComment finds id among the loaded comments and checks authorship.
func (a *App) ownComment(id string) (models.Comment, error) {
	st := a.store.State()
	items := store.SelectComments(st)
	i := slices.IndexFunc(items, func(c models.Comment) bool { return c.ID == id })
	if i < 0 {
		return models.Comment{}, fmt.Errorf("comment %s is not loaded, list the project's comments first", id)
	}
	if !store.SelectIsCommentAuthor(st, items[i]) {
		return models.Comment{}, errNotCommentAuthor
	}
	return items[i], nil
}

func (a *App) EditComment(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cur, err := a.ownComment(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Current:", cur.Content)
	content, err := GetMultiline(a.reader, "New text", a.out)
	if err != nil {
		return err
	}
	if _, err := a.store.UpdateComment(ctx, id, models.UpdateCommentRequest{Content: content}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment updated")
	return nil
}

func (a *App) RemoveComment(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if _, err := a.ownComment(id); err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, "Delete comment "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.store.DeleteComment(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment deleted")
	return nil
}
