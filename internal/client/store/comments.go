package store

import (
	"context"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// FetchCommentsByProject replaces the comment list with one project's page.
func (s *Store) FetchCommentsByProject(ctx context.Context, projectID string, q models.CommentQuery) (models.CommentPage, error) {
	return run(ctx, s, CommentsFetchByProject, "Failed to fetch comments",
		func(ctx context.Context) (models.CommentPage, error) {
			return s.api.GetCommentsByProject(ctx, projectID, q)
		},
		nil)
}

func (s *Store) CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	if err := models.Validate(req); err != nil {
		return models.Comment{}, err
	}
	return run(ctx, s, CommentsCreate, "Failed to create comment",
		func(ctx context.Context) (models.Comment, error) { return s.api.CreateComment(ctx, req) },
		nil)
}

func (s *Store) UpdateComment(ctx context.Context, id string, req models.UpdateCommentRequest) (models.Comment, error) {
	if err := models.Validate(req); err != nil {
		return models.Comment{}, err
	}
	return run(ctx, s, CommentsUpdate, "Failed to update comment",
		func(ctx context.Context) (models.Comment, error) { return s.api.UpdateComment(ctx, id, req) },
		nil)
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	_, err := run(ctx, s, CommentsDelete, "Failed to delete comment",
		func(ctx context.Context) (string, error) { return s.api.DeleteComment(ctx, id) },
		nil)
	return err
}

func (s *Store) ClearCommentsError() {
	s.Dispatch(Action{Type: CommentsClearError})
}

// ClearComments drops the list and its pagination.
func (s *Store) ClearComments() {
	s.Dispatch(Action{Type: CommentsClear})
}
