package store

import (
	"context"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func (s *Store) FetchUsers(ctx context.Context, q models.UserQuery) (models.UserPage, error) {
	return run(ctx, s, UsersFetch, "Failed to fetch users",
		func(ctx context.Context) (models.UserPage, error) { return s.api.GetUsers(ctx, q) },
		nil)
}

func (s *Store) FetchUserByID(ctx context.Context, id string) (models.User, error) {
	return run(ctx, s, UsersFetchByID, "Failed to fetch user",
		func(ctx context.Context) (models.User, error) { return s.api.GetUserByID(ctx, id) },
		nil)
}

func (s *Store) FetchUserByUsername(ctx context.Context, username string) (models.User, error) {
	return run(ctx, s, UsersFetchByUsername, "Failed to fetch user",
		func(ctx context.Context) (models.User, error) { return s.api.GetUserByUsername(ctx, username) },
		nil)
}

func (s *Store) ClearUsersError() {
	s.Dispatch(Action{Type: UsersClearError})
}

func (s *Store) ClearCurrentUser() {
	s.Dispatch(Action{Type: UsersClearCurrent})
}
