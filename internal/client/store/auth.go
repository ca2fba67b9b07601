package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// ErrSessionChanged is returned by user operations that settle after the
// session they were started under was signed out or replaced. Their result is
// dropped.
var ErrSessionChanged = errors.New("session changed")

func (s *Store) persistAuth(ctx context.Context, res models.AuthResult) error {
	return s.sessions.Save(ctx, res.Token, res.User)
}

// persistUserFor stores u only while token is still the current session.
func (s *Store) persistUserFor(token string) func(context.Context, models.User) error {
	return func(ctx context.Context, u models.User) error {
		if token == "" || s.Token() != token {
			return ErrSessionChanged
		}
		return s.sessions.SaveUser(ctx, u)
	}
}

// runUser drives an operation that returns the signed-in user.
func (s *Store) runUser(ctx context.Context, typ ActionType, fallback string,
	call func(ctx context.Context) (models.User, error)) (models.User, error) {
	return run(ctx, s, typ, fallback, call, s.persistUserFor(s.Token()))
}

// Register creates an account and signs in with it.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	if err := models.Validate(req); err != nil {
		return models.AuthResult{}, err
	}
	return run(ctx, s, AuthRegister, "Registration failed",
		func(ctx context.Context) (models.AuthResult, error) { return s.api.Register(ctx, req) },
		s.persistAuth)
}

func (s *Store) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	if err := models.Validate(req); err != nil {
		return models.AuthResult{}, err
	}
	return run(ctx, s, AuthLogin, "Login failed",
		func(ctx context.Context) (models.AuthResult, error) { return s.api.Login(ctx, req) },
		s.persistAuth)
}

// GetProfile refreshes the signed-in user. A failure leaves the token alone.
func (s *Store) GetProfile(ctx context.Context) (models.User, error) {
	return s.runUser(ctx, AuthGetProfile, "Failed to get profile", s.api.GetProfile)
}

func (s *Store) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	if err := models.Validate(req); err != nil {
		return models.User{}, err
	}
	return s.runUser(ctx, AuthUpdateProfile, "Failed to update profile",
		func(ctx context.Context) (models.User, error) { return s.api.UpdateProfile(ctx, req) })
}

func (s *Store) UpdateAvatar(ctx context.Context, avatar models.Upload) (models.User, error) {
	return s.runUser(ctx, AuthUpdateAvatar, "Failed to update avatar",
		func(ctx context.Context) (models.User, error) { return s.api.UpdateAvatar(ctx, avatar) })
}

// Logout signs out locally without contacting the server. The in-memory
// session is cleared first; the returned error only reports a failure to
// erase the persisted copy. User operations still in flight are dropped.
func (s *Store) Logout(ctx context.Context) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.Dispatch(Action{Type: AuthLogout})
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to erase persisted session", "error", err)
		return err
	}
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *Store) ClearAuthError() {
	s.Dispatch(Action{Type: AuthClearError})
}
