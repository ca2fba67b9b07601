package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Snapshot is what survives a restart. A zero Snapshot means "signed out".
type Snapshot struct {
	Token string
	User  *models.User
}

// Empty reports whether no session is stored.
func (s Snapshot) Empty() bool {
	return s.Token == ""
}

var ErrNoExpiry = errors.New("token carries no expiry")

// ExpiresAt reads the exp claim of the stored token without verifying the
// signature. The server stays the authority; this is only used to warn early.
func (s Snapshot) ExpiresAt() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// Expired is true when the token has an exp claim in the past.
func (s Snapshot) Expired(now time.Time) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return false
	}
	return !now.Before(exp)
}

type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	// Save writes token and user together.
	Save(ctx context.Context, token string, user models.User) error
	// SaveUser replaces the stored user and keeps the token.
	SaveUser(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}
