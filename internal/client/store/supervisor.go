package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/devshowcase/internal/client/client"
	"github.com/dmitrijs2005/devshowcase/internal/logging"
)

// Supervisor revalidates the session: it calls GetProfile at start and every
// time a new token becomes authenticated. It never clears the token itself.
type Supervisor struct {
	store  *Store
	logger logging.Logger
}

func NewSupervisor(st *Store, logger logging.Logger) *Supervisor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Supervisor{store: st, logger: logger}
}

// Run blocks until ctx is done.
func (sv *Supervisor) Run(ctx context.Context) error {
	changes, unsubscribe := sv.store.Subscribe()
	defer unsubscribe()

	var seen string
	check := func(st State) {
		if !st.Auth.IsAuthenticated || st.Auth.Token == "" {
			seen = ""
			return
		}
		if st.Auth.Token == seen {
			return
		}
		seen = st.Auth.Token
		sv.refresh(ctx)
	}

	check(sv.store.State())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case st, ok := <-changes:
			if !ok {
				return nil
			}
			check(st)
		}
	}
}

func (sv *Supervisor) refresh(ctx context.Context) {
	if _, err := sv.store.GetProfile(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if errors.Is(err, ErrSessionChanged) {
			sv.logger.Debug(ctx, "profile refresh outlived its session")
			return
		}
		if errors.Is(err, client.ErrUnauthorized) {
			sv.logger.Warn(ctx, "stored session was rejected by the server", "error", err)
			return
		}
		sv.logger.Warn(ctx, "profile refresh failed", "error", err)
	}
}
