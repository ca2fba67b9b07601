package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/client/client"
	"github.com/dmitrijs2005/devshowcase/internal/client/repositories/session"
	"github.com/dmitrijs2005/devshowcase/internal/logging"
	"github.com/google/uuid"
)

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithRequestIDs replaces the uuid generator used for Action.RequestID.
func WithRequestIDs(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// WithInitialState seeds the store, mostly for tests.
func WithInitialState(st State) Option {
	return func(s *Store) { s.state = st }
}

// Store owns State and is its only writer.
type Store struct {
	api      client.API
	sessions session.Repository
	logger   logging.Logger
	newID    func() string

	// sessionMu orders persistence writes and their fulfilled dispatch
	// against Logout.
	sessionMu sync.Mutex

	mu     sync.RWMutex
	state  State
	subs   map[int]chan State
	nextID int
}

var _ client.TokenSource = (*Store)(nil)

func New(api client.API, sessions session.Repository, opts ...Option) *Store {
	s := &Store{
		api:      api,
		sessions: sessions,
		logger:   logging.Nop(),
		newID:    uuid.NewString,
		subs:     make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a and notifies subscribers. Transitions are serialised.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	for _, ch := range s.subs {
		publish(ch, s.state)
	}
	return s.state
}

// publish replaces whatever the subscriber has not read yet with st.
func publish(ch chan State, st State) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth.Token
}

// Subscribe returns a channel that always holds the latest state after a
// change. Intermediate states may be skipped by slow readers. Call the
// returned function to unsubscribe; it closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// Bootstrap restores a persisted session. A stored token makes the session
// authenticated straight away; the profile is revalidated by the Supervisor.
func (s *Store) Bootstrap(ctx context.Context) error {
	snap, err := s.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if exp, err := snap.ExpiresAt(); err == nil && snap.Expired(time.Now()) {
		s.logger.Warn(ctx, "stored token has expired", "expired_at", exp)
	}

	s.Dispatch(Action{Type: AuthRestore, Payload: snap})
	s.logger.Debug(ctx, "session restored", "authenticated", !snap.Empty())
	return nil
}

// run drives one asynchronous operation through its lifecycle. persist, when
// set, runs after a successful call and before the fulfilled dispatch; its
// failure rejects the operation, except ErrSessionChanged which settles
// nothing: the session the request belonged to is gone.
func run[T any](ctx context.Context, s *Store, typ ActionType, fallback string,
	call func(ctx context.Context) (T, error), persist func(ctx context.Context, v T) error) (T, error) {

	id := s.newID()
	log := s.logger.With("action", string(typ), "request_id", id)

	s.Dispatch(Action{Type: typ, Phase: PhasePending, RequestID: id})
	log.Debug(ctx, "request pending")

	v, err := call(ctx)
	if err == nil && persist != nil {
		s.sessionMu.Lock()
		defer s.sessionMu.Unlock()

		if perr := persist(ctx, v); errors.Is(perr, ErrSessionChanged) {
			log.Info(ctx, "request dropped, session changed")
			var zero T
			return zero, perr
		} else if perr != nil {
			err = fmt.Errorf("persist session: %w", perr)
		}
	}
	if err != nil {
		msg := client.Message(err, fallback)
		s.Dispatch(Action{Type: typ, Phase: PhaseRejected, RequestID: id, Error: msg})
		log.Warn(ctx, "request rejected", "error", msg)
		var zero T
		return zero, err
	}

	s.Dispatch(Action{Type: typ, Phase: PhaseFulfilled, RequestID: id, Payload: v})
	log.Info(ctx, "request fulfilled")
	return v, nil
}
