package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// MemoryRepository keeps the session in process memory only.
type MemoryRepository struct {
	mu   sync.Mutex
	snap Snapshot
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.snap
	if snap.User != nil {
		u := snap.User.Clone()
		snap.User = &u
	}
	return snap, nil
}

func (r *MemoryRepository) Save(ctx context.Context, token string, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.Clone()
	r.snap = Snapshot{Token: token, User: &u}
	return nil
}

func (r *MemoryRepository) SaveUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.Clone()
	r.snap.User = &u
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snap = Snapshot{}
	return nil
}
