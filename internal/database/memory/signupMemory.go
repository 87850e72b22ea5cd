package repository

import (
	"context"
	"sync"
)

type signupRepository struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	order []string
}

func NewSignupRepository() SignupRepository {
	return &signupRepository{ids: make(map[string]struct{})}
}

// Add is idempotent, the set never shrinks.
func (r *signupRepository) Add(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[eventID]; ok {
		return nil
	}
	r.ids[eventID] = struct{}{}
	r.order = append(r.order, eventID)
	return nil
}

func (r *signupRepository) Has(ctx context.Context, eventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ids[eventID]
	return ok, nil
}

// List returns the ids in the order they were first added.
func (r *signupRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids, nil
}
