package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

type eventRepository struct {
	mu     sync.RWMutex
	events []*entity.Event
	index  map[string]int
}

// NewEventRepository copies the seed into a fresh registry. The seed itself is never mutated.
func NewEventRepository(seed []*entity.Event) (EventRepository, error) {
	r := &eventRepository{
		events: make([]*entity.Event, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
	}

	for _, e := range seed {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", entity.ErrInvalidEvent, e.ID)
		}
		r.index[e.ID] = len(r.events)
		r.events = append(r.events, e.Clone())
	}

	return r, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*entity.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e.Clone())
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	return r.events[i].Clone(), nil
}

func (r *eventRepository) IncrementSignedUp(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	r.events[i].GuidesSignedUp++
	return r.events[i].Clone(), nil
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events), nil
}
