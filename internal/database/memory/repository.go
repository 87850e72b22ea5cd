package repository

import (
	"context"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

// EventRepository holds the ordered event list of one client.
type EventRepository interface {
	GetAll(ctx context.Context) ([]*entity.Event, error)
	GetByID(ctx context.Context, id string) (*entity.Event, error)

	// IncrementSignedUp adds one guide to the event and returns the updated copy.
	IncrementSignedUp(ctx context.Context, id string) (*entity.Event, error)
	Count(ctx context.Context) (int, error)
}

// SignupRepository is the set of event ids the client signed up for.
type SignupRepository interface {
	Add(ctx context.Context, eventID string) error
	Has(ctx context.Context, eventID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
