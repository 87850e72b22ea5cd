package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	repository "github.com/SudyStefan/MSD-UX-Prototype/internal/database/memory"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/signupfeed"
	"github.com/sirupsen/logrus"
)

type eventService struct {
	clientID   string
	eventRepo  repository.EventRepository
	signupRepo repository.SignupRepository
	publisher  signupfeed.Publisher
	now        func() time.Time
	logger     *logrus.Entry
}

// NewEventService creates the registry of one client. publisher may be nil.
func NewEventService(
	clientID string,
	eventRepo repository.EventRepository,
	signupRepo repository.SignupRepository,
	publisher signupfeed.Publisher,
	now func() time.Time,
) EventService {
	if now == nil {
		now = time.Now
	}
	return &eventService{
		clientID:   clientID,
		eventRepo:  eventRepo,
		signupRepo: signupRepo,
		publisher:  publisher,
		now:        now,
		logger:     logrus.WithField("client_id", clientID),
	}
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]*entity.EventView, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	views := make([]*entity.EventView, 0, len(events))
	for _, e := range events {
		signedUp, err := s.signupRepo.Has(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check signup: %w", err)
		}
		views = append(views, entity.NewEventView(e, signedUp))
	}
	return views, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*entity.EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %q: %w", id, err)
	}

	signedUp, err := s.signupRepo.Has(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check signup: %w", err)
	}
	return entity.NewEventView(event, signedUp), nil
}

func (s *eventService) SignedUpEvents(ctx context.Context) ([]string, error) {
	return s.signupRepo.List(ctx)
}

// HandleSignup increments the guide count by one and records the id in the
// signed-up set. An unknown id changes nothing and is reported as ErrEventNotFound.
func (s *eventService) HandleSignup(ctx context.Context, signup entity.GuideSignup) (*entity.Event, error) {
	event, err := s.eventRepo.IncrementSignedUp(ctx, signup.EventID)
	if err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			s.logger.WithField("event_id", signup.EventID).Warn("Signup for unknown event ignored")
		}
		return nil, fmt.Errorf("failed to apply signup for %q: %w", signup.EventID, err)
	}

	if err := s.signupRepo.Add(ctx, signup.EventID); err != nil {
		return nil, fmt.Errorf("failed to record signup: %w", err)
	}

	if s.publisher != nil {
		msg := signupfeed.NewMessage(s.clientID, signup, event, s.now())
		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.logger.WithError(err).WithField("event_id", signup.EventID).Warn("Failed to publish signup")
		}
	}

	return event, nil
}
