package service

import (
	"context"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/database/seed"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/media"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/signupfeed"
)

// EventService is the event registry of one client.
type EventService interface {
	GetAllEvents(ctx context.Context) ([]*entity.EventView, error)
	GetEvent(ctx context.Context, id string) (*entity.EventView, error)
	SignedUpEvents(ctx context.Context) ([]string, error)

	// HandleSignup applies a submitted signup. It is not idempotent.
	HandleSignup(ctx context.Context, signup entity.GuideSignup) (*entity.Event, error)
}

const (
	DefaultConfirmDelay = 2 * time.Second
	DefaultScanDelay    = 3500 * time.Millisecond
	DefaultScanValue    = "https://example.com/event/12345"
	DefaultPickerMonths = 5
	DefaultScanHistory  = 10
)

// Options are shared by every client App.
type Options struct {
	Seed      func(now time.Time) []*entity.Event
	Scheduler scheduler.Scheduler
	Capture   media.Capture
	Publisher signupfeed.Publisher
	Now       func() time.Time

	ConfirmDelay time.Duration
	ScanDelay    time.Duration
	ScanValue    string
	PickerMonths int
	ScanHistory  int
}

func (o Options) withDefaults() Options {
	if o.Seed == nil {
		o.Seed = seed.MockEvents
	}
	if o.Scheduler == nil {
		o.Scheduler = scheduler.New()
	}
	if o.Capture == nil {
		o.Capture = media.NewSimulatedCapture(true)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.ConfirmDelay <= 0 {
		o.ConfirmDelay = DefaultConfirmDelay
	}
	if o.ScanDelay <= 0 {
		o.ScanDelay = DefaultScanDelay
	}
	if o.ScanValue == "" {
		o.ScanValue = DefaultScanValue
	}
	if o.PickerMonths <= 0 {
		o.PickerMonths = DefaultPickerMonths
	}
	if o.ScanHistory <= 0 {
		o.ScanHistory = DefaultScanHistory
	}
	return o
}
