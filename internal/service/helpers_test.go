package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/media"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/signupfeed"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []*signupfeed.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg *signupfeed.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

type fixture struct {
	app       *App
	clock     *scheduler.Manual
	camera    *media.SimulatedCapture
	publisher *recordingPublisher
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clock:     scheduler.NewManual(),
		camera:    media.NewSimulatedCapture(true),
		publisher: &recordingPublisher{},
		now:       testNow,
	}
	app, err := NewApp("client-1", Options{
		Scheduler: f.clock,
		Capture:   f.camera,
		Publisher: f.publisher,
		Now:       func() time.Time { return f.now },
	})
	require.NoError(t, err)
	f.app = app
	return f
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	require.True(t, f.app.Login("guide@example.com", "secret"))
}

func (f *fixture) snapshot(t *testing.T) *View {
	t.Helper()
	v, err := f.app.Snapshot(context.Background())
	require.NoError(t, err)
	return v
}

func (f *fixture) event(t *testing.T, id string) *entity.EventView {
	t.Helper()
	e, err := f.app.Event(context.Background(), id)
	require.NoError(t, err)
	return e
}

func completeForm() entity.GuideSignup {
	return entity.GuideSignup{
		GuideName:  "Ada Guide",
		Email:      "ada@example.com",
		Phone:      "+49 170 0000000",
		Experience: "Five years of city tours",
	}
}
