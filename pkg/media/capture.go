// Package media is the camera boundary used by the QR scanner.
package media

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrPermissionDenied = errors.New("permission denied")

// Constraints describe the requested video stream.
type Constraints struct {
	FacingMode string
	Width      int
	Height     int
}

// Stream is an acquired video stream. Stop releases its tracks and is idempotent.
type Stream interface {
	ID() string
	Active() bool
	Stop()
}

// Capture hands out video streams.
type Capture interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// SimulatedCapture grants a stream without touching any device.
// With Available false every request is denied.
type SimulatedCapture struct {
	Available bool

	mu   sync.Mutex
	open int
}

func NewSimulatedCapture(available bool) *SimulatedCapture {
	return &SimulatedCapture{Available: available}
}

func (s *SimulatedCapture) Open(ctx context.Context, c Constraints) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.Available {
		return nil, ErrPermissionDenied
	}

	s.mu.Lock()
	s.open++
	s.mu.Unlock()

	return &simulatedStream{id: uuid.NewString(), owner: s}, nil
}

// OpenStreams is the number of streams handed out and not yet stopped.
func (s *SimulatedCapture) OpenStreams() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *SimulatedCapture) release() {
	s.mu.Lock()
	s.open--
	s.mu.Unlock()
}

type simulatedStream struct {
	id    string
	owner *SimulatedCapture
	once  sync.Once
	done  bool
	mu    sync.Mutex
}

func (s *simulatedStream) ID() string { return s.id }

func (s *simulatedStream) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.done
}

func (s *simulatedStream) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.done = true
		s.mu.Unlock()
		s.owner.release()
	})
}
