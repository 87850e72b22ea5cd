package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AppStore owns the App of every known client.
type AppStore struct {
	mu   sync.RWMutex
	apps map[string]*App
	opts Options
}

// NewAppStore validates the seed once so a broken dataset fails at startup.
func NewAppStore(opts Options) (*AppStore, error) {
	opts = opts.withDefaults()

	for _, e := range opts.Seed(opts.Now()) {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate seed: %w", err)
		}
	}

	return &AppStore{
		apps: make(map[string]*App),
		opts: opts,
	}, nil
}

// Get returns the App of a known client and marks it as seen.
func (s *AppStore) Get(id string) (*App, bool) {
	s.mu.RLock()
	app, ok := s.apps[id]
	s.mu.RUnlock()

	if ok {
		app.Touch(s.opts.Now())
	}
	return app, ok
}

// Create registers a client under a fresh id.
func (s *AppStore) Create() (*App, error) {
	app, err := NewApp(uuid.NewString(), s.opts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.apps[app.ID()] = app
	s.mu.Unlock()

	logrus.WithField("client_id", app.ID()).Info("Client created")
	return app, nil
}

// Resolve returns the App for id, creating a new client when id is unknown.
// created reports whether a new client was made.
func (s *AppStore) Resolve(id string) (app *App, created bool, err error) {
	if id != "" {
		if app, ok := s.Get(id); ok {
			return app, false, nil
		}
	}
	app, err = s.Create()
	if err != nil {
		return nil, false, err
	}
	return app, true, nil
}

// EvictIdle closes and forgets every client not seen for longer than idle.
func (s *AppStore) EvictIdle(idle time.Duration) int {
	cutoff := s.opts.Now().Add(-idle)

	s.mu.Lock()
	var evicted []*App
	for id, app := range s.apps {
		if app.LastSeen().Before(cutoff) {
			evicted = append(evicted, app)
			delete(s.apps, id)
		}
	}
	s.mu.Unlock()

	for _, app := range evicted {
		app.Close()
	}
	return len(evicted)
}

func (s *AppStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

// Close closes every client.
func (s *AppStore) Close() {
	s.mu.Lock()
	apps := s.apps
	s.apps = make(map[string]*App)
	s.mu.Unlock()

	for _, app := range apps {
		app.Close()
	}
}
