package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeEvicter struct {
	mu      sync.Mutex
	calls   int
	idle    time.Duration
	evict   int
	clients int
}

func (f *fakeEvicter) EvictIdle(idle time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.idle = idle
	f.clients -= f.evict
	return f.evict
}

func (f *fakeEvicter) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clients
}

func (f *fakeEvicter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCleanupIdleClients(t *testing.T) {
	clients := &fakeEvicter{evict: 2, clients: 5}
	w := NewClientCleanupWorker(clients, time.Minute, 30*time.Minute)

	assert.Equal(t, 2, w.cleanupIdleClients())
	assert.Equal(t, 30*time.Minute, clients.idle)
	assert.Equal(t, 3, clients.Len())
}

func TestWorkerRunsUntilCancelled(t *testing.T) {
	clients := &fakeEvicter{}
	w := NewClientCleanupWorker(clients, 5*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return clients.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestGetStats(t *testing.T) {
	w := NewClientCleanupWorker(&fakeEvicter{clients: 4}, time.Minute, time.Hour)

	stats := w.GetStats()
	assert.Equal(t, "client_cleanup", stats["worker_type"])
	assert.Equal(t, "1h0m0s", stats["idle_timeout"])
	assert.Equal(t, 4, stats["clients"])
}
