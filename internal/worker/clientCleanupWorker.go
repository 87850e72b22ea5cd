package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// ClientEvicter is implemented by service.AppStore.
type ClientEvicter interface {
	EvictIdle(idle time.Duration) int
	Len() int
}

// ClientCleanupWorker closes clients that have not made a request for longer
// than idleTimeout, releasing their timers and camera streams.
type ClientCleanupWorker struct {
	clients     ClientEvicter
	interval    time.Duration
	idleTimeout time.Duration
}

func NewClientCleanupWorker(clients ClientEvicter, interval, idleTimeout time.Duration) *ClientCleanupWorker {
	return &ClientCleanupWorker{
		clients:     clients,
		interval:    interval,
		idleTimeout: idleTimeout,
	}
}

func (w *ClientCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Client cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Client cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanupIdleClients()
		}
	}
}

func (w *ClientCleanupWorker) cleanupIdleClients() int {
	evicted := w.clients.EvictIdle(w.idleTimeout)
	if evicted == 0 {
		logrus.Debug("No idle clients found for cleanup")
		return 0
	}

	logrus.WithFields(logrus.Fields{
		"evicted":   evicted,
		"remaining": w.clients.Len(),
	}).Info("Idle clients cleanup completed")
	return evicted
}

func (w *ClientCleanupWorker) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"worker_type":  "client_cleanup",
		"interval":     w.interval.String(),
		"idle_timeout": w.idleTimeout.String(),
		"clients":      w.clients.Len(),
	}
}
