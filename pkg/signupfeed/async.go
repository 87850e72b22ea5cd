package signupfeed

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrFeedFull   = errors.New("signup feed buffer is full")
	ErrFeedClosed = errors.New("signup feed is closed")
)

// Async decouples a slow publisher from the caller. Publish only enqueues;
// a single worker delivers in order and retries failures.
type Async struct {
	next    Publisher
	retry   *RetryManager
	timeout time.Duration
	queue   chan *Message
	dead    DeadLetter

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
	stop      chan struct{}
}

type AsyncOption func(*Async)

// WithDeadLetter hands messages that exhausted their retries to dl.
func WithDeadLetter(dl DeadLetter) AsyncOption {
	return func(a *Async) {
		a.dead = dl
	}
}

func NewAsync(next Publisher, buffer int, retry *RetryManager, timeout time.Duration, opts ...AsyncOption) *Async {
	if buffer <= 0 {
		buffer = 64
	}
	if retry == nil {
		retry = NewRetryManager(3, time.Second)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	a := &Async{
		next:    next,
		retry:   retry,
		timeout: timeout,
		queue:   make(chan *Message, buffer),
		done:    make(chan struct{}),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	go a.run()
	return a
}

// Publish never blocks. When the buffer is full the message is dropped.
func (a *Async) Publish(ctx context.Context, msg *Message) error {
	select {
	case <-a.stop:
		return ErrFeedClosed
	default:
	}

	select {
	case a.queue <- msg:
		return nil
	default:
		return ErrFeedFull
	}
}

// Close drains the buffer, then closes the wrapped publisher and the
// dead letter store when it has a Close method. Later calls return the
// result of the first.
func (a *Async) Close() error {
	a.closeOnce.Do(func() {
		close(a.stop)
		<-a.done

		err := a.next.Close()
		if c, ok := a.dead.(interface{ Close() error }); ok {
			err = errors.Join(err, c.Close())
		}
		a.closeErr = err
	})
	return a.closeErr
}

func (a *Async) run() {
	defer close(a.done)

	for {
		select {
		case msg := <-a.queue:
			a.deliver(msg)
		case <-a.stop:
			for {
				select {
				case msg := <-a.queue:
					a.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (a *Async) deliver(msg *Message) {
	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		err := a.next.Publish(ctx, msg)
		cancel()
		if err == nil {
			return
		}

		retry, delay := a.retry.ShouldRetry(attempt, err)
		entry := logrus.WithFields(logrus.Fields{
			"message_id": msg.ID,
			"event_id":   msg.EventID,
			"attempt":    attempt,
		})
		if !retry {
			entry.WithError(err).Error("Dropping signup message")
			a.bury(msg, err, attempt)
			return
		}
		entry.WithError(err).Warnf("Signup publish failed, retrying in %s", delay)

		select {
		case <-time.After(delay):
		case <-a.stop:
			entry.Warn("Feed closing, giving up on retry")
			a.bury(msg, err, attempt)
			return
		}
	}
}

func (a *Async) bury(msg *Message, err error, attempts int) {
	if a.dead == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	failed := &FailedMessage{Message: msg, Error: err.Error(), FailedAt: time.Now(), Attempts: attempts}
	if err := a.dead.Store(ctx, failed); err != nil {
		logrus.WithError(err).WithField("message_id", msg.ID).Error("Failed to dead-letter signup message")
	}
}
