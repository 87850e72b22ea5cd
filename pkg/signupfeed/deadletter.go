package signupfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// FailedMessage is a signup message the feed gave up on.
type FailedMessage struct {
	Message  *Message  `json:"message"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
	Attempts int       `json:"attempts"`
}

// DeadLetter keeps messages that could not be delivered.
type DeadLetter interface {
	Store(ctx context.Context, failed *FailedMessage) error
}

type LogDeadLetter struct {
	logger logrus.FieldLogger
}

func NewLogDeadLetter(logger logrus.FieldLogger) *LogDeadLetter {
	return &LogDeadLetter{logger: logger}
}

func (d *LogDeadLetter) Store(_ context.Context, failed *FailedMessage) error {
	d.logger.WithFields(logrus.Fields{
		"message_id": failed.Message.ID,
		"event_id":   failed.Message.EventID,
		"client_id":  failed.Message.ClientID,
		"attempts":   failed.Attempts,
		"error":      failed.Error,
	}).Error("Signup message dead-lettered")
	return nil
}

// RedisDeadLetter stores failed messages in a sorted set scored by failure time.
type RedisDeadLetter struct {
	client *redis.Client
	key    string
}

func NewRedisDeadLetter(client *redis.Client, key string) *RedisDeadLetter {
	return &RedisDeadLetter{client: client, key: key}
}

func (d *RedisDeadLetter) Store(ctx context.Context, failed *FailedMessage) error {
	data, err := json.Marshal(failed)
	if err != nil {
		return fmt.Errorf("failed to marshal failed message: %w", err)
	}

	score := float64(failed.FailedAt.UnixNano()) / 1e9
	if err := d.client.ZAdd(ctx, d.key, &redis.Z{Score: score, Member: data}).Err(); err != nil {
		return fmt.Errorf("failed to store message in dead letter set %s: %w", d.key, err)
	}
	return nil
}

func (d *RedisDeadLetter) Close() error {
	return d.client.Close()
}
