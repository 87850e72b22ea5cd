package appServer

import (
	"context"
	"fmt"

	"github.com/SudyStefan/MSD-UX-Prototype/config"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/redis"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/signupfeed"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/telegram"
	"github.com/sirupsen/logrus"
)

// newSignupFeed builds the publisher selected by feed.kind. Broker
// publishers are wrapped in an Async so a slow broker never blocks a client.
func newSignupFeed(ctx context.Context, cfg *config.Config) (signupfeed.Publisher, error) {
	var next signupfeed.Publisher

	switch cfg.Feed.Kind {
	case "", "log":
		logrus.Info("Signup feed writes to the log")
		return signupfeed.NewLogPublisher(logrus.StandardLogger()), nil

	case "kafka":
		p, err := signupfeed.NewKafkaPublisher(signupfeed.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		if err != nil {
			return nil, err
		}
		next = p

	case "rabbitmq":
		p, err := signupfeed.NewRabbitPublisher(signupfeed.RabbitConfig{
			URL:       cfg.Rabbit.URL,
			QueueName: cfg.Rabbit.QueueName,
		})
		if err != nil {
			return nil, err
		}
		next = p

	case "redis":
		client, err := redis.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		next = signupfeed.NewRedisPublisher(client, cfg.Redis.Channel)

	case "telegram":
		next = signupfeed.NewTelegramPublisher(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID)

	default:
		return nil, fmt.Errorf("unknown signup feed %q", cfg.Feed.Kind)
	}

	dead, err := newDeadLetter(ctx, cfg)
	if err != nil {
		next.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"kind":        cfg.Feed.Kind,
		"dead_letter": cfg.Feed.DeadLetter,
	}).Info("Signup feed initialized")

	retry := signupfeed.NewRetryManager(cfg.Feed.MaxRetries, cfg.Feed.RetryDelay)
	return signupfeed.NewAsync(next, cfg.Feed.Buffer, retry, cfg.Feed.Timeout, signupfeed.WithDeadLetter(dead)), nil
}

func newDeadLetter(ctx context.Context, cfg *config.Config) (signupfeed.DeadLetter, error) {
	if cfg.Feed.DeadLetter != "redis" {
		return signupfeed.NewLogDeadLetter(logrus.StandardLogger()), nil
	}

	client, err := redis.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect dead letter store: %w", err)
	}
	return signupfeed.NewRedisDeadLetter(client, cfg.Redis.DeadLetterKey), nil
}
