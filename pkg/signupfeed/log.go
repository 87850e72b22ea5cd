package signupfeed

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes every signup to the application log.
type LogPublisher struct {
	logger logrus.FieldLogger
}

func NewLogPublisher(logger logrus.FieldLogger) *LogPublisher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg *Message) error {
	p.logger.WithFields(logrus.Fields{
		"message_id":       msg.ID,
		"client_id":        msg.ClientID,
		"event_id":         msg.EventID,
		"event_title":      msg.EventTitle,
		"guide_name":       msg.GuideName,
		"guides_signed_up": msg.GuidesSignedUp,
		"guides_needed":    msg.GuidesNeeded,
	}).Info("Guide signed up")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
