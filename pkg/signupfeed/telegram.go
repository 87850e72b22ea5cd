package signupfeed

import (
	"context"
	"fmt"

	"github.com/SudyStefan/MSD-UX-Prototype/pkg/telegram"
)

// TelegramPublisher notifies a chat about every signup.
type TelegramPublisher struct {
	bot    *telegram.Bot
	chatID string
}

func NewTelegramPublisher(bot *telegram.Bot, chatID string) *TelegramPublisher {
	return &TelegramPublisher{bot: bot, chatID: chatID}
}

func (p *TelegramPublisher) Publish(ctx context.Context, msg *Message) error {
	if err := p.bot.SendMessage(ctx, p.chatID, notificationText(msg)); err != nil {
		return fmt.Errorf("failed to notify telegram chat: %w", err)
	}
	return nil
}

func (p *TelegramPublisher) Close() error {
	return nil
}

func notificationText(msg *Message) string {
	return fmt.Sprintf("%s signed up as a guide for %q (%d/%d guides). Contact: %s, %s",
		msg.GuideName, msg.EventTitle, msg.GuidesSignedUp, msg.GuidesNeeded, msg.Email, msg.Phone)
}
