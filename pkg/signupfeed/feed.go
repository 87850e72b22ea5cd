// Package signupfeed publishes applied guide signups to downstream consumers.
package signupfeed

import (
	"context"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/google/uuid"
)

const (
	EventGuideSignedUp = "guide_signed_up"
	messageVersion     = 1
)

// Message is the JSON document every publisher emits.
type Message struct {
	ID             string    `json:"id"`
	Event          string    `json:"event"`
	Version        int       `json:"version"`
	ClientID       string    `json:"client_id"`
	EventID        string    `json:"event_id"`
	EventTitle     string    `json:"event_title"`
	GuidesSignedUp int       `json:"guides_signed_up"`
	GuidesNeeded   int       `json:"guides_needed"`
	GuideName      string    `json:"guide_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Experience     string    `json:"experience"`
	TS             time.Time `json:"ts"`
}

// NewMessage describes a signup that was applied to event.
func NewMessage(clientID string, signup entity.GuideSignup, event *entity.Event, ts time.Time) *Message {
	return &Message{
		ID:             uuid.NewString(),
		Event:          EventGuideSignedUp,
		Version:        messageVersion,
		ClientID:       clientID,
		EventID:        signup.EventID,
		EventTitle:     event.Title,
		GuidesSignedUp: event.GuidesSignedUp,
		GuidesNeeded:   event.GuidesNeeded,
		GuideName:      signup.GuideName,
		Email:          signup.Email,
		Phone:          signup.Phone,
		Experience:     signup.Experience,
		TS:             ts,
	}
}

// Publisher delivers signup messages.
type Publisher interface {
	Publish(ctx context.Context, msg *Message) error
	Close() error
}
