package entity

import (
	"fmt"
	"strings"
	"time"
)

// Event is a guided event that needs a number of guides.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Location       string    `json:"location"`
	GuidesNeeded   int       `json:"guides_needed"`
	GuidesSignedUp int       `json:"guides_signed_up"`
	Category       string    `json:"category"`
	Compensation   string    `json:"compensation"`
	Requirements   []string  `json:"requirements"`
}

// IsFull reports whether the event has as many guides as it needs.
func (e *Event) IsFull() bool {
	return e.GuidesSignedUp >= e.GuidesNeeded
}

// Remaining returns the number of guide places still open, never below zero.
func (e *Event) Remaining() int {
	if e.IsFull() {
		return 0
	}
	return e.GuidesNeeded - e.GuidesSignedUp
}

// Overlaps reports whether the event interval [Start, End) intersects [from, to).
func (e *Event) Overlaps(from, to time.Time) bool {
	return e.Start.Before(to) && e.End.After(from)
}

// Validate checks the invariants every event in the registry must hold.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEvent)
	}
	if !e.Start.Before(e.End) {
		return fmt.Errorf("%w: %s starts at or after its end", ErrInvalidEvent, e.ID)
	}
	if e.GuidesSignedUp < 0 {
		return fmt.Errorf("%w: %s has a negative signed up count", ErrInvalidEvent, e.ID)
	}
	if e.GuidesNeeded < 0 {
		return fmt.Errorf("%w: %s has a negative guides needed count", ErrInvalidEvent, e.ID)
	}
	return nil
}

// Clone returns a deep copy so callers never share the requirements slice.
func (e *Event) Clone() *Event {
	c := *e
	if e.Requirements != nil {
		c.Requirements = append([]string(nil), e.Requirements...)
	}
	return &c
}

// GuideSignup is a sign-up form submission for one event.
type GuideSignup struct {
	EventID    string `json:"event_id" form:"event_id"`
	GuideName  string `json:"guide_name" form:"guide_name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"required"`
	Phone      string `json:"phone" form:"phone" binding:"required"`
	Experience string `json:"experience" form:"experience" binding:"required"`
}

// Complete reports whether all four form fields carry a value.
// Only presence is checked, there is no format validation.
func (s GuideSignup) Complete() bool {
	for _, v := range []string{s.GuideName, s.Email, s.Phone, s.Experience} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// EventView is an event together with its status for the current client.
type EventView struct {
	*Event
	Status    EventStatus `json:"status"`
	Color     string      `json:"color"`
	SignedUp  bool        `json:"signed_up"`
	Remaining int         `json:"remaining"`
}

// NewEventView derives the per-client view of an event.
func NewEventView(e *Event, signedUp bool) *EventView {
	status := StatusOf(e, signedUp)
	return &EventView{
		Event:     e,
		Status:    status,
		Color:     status.Color(),
		SignedUp:  signedUp,
		Remaining: e.Remaining(),
	}
}
