package entity

// EventStatus is how an event is shown to the current client.
type EventStatus int

const (
	StatusAvailable EventStatus = iota
	StatusFull
	StatusSignedUp
)

const (
	colorAvailable = "#4f46e5" // indigo
	colorFull      = "#9ca3af" // gray
	colorSignedUp  = "#059669" // green
)

// StatusOf classifies an event. Signed up wins over full, full wins over available.
func StatusOf(e *Event, signedUp bool) EventStatus {
	switch {
	case signedUp:
		return StatusSignedUp
	case e.IsFull():
		return StatusFull
	default:
		return StatusAvailable
	}
}

func (s EventStatus) String() string {
	switch s {
	case StatusFull:
		return "full"
	case StatusSignedUp:
		return "signed_up"
	default:
		return "available"
	}
}

// Color is the background colour of the event on the calendar.
func (s EventStatus) Color() string {
	switch s {
	case StatusFull:
		return colorFull
	case StatusSignedUp:
		return colorSignedUp
	default:
		return colorAvailable
	}
}

func (s EventStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
