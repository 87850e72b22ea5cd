package entity

import (
	"fmt"
	"strings"
	"time"
)

// CalendarView is the granularity of the calendar grid.
type CalendarView int

const (
	ViewMonth CalendarView = iota
	ViewWeek
)

func ParseCalendarView(s string) (CalendarView, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	default:
		return ViewMonth, fmt.Errorf("%w: %q", ErrUnknownCalendarView, s)
	}
}

func (v CalendarView) String() string {
	if v == ViewWeek {
		return "week"
	}
	return "month"
}

func (v CalendarView) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Direction moves the calendar by one unit of the active view.
type Direction int

const (
	DirectionToday Direction = iota
	DirectionPrev
	DirectionNext
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return DirectionToday, nil
	case "prev", "back":
		return DirectionPrev, nil
	case "next":
		return DirectionNext, nil
	default:
		return DirectionToday, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
	}
}

// CalendarEntry is one event placed on one day of the grid.
type CalendarEntry struct {
	EventID string      `json:"event_id"`
	Title   string      `json:"title"`
	Start   time.Time   `json:"start"`
	End     time.Time   `json:"end"`
	Status  EventStatus `json:"status"`
	Color   string      `json:"color"`
}

type CalendarDay struct {
	Date    time.Time       `json:"date"`
	InRange bool            `json:"in_range"`
	Today   bool            `json:"today"`
	Entries []CalendarEntry `json:"entries"`
}

type CalendarWeek struct {
	Days []CalendarDay `json:"days"`
}

// CalendarGrid is a rendered month or week.
type CalendarGrid struct {
	View   CalendarView   `json:"view"`
	Anchor time.Time      `json:"anchor"`
	Title  string         `json:"title"`
	Weeks  []CalendarWeek `json:"weeks"`
}

// MonthOption is an entry of the month picker.
type MonthOption struct {
	Value    string `json:"value"` // 2006-01
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}
