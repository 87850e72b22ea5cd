package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(needed, signedUp int) *Event {
	start := time.Date(2026, time.October, 3, 10, 0, 0, 0, time.UTC)
	return &Event{ID: "evt", Start: start, End: start.Add(2 * time.Hour), GuidesNeeded: needed, GuidesSignedUp: signedUp}
}

// TestStatusOf checks that signed up beats full and full beats available
func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		needed   int
		signedUp int
		mine     bool
		want     EventStatus
		color    string
	}{
		{name: "open", needed: 3, signedUp: 2, want: StatusAvailable, color: "#4f46e5"},
		{name: "exactly full", needed: 3, signedUp: 3, want: StatusFull, color: "#9ca3af"},
		{name: "overfilled", needed: 3, signedUp: 5, want: StatusFull, color: "#9ca3af"},
		{name: "no guides needed", needed: 0, signedUp: 0, want: StatusFull, color: "#9ca3af"},
		{name: "signed up and open", needed: 3, signedUp: 2, mine: true, want: StatusSignedUp, color: "#059669"},
		{name: "signed up and full", needed: 3, signedUp: 3, mine: true, want: StatusSignedUp, color: "#059669"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusOf(newEvent(tt.needed, tt.signedUp), tt.mine)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.color, got.Color())
		})
	}
}

func TestEventValidate(t *testing.T) {
	assert.NoError(t, newEvent(3, 0).Validate())

	e := newEvent(3, 0)
	e.End = e.Start
	assert.ErrorIs(t, e.Validate(), ErrInvalidEvent)

	e = newEvent(3, -1)
	assert.ErrorIs(t, e.Validate(), ErrInvalidEvent)

	e = newEvent(3, 0)
	e.ID = " "
	assert.ErrorIs(t, e.Validate(), ErrInvalidEvent)
}

func TestEventRemainingAndOverlaps(t *testing.T) {
	e := newEvent(3, 1)
	assert.Equal(t, 2, e.Remaining())
	assert.Equal(t, 0, newEvent(3, 4).Remaining())

	day := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)
	assert.True(t, e.Overlaps(day, day.AddDate(0, 0, 1)))
	assert.False(t, e.Overlaps(day.AddDate(0, 0, 1), day.AddDate(0, 0, 2)))
	assert.False(t, e.Overlaps(e.End, e.End.Add(time.Hour)), "end is exclusive")
}

func TestEventClone(t *testing.T) {
	e := newEvent(3, 1)
	e.Requirements = []string{"a"}

	c := e.Clone()
	c.Requirements[0] = "b"
	c.GuidesSignedUp++

	assert.Equal(t, "a", e.Requirements[0])
	assert.Equal(t, 1, e.GuidesSignedUp)
}

func TestGuideSignupComplete(t *testing.T) {
	full := GuideSignup{GuideName: "Ada", Email: "not-an-email", Phone: "x", Experience: "y"}
	assert.True(t, full.Complete(), "formats are not checked")

	for _, mutate := range []func(s *GuideSignup){
		func(s *GuideSignup) { s.GuideName = "" },
		func(s *GuideSignup) { s.Email = "  " },
		func(s *GuideSignup) { s.Phone = "\t" },
		func(s *GuideSignup) { s.Experience = "" },
	} {
		s := full
		mutate(&s)
		assert.False(t, s.Complete())
	}
}

func TestParseEnums(t *testing.T) {
	r, err := ParseRoute("Settings")
	require.NoError(t, err)
	assert.Equal(t, RouteSettings, r)
	_, err = ParseRoute("profile")
	assert.ErrorIs(t, err, ErrUnknownRoute)

	v, err := ParseCalendarView("week")
	require.NoError(t, err)
	assert.Equal(t, ViewWeek, v)
	_, err = ParseCalendarView("day")
	assert.ErrorIs(t, err, ErrUnknownCalendarView)

	d, err := ParseDirection("back")
	require.NoError(t, err)
	assert.Equal(t, DirectionPrev, d)
	_, err = ParseDirection("up")
	assert.ErrorIs(t, err, ErrInvalidInput)

	k, err := ParseSettingKey("auto_lock")
	require.NoError(t, err)
	assert.Equal(t, SettingAutoLock, k)
	_, err = ParseSettingKey("dark")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestRouteZeroValueIsCalendar(t *testing.T) {
	var r Route
	assert.Equal(t, RouteCalendar, r)
	assert.Equal(t, []Route{RouteCalendar, RouteScan, RouteSettings}, Routes())
}

func TestEventViewJSON(t *testing.T) {
	body, err := json.Marshal(NewEventView(newEvent(2, 2), false))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "evt", got["id"])
	assert.Equal(t, "full", got["status"])
	assert.Equal(t, "#9ca3af", got["color"])
	assert.Equal(t, 0.0, got["remaining"])
}

func TestSettingsToggle(t *testing.T) {
	s := DefaultSettings()

	v, err := s.Toggle(SettingSync)
	require.NoError(t, err)
	assert.False(t, v)
	assert.True(t, s.AutoLock)
	assert.True(t, s.Notifications)

	_, err = s.Toggle("other")
	assert.ErrorIs(t, err, ErrUnknownSetting)

	sections := s.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "General", sections[0].Title)
	assert.Equal(t, "Admin", sections[1].Title)
	assert.False(t, sections[0].Items[2].Checked)
}
