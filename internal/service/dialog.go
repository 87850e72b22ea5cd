package service

import (
	"fmt"
	"strings"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
)

// DialogKind is what the event dialog currently shows.
type DialogKind int

const (
	DialogHidden DialogKind = iota
	DialogConfirmation
	DialogSignedUp
	DialogFull
	DialogForm
)

func (k DialogKind) String() string {
	switch k {
	case DialogConfirmation:
		return "confirmation"
	case DialogSignedUp:
		return "signed_up"
	case DialogFull:
		return "full"
	case DialogForm:
		return "form"
	default:
		return "hidden"
	}
}

func (k DialogKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DialogTab is the active tab of an open dialog.
type DialogTab string

const (
	TabDetails DialogTab = "details"
	TabSignup  DialogTab = "signup"
)

func ParseDialogTab(s string) (DialogTab, error) {
	switch t := DialogTab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabDetails, TabSignup:
		return t, nil
	default:
		return TabDetails, fmt.Errorf("%w: unknown tab %q", entity.ErrInvalidInput, s)
	}
}

type dialog struct {
	open      bool
	eventID   string
	tab       DialogTab
	form      entity.GuideSignup
	formError string
	submitted bool
	confirm   *scheduler.Task
}

// kind picks the view in priority order: hidden, confirmation,
// already signed up, full, form.
func (d *dialog) kind(event *entity.Event, signedUp bool) DialogKind {
	switch {
	case !d.open || event == nil:
		return DialogHidden
	case d.submitted:
		return DialogConfirmation
	case signedUp:
		return DialogSignedUp
	case event.IsFull():
		return DialogFull
	default:
		return DialogForm
	}
}

func (d *dialog) show(eventID string) {
	d.confirm.Cancel()
	d.confirm = nil
	if d.eventID != eventID {
		d.form = entity.GuideSignup{}
	}
	d.eventID = eventID
	d.open = true
	d.tab = TabDetails
	d.formError = ""
	d.submitted = false
}

// close keeps the selected event id, everything else returns to initial.
func (d *dialog) close() {
	d.confirm.Cancel()
	d.confirm = nil
	d.open = false
	d.tab = TabDetails
	d.form = entity.GuideSignup{}
	d.formError = ""
	d.submitted = false
}

func (d *dialog) reset() {
	d.close()
	d.eventID = ""
}
