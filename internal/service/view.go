package service

import (
	"context"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

// View is a read-only copy of an App, shaped for rendering.
type View struct {
	ClientID string         `json:"client_id"`
	LoggedIn bool           `json:"logged_in"`
	Email    string         `json:"email,omitempty"`
	Route    entity.Route   `json:"route"`
	Footer   []FooterItem   `json:"footer,omitempty"`
	SignedUp []string       `json:"signed_up"`
	Calendar *CalendarPanel `json:"calendar,omitempty"`
	Scanner  *ScannerPanel  `json:"scanner,omitempty"`
	Settings *SettingsPanel `json:"settings,omitempty"`
	Dialog   DialogPanel    `json:"dialog"`

	// Pending is set while a timer will change the view on its own.
	Pending bool `json:"pending"`
}

type FooterItem struct {
	Route  entity.Route `json:"route"`
	Label  string       `json:"label"`
	Active bool         `json:"active"`
}

type CalendarPanel struct {
	View       entity.CalendarView  `json:"view"`
	Date       time.Time            `json:"date"`
	PickerOpen bool                 `json:"picker_open"`
	Months     []entity.MonthOption `json:"months"`
	Grid       entity.CalendarGrid  `json:"grid"`
}

type DialogPanel struct {
	Open  bool               `json:"open"`
	Kind  DialogKind         `json:"kind"`
	Tab   DialogTab          `json:"tab"`
	Event *entity.EventView  `json:"event,omitempty"`
	Form  entity.GuideSignup `json:"form"`
	Error string             `json:"error,omitempty"`
}

type ScannerPanel struct {
	Scanning   bool                `json:"scanning"`
	ShowResult bool                `json:"show_result"`
	Result     string              `json:"result,omitempty"`
	Notice     string              `json:"notice,omitempty"`
	History    []entity.ScanResult `json:"history"`
}

type SettingsPanel struct {
	Settings entity.Settings         `json:"settings"`
	Sections []entity.SettingSection `json:"sections"`
}

// Snapshot copies the state needed to draw the active page.
func (a *App) Snapshot(ctx context.Context) (*View, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, entity.ErrClientClosed
	}

	v := &View{
		ClientID: a.id,
		LoggedIn: a.session.LoggedIn,
		Email:    a.session.Email,
		Route:    a.route,
		Dialog:   DialogPanel{Kind: DialogHidden, Tab: TabDetails},
	}
	if !a.session.LoggedIn {
		return v, nil
	}

	for _, r := range entity.Routes() {
		v.Footer = append(v.Footer, FooterItem{Route: r, Label: r.Label(), Active: r == a.route})
	}

	signedUp, err := a.events.SignedUpEvents(ctx)
	if err != nil {
		return nil, err
	}
	v.SignedUp = signedUp

	events, err := a.events.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}

	switch a.route {
	case entity.RouteCalendar:
		now := a.opts.Now()
		v.Calendar = &CalendarPanel{
			View:       a.calendar.view,
			Date:       a.calendar.date,
			PickerOpen: a.calendar.pickerOpen,
			Months:     MonthOptions(now, a.calendar.date, a.opts.PickerMonths),
			Grid:       BuildCalendarGrid(a.calendar.view, a.calendar.date, now, events),
		}
	case entity.RouteScan:
		v.Scanner = &ScannerPanel{
			Scanning:   a.scanner.scanning,
			ShowResult: a.scanner.showResult,
			Result:     a.scanner.result,
			Notice:     a.scanner.notice,
			History:    append([]entity.ScanResult(nil), a.scanner.history...),
		}
	case entity.RouteSettings:
		v.Settings = &SettingsPanel{Settings: a.settings, Sections: a.settings.Sections()}
	}

	v.Dialog = a.dialogPanel(events)
	v.Pending = a.dialog.submitted || a.scanner.scanning
	return v, nil
}

func (a *App) dialogPanel(events []*entity.EventView) DialogPanel {
	p := DialogPanel{
		Open:  a.dialog.open,
		Tab:   a.dialog.tab,
		Form:  a.dialog.form,
		Error: a.dialog.formError,
	}
	for _, e := range events {
		if e.ID == a.dialog.eventID {
			p.Event = e
			break
		}
	}

	var ev *entity.Event
	signedUp := false
	if p.Event != nil {
		ev = p.Event.Event
		signedUp = p.Event.SignedUp
	}
	p.Kind = a.dialog.kind(ev, signedUp)
	if p.Kind == DialogHidden {
		p.Open = false
	}
	return p
}
