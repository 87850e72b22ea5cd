package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	repository "github.com/SudyStefan/MSD-UX-Prototype/internal/database/memory"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// App is the complete state of one browser client. Every updater holds mu,
// timer callbacks included, so transitions never interleave.
type App struct {
	mu sync.Mutex

	id     string
	opts   Options
	events EventService
	logger *logrus.Entry

	session  Session
	route    entity.Route
	calendar calendarState
	dialog   dialog
	scanner  scanner
	settings entity.Settings

	lastSeen time.Time
	closed   bool
}

// NewApp seeds a fresh client.
func NewApp(id string, opts Options) (*App, error) {
	opts = opts.withDefaults()
	now := opts.Now()

	eventRepo, err := repository.NewEventRepository(opts.Seed(now))
	if err != nil {
		return nil, fmt.Errorf("failed to seed events: %w", err)
	}

	logger := logrus.WithField("client_id", id)
	if n, err := eventRepo.Count(context.Background()); err == nil {
		logger.WithField("events", n).Debug("Client seeded")
	}

	return &App{
		id:       id,
		opts:     opts,
		events:   NewEventService(id, eventRepo, repository.NewSignupRepository(), opts.Publisher, opts.Now),
		logger:   logger,
		calendar: newCalendarState(now),
		dialog:   dialog{tab: TabDetails},
		settings: entity.DefaultSettings(),
		lastSeen: now,
	}, nil
}

func (a *App) ID() string {
	return a.id
}

func (a *App) Touch(now time.Time) {
	a.mu.Lock()
	a.lastSeen = now
	a.mu.Unlock()
}

func (a *App) LastSeen() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSeen
}

func (a *App) LoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.closed && a.session.LoggedIn
}

// after schedules fn under the App lock. fn is skipped when the task was
// cancelled or the App closed while the callback waited for the lock.
func (a *App) after(d time.Duration, fn func()) *scheduler.Task {
	var task *scheduler.Task
	ready := make(chan struct{})
	task = a.opts.Scheduler.After(d, func() {
		<-ready
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.closed || task.Canceled() {
			return
		}
		fn()
	})
	close(ready)
	return task
}

func (a *App) checkLocked() error {
	if a.closed {
		return entity.ErrClientClosed
	}
	if !a.session.LoggedIn {
		return entity.ErrNotLoggedIn
	}
	return nil
}

// Login accepts any non-empty email and password. An empty field is ignored
// without a message.
func (a *App) Login(email, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || !a.session.Login(email, password) {
		return false
	}
	a.logger.Info("Client logged in")
	return true
}

// Logout unmounts every view. Events and signups are kept.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	wasLoggedIn := a.session.LoggedIn
	a.session.Logout()
	a.scanner.teardown()
	a.dialog.reset()
	a.route = entity.RouteCalendar
	a.calendar = newCalendarState(a.opts.Now())
	a.settings = entity.DefaultSettings()

	if wasLoggedIn {
		a.logger.Info("Client logged out")
	}
}

// SelectRoute activates a route. It reports false when r was already active.
func (a *App) SelectRoute(r entity.Route) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if r < entity.RouteCalendar || r > entity.RouteSettings {
		return false, fmt.Errorf("%w: %d", entity.ErrUnknownRoute, int(r))
	}
	if err := a.checkLocked(); err != nil {
		return false, err
	}
	if r == a.route {
		return false, nil
	}

	switch a.route {
	case entity.RouteScan:
		a.scanner.teardown()
	case entity.RouteSettings:
		a.settings = entity.DefaultSettings()
	case entity.RouteCalendar:
		a.calendar = newCalendarState(a.opts.Now())
	}
	a.route = r
	return true, nil
}

func (a *App) SetCalendarView(v entity.CalendarView) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	a.calendar.setView(v)
	return nil
}

func (a *App) NavigateCalendar(dir entity.Direction) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	a.calendar.navigate(dir, a.opts.Now())
	return nil
}

func (a *App) ToggleMonthPicker() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	a.calendar.pickerOpen = !a.calendar.pickerOpen
	return nil
}

// JumpToMonth shows the month given as YYYY-MM.
func (a *App) JumpToMonth(month string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	return a.calendar.jumpTo(month)
}

// SelectEvent opens the dialog on an event. A pending confirmation is dropped.
func (a *App) SelectEvent(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	if _, err := a.events.GetEvent(ctx, id); err != nil {
		return err
	}
	a.dialog.show(id)
	return nil
}

func (a *App) SetDialogTab(tab DialogTab) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	if !a.dialog.open {
		return entity.ErrDialogClosed
	}
	a.dialog.tab = tab
	return nil
}

// CloseDialog may be called at any time.
func (a *App) CloseDialog() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.dialog.close()
}

// SubmitSignup submits the dialog form for the selected event. The form is
// only accepted while the dialog shows it.
func (a *App) SubmitSignup(ctx context.Context, form entity.GuideSignup) (*entity.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return nil, err
	}
	if !a.dialog.open {
		return nil, entity.ErrDialogClosed
	}

	view, err := a.events.GetEvent(ctx, a.dialog.eventID)
	if err != nil {
		return nil, err
	}
	if kind := a.dialog.kind(view.Event, view.SignedUp); kind != DialogForm {
		return nil, fmt.Errorf("%w: dialog shows %s", entity.ErrSignupNotAllowed, kind)
	}

	form.EventID = a.dialog.eventID
	a.dialog.form = form
	a.dialog.tab = TabSignup
	if !form.Complete() {
		a.dialog.formError = "Please fill in all fields."
		return nil, entity.ErrIncompleteSignup
	}

	event, err := a.events.HandleSignup(ctx, form)
	if err != nil {
		return nil, err
	}

	a.dialog.formError = ""
	a.dialog.submitted = true
	a.dialog.confirm = a.after(a.opts.ConfirmDelay, func() {
		a.dialog.confirm = nil
		a.dialog.close()
	})

	a.logger.WithFields(logrus.Fields{
		"event_id":         event.ID,
		"guides_signed_up": event.GuidesSignedUp,
		"guides_needed":    event.GuidesNeeded,
	}).Info("Guide signed up")
	return event, nil
}

// Signup applies a signup directly to the registry, without the dialog.
func (a *App) Signup(ctx context.Context, signup entity.GuideSignup) (*entity.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return nil, err
	}
	if !signup.Complete() {
		return nil, entity.ErrIncompleteSignup
	}

	event, err := a.events.HandleSignup(ctx, signup)
	if err != nil {
		return nil, err
	}
	a.logger.WithField("event_id", event.ID).Info("Guide signed up")
	return event, nil
}

func (a *App) Events(ctx context.Context) ([]*entity.EventView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return nil, err
	}
	return a.events.GetAllEvents(ctx)
}

func (a *App) Event(ctx context.Context, id string) (*entity.EventView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return nil, err
	}
	return a.events.GetEvent(ctx, id)
}

// StartScan opens the camera and schedules the simulated detection. It is
// a no-op while a scan runs and only works on the scan page.
func (a *App) StartScan(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return err
	}
	if a.route != entity.RouteScan {
		return fmt.Errorf("%w: scanner is not active", entity.ErrInvalidInput)
	}
	if a.scanner.scanning {
		return nil
	}

	stream, err := a.opts.Capture.Open(ctx, scanConstraints)
	if err != nil {
		a.scanner.notice = "Camera access error: " + err.Error()
		a.logger.WithError(err).Warn("Camera access failed")
		return fmt.Errorf("%w: %v", entity.ErrCameraUnavailable, err)
	}

	a.scanner.stream = stream
	a.scanner.scanning = true
	a.scanner.showResult = false
	a.scanner.notice = ""
	a.scanner.task = a.after(a.opts.ScanDelay, a.completeScanLocked)
	return nil
}

func (a *App) completeScanLocked() {
	a.scanner.task = nil
	a.scanner.release()

	result := entity.ScanResult{ID: uuid.NewString(), Data: a.opts.ScanValue, ScannedAt: a.opts.Now()}
	a.scanner.result = result.Data
	a.scanner.showResult = true
	a.scanner.record(result, a.opts.ScanHistory)

	a.logger.WithField("data", result.Data).Info("QR code scanned")
}

// StopScan may be called at any time.
func (a *App) StopScan() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.scanner.release()
}

func (a *App) ToggleSetting(key entity.SettingKey) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(); err != nil {
		return false, err
	}
	return a.settings.Toggle(key)
}

// Close cancels every pending task and releases the camera. The App is
// unusable afterwards.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true
	a.scanner.teardown()
	a.dialog.reset()
}
