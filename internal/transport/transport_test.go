package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/config"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/service"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/transport/middleware"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/worker"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/media"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	clock  *scheduler.Manual
	camera *media.SimulatedCapture
	store  *service.AppStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.ParseConfig(config.NewViper())
	require.NoError(t, err)

	s := &testServer{
		clock:  scheduler.NewManual(),
		camera: media.NewSimulatedCapture(true),
	}
	s.store, err = service.NewAppStore(service.Options{Scheduler: s.clock, Capture: s.camera})
	require.NoError(t, err)
	t.Cleanup(s.store.Close)

	cleanupWorker := worker.NewClientCleanupWorker(s.store, cfg.Worker.CleanupInterval, cfg.App.ClientIdleTimeout)
	s.router, err = InitRoutes(cfg, s.store, cleanupWorker, NewPageHandler(cfg.App.Name), NewAPIHandler())
	require.NoError(t, err)
	return s
}

// browser keeps the client cookie between requests
type browser struct {
	t      *testing.T
	server *testServer
	cookie *http.Cookie
}

func (s *testServer) browser(t *testing.T) *browser {
	return &browser{t: t, server: s}
}

func (b *browser) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	b.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	w := httptest.NewRecorder()
	b.server.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == "guide_client" {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, "", nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (b *browser) postJSON(path, body string) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, "application/json", strings.NewReader(body))
}

func (b *browser) login() {
	b.t.Helper()
	w := b.post("/login", url.Values{"email": {"guide@example.com"}, "password": {"secret"}})
	require.Equal(b.t, http.StatusSeeOther, w.Code)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	s.browser(t).get("/")

	w := s.browser(t).get("/health")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["clients"])

	cleanup, ok := body["cleanup"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "client_cleanup", cleanup["worker_type"])
	assert.EqualValues(t, 1, cleanup["clients"])
}

func TestIndexShowsLoginAndSetsCookie(t *testing.T) {
	s := newTestServer(t)
	b := s.browser(t)

	w := b.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/login"`)
	require.NotNil(t, b.cookie)
	assert.NotEmpty(t, b.cookie.Value)

	b.get("/")
	assert.Equal(t, 1, s.store.Len())
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		loggedIn bool
	}{
		{name: "valid", form: url.Values{"email": {"a@b.c"}, "password": {"x"}}, loggedIn: true},
		{name: "empty password", form: url.Values{"email": {"a@b.c"}}},
		{name: "empty email", form: url.Values{"password": {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestServer(t).browser(t)

			w := b.post("/login", tt.form)
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))

			body := b.get("/").Body.String()
			assert.Equal(t, tt.loggedIn, strings.Contains(body, `action="/logout"`))
		})
	}
}

func TestCalendarPage(t *testing.T) {
	b := newTestServer(t).browser(t)
	b.login()

	body := b.get("/").Body.String()
	assert.Contains(t, body, `class="grid"`)
	assert.Contains(t, body, `/events/evt-1/select`)
	assert.Contains(t, body, "#9ca3af")

	assert.Equal(t, http.StatusSeeOther, b.post("/calendar/view/week", nil).Code)
	assert.Equal(t, http.StatusSeeOther, b.post("/calendar/navigate/next", nil).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/calendar/view/year", nil).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/calendar/navigate/sideways", nil).Code)
}

// TestHTMLSignupFlow walks the dialog from selection to the closed confirmation
func TestHTMLSignupFlow(t *testing.T) {
	s := newTestServer(t)
	b := s.browser(t)
	b.login()

	require.Equal(t, http.StatusSeeOther, b.post("/events/evt-1/select", nil).Code)
	body := b.get("/").Body.String()
	assert.Contains(t, body, "Old Town Walking Tour")
	assert.Contains(t, body, "2 / 3")

	require.Equal(t, http.StatusSeeOther, b.post("/dialog/tab/signup", nil).Code)
	require.Equal(t, http.StatusSeeOther, b.post("/dialog/signup", url.Values{"guide_name": {"Ada"}}).Code)
	assert.Contains(t, b.get("/").Body.String(), "Please fill in all fields.")

	w := b.post("/dialog/signup", url.Values{
		"guide_name": {"Ada"},
		"email":      {"ada@example.com"},
		"phone":      {"123"},
		"experience": {"Lots"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body = b.get("/").Body.String()
	assert.Contains(t, body, "Thank you for signing up")
	assert.Contains(t, body, `http-equiv="refresh"`)

	s.clock.Advance(service.DefaultConfirmDelay)

	body = b.get("/").Body.String()
	assert.NotContains(t, body, "Thank you for signing up")
	assert.NotContains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, "#059669")
}

func TestHTMLSignupResubmitRedirects(t *testing.T) {
	s := newTestServer(t)
	b := s.browser(t)
	b.login()

	form := url.Values{
		"guide_name": {"Ada"},
		"email":      {"ada@example.com"},
		"phone":      {"123"},
		"experience": {"Lots"},
	}
	require.Equal(t, http.StatusSeeOther, b.post("/events/evt-1/select", nil).Code)
	require.Equal(t, http.StatusSeeOther, b.post("/dialog/signup", form).Code)

	w := b.post("/dialog/signup", form)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, b.get("/").Body.String(), "Thank you for signing up")

	event := decode(t, b.get("/api/v1/events/evt-1"))
	assert.EqualValues(t, 3, event["guides_signed_up"])
}

func TestDialogActionsWithoutDialog(t *testing.T) {
	b := newTestServer(t).browser(t)
	b.login()

	assert.Equal(t, http.StatusConflict, b.post("/dialog/tab/signup", nil).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/dialog/tab/other", nil).Code)
	assert.Equal(t, http.StatusSeeOther, b.post("/dialog/close", nil).Code)
	assert.Equal(t, http.StatusNotFound, b.post("/events/evt-404/select", nil).Code)
}

func TestRoutesAndSettings(t *testing.T) {
	b := newTestServer(t).browser(t)
	b.login()

	assert.Equal(t, http.StatusSeeOther, b.post("/route/settings", nil).Code)
	body := b.get("/").Body.String()
	assert.Contains(t, body, "Auto lock")
	assert.Contains(t, body, "Billing")

	assert.Equal(t, http.StatusSeeOther, b.post("/settings/sync/toggle", nil).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/settings/wifi/toggle", nil).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/route/profile", nil).Code)
}

func TestScanPage(t *testing.T) {
	s := newTestServer(t)
	b := s.browser(t)
	b.login()
	require.Equal(t, http.StatusSeeOther, b.post("/route/scan", nil).Code)

	require.Equal(t, http.StatusSeeOther, b.post("/scan/start", nil).Code)
	assert.Equal(t, 1, s.camera.OpenStreams())
	assert.Contains(t, b.get("/").Body.String(), "Stop scanning")

	s.clock.Advance(service.DefaultScanDelay)
	body := b.get("/").Body.String()
	assert.Contains(t, body, "Scanned: "+service.DefaultScanValue)
	assert.Zero(t, s.camera.OpenStreams())

	s.camera.Available = false
	require.Equal(t, http.StatusSeeOther, b.post("/scan/start", nil).Code)
	assert.Contains(t, b.get("/").Body.String(), "Camera access error")
}

func TestPageActionsNeedLogin(t *testing.T) {
	b := newTestServer(t).browser(t)

	w := b.post("/route/scan", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, b.get("/").Body.String(), `action="/login"`)
}

func TestAPISession(t *testing.T) {
	b := newTestServer(t).browser(t)

	assert.Equal(t, http.StatusUnauthorized, b.get("/api/v1/events").Code)

	w := b.postJSON("/api/v1/session/login", `{"email":"","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["logged_in"])

	w = b.postJSON("/api/v1/session/login", `{"email":"guide@example.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["logged_in"])

	state := decode(t, b.get("/api/v1/state"))
	assert.Equal(t, "guide@example.com", state["email"])
	assert.Equal(t, "calendar", state["route"])

	w = b.postJSON("/api/v1/session/logout", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, b.get("/api/v1/state"))["logged_in"])
}

func TestAPIEventsAndSignup(t *testing.T) {
	b := newTestServer(t).browser(t)
	b.postJSON("/api/v1/session/login", `{"email":"guide@example.com","password":"x"}`)

	w := b.get("/api/v1/events")
	require.Equal(t, http.StatusOK, w.Code)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 8)
	assert.Equal(t, "evt-1", events[0]["id"])
	assert.Equal(t, "available", events[0]["status"])

	signup := `{"guide_name":"Ada","email":"ada@example.com","phone":"123","experience":"Lots"}`
	for want := 1.0; want <= 2; want++ {
		w = b.postJSON("/api/v1/events/evt-3/signups", signup)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, want, body["guides_signed_up"])
		assert.Equal(t, "signed_up", body["status"])
	}

	w = b.get("/api/v1/events/evt-3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, decode(t, w)["guides_signed_up"])

	assert.Equal(t, http.StatusNotFound, b.postJSON("/api/v1/events/evt-404/signups", signup).Code)
	assert.Equal(t, http.StatusNotFound, b.get("/api/v1/events/evt-404").Code)
	assert.Equal(t, http.StatusBadRequest, b.postJSON("/api/v1/events/evt-3/signups", `{"guide_name":"Ada"}`).Code)
	assert.Equal(t, http.StatusBadRequest, b.postJSON("/api/v1/events/evt-3/signups",
		`{"guide_name":" ","email":"a","phone":"1","experience":"x"}`).Code)
}

func TestAPIRoute(t *testing.T) {
	b := newTestServer(t).browser(t)
	b.postJSON("/api/v1/session/login", `{"email":"guide@example.com","password":"x"}`)

	w := b.postJSON("/api/v1/route/scan", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["changed"])

	w = b.postJSON("/api/v1/route/scan", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["changed"])

	assert.Equal(t, http.StatusBadRequest, b.postJSON("/api/v1/route/nowhere", `{}`).Code)
}

func TestClientsDoNotShareState(t *testing.T) {
	s := newTestServer(t)
	a := s.browser(t)
	b := s.browser(t)

	a.login()
	b.get("/")

	assert.Contains(t, a.get("/").Body.String(), `action="/logout"`)
	assert.Contains(t, b.get("/").Body.String(), `action="/login"`)
	assert.Equal(t, 2, s.store.Len())
}

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var deadline bool
	router.Use(middleware.Timeout(time.Second))
	router.GET("/", func(c *gin.Context) {
		_, deadline = c.Request.Context().Deadline()
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, deadline)
}
