package transport

import (
	"errors"
	"net/http"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/service"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PageHandler serves the phone-frame UI. Every POST redirects back to the page.
type PageHandler struct {
	appName string
}

func NewPageHandler(appName string) *PageHandler {
	return &PageHandler{appName: appName}
}

type loginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type signupForm struct {
	GuideName  string `form:"guide_name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Experience string `form:"experience"`
}

func (h *PageHandler) Index(c *gin.Context) {
	view, err := middleware.App(c).Snapshot(c.Request.Context())
	if err != nil {
		c.String(statusFor(err), err.Error())
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"AppName": h.appName,
		"View":    view,
	})
}

func (h *PageHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	middleware.App(c).Login(form.Email, form.Password)
	back(c)
}

func (h *PageHandler) Logout(c *gin.Context) {
	middleware.App(c).Logout()
	back(c)
}

func (h *PageHandler) SelectRoute(c *gin.Context) {
	route, err := entity.ParseRoute(c.Param("route"))
	if err != nil {
		h.fail(c, err)
		return
	}
	_, err = middleware.App(c).SelectRoute(route)
	h.done(c, err)
}

func (h *PageHandler) SetCalendarView(c *gin.Context) {
	view, err := entity.ParseCalendarView(c.Param("view"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.done(c, middleware.App(c).SetCalendarView(view))
}

func (h *PageHandler) NavigateCalendar(c *gin.Context) {
	dir, err := entity.ParseDirection(c.Param("direction"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.done(c, middleware.App(c).NavigateCalendar(dir))
}

func (h *PageHandler) ToggleMonthPicker(c *gin.Context) {
	h.done(c, middleware.App(c).ToggleMonthPicker())
}

func (h *PageHandler) JumpToMonth(c *gin.Context) {
	h.done(c, middleware.App(c).JumpToMonth(c.PostForm("month")))
}

func (h *PageHandler) SelectEvent(c *gin.Context) {
	h.done(c, middleware.App(c).SelectEvent(c.Request.Context(), c.Param("id")))
}

func (h *PageHandler) SetDialogTab(c *gin.Context) {
	tab, err := service.ParseDialogTab(c.Param("tab"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.done(c, middleware.App(c).SetDialogTab(tab))
}

func (h *PageHandler) CloseDialog(c *gin.Context) {
	middleware.App(c).CloseDialog()
	back(c)
}

func (h *PageHandler) SubmitSignup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	_, err := middleware.App(c).SubmitSignup(c.Request.Context(), entity.GuideSignup{
		GuideName:  form.GuideName,
		Email:      form.Email,
		Phone:      form.Phone,
		Experience: form.Experience,
	})
	// the dialog shows the missing fields, or the view that replaced the form
	if errors.Is(err, entity.ErrIncompleteSignup) || errors.Is(err, entity.ErrSignupNotAllowed) {
		err = nil
	}
	h.done(c, err)
}

func (h *PageHandler) StartScan(c *gin.Context) {
	err := middleware.App(c).StartScan(c.Request.Context())
	// the scanner page shows the camera notice
	if errors.Is(err, entity.ErrCameraUnavailable) {
		err = nil
	}
	h.done(c, err)
}

func (h *PageHandler) StopScan(c *gin.Context) {
	middleware.App(c).StopScan()
	back(c)
}

func (h *PageHandler) ToggleSetting(c *gin.Context) {
	key, err := entity.ParseSettingKey(c.Param("key"))
	if err != nil {
		h.fail(c, err)
		return
	}
	_, err = middleware.App(c).ToggleSetting(key)
	h.done(c, err)
}

func (h *PageHandler) done(c *gin.Context, err error) {
	if err != nil && !errors.Is(err, entity.ErrNotLoggedIn) {
		h.fail(c, err)
		return
	}
	back(c)
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("client_id", c.GetString("client_id")).Error("Page action failed")
	}
	c.String(status, err.Error())
}

func back(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
