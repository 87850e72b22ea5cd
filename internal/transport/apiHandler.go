package transport

import (
	"net/http"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

// APIHandler exposes the same client state as JSON.
type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

func (h *APIHandler) State(c *gin.Context) {
	view, err := middleware.App(c).Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *APIHandler) Login(c *gin.Context) {
	var req loginForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loggedIn := middleware.App(c).Login(req.Email, req.Password)
	c.JSON(http.StatusOK, gin.H{"logged_in": loggedIn || middleware.App(c).LoggedIn()})
}

func (h *APIHandler) Logout(c *gin.Context) {
	middleware.App(c).Logout()
	c.JSON(http.StatusOK, gin.H{"logged_in": false})
}

func (h *APIHandler) SelectRoute(c *gin.Context) {
	route, err := entity.ParseRoute(c.Param("route"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := middleware.App(c).SelectRoute(route)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route, "changed": changed})
}

func (h *APIHandler) GetAllEvents(c *gin.Context) {
	events, err := middleware.App(c).Events(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *APIHandler) GetEvent(c *gin.Context) {
	event, err := middleware.App(c).Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// Signup applies a signup without the dialog. Repeating it counts again.
func (h *APIHandler) Signup(c *gin.Context) {
	var req entity.GuideSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.EventID = c.Param("id")

	event, err := middleware.App(c).Signup(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entity.NewEventView(event, true))
}
