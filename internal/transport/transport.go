package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/config"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/service"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/transport/middleware"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/web"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/worker"
	"github.com/gin-gonic/gin"
)

func InitRoutes(cfg *config.Config, store *service.AppStore, cleanupWorker *worker.ClientCleanupWorker, pageHandler *PageHandler, apiHandler *APIHandler) (*gin.Engine, error) {

	router := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(cfg.Server.Timeout))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"clients": store.Len(),
			"cleanup": cleanupWorker.GetStats(),
			"time":    time.Now().UTC(),
		})
	})

	client := middleware.Client(store, cfg.App.CookieName, cfg.App.CookieSecure)

	// Web interface routes
	pages := router.Group("/", client)
	{
		pages.GET("", pageHandler.Index)
		pages.POST("/login", pageHandler.Login)
		pages.POST("/logout", pageHandler.Logout)
		pages.POST("/route/:route", pageHandler.SelectRoute)

		calendar := pages.Group("/calendar")
		{
			calendar.POST("/view/:view", pageHandler.SetCalendarView)
			calendar.POST("/navigate/:direction", pageHandler.NavigateCalendar)
			calendar.POST("/picker", pageHandler.ToggleMonthPicker)
			calendar.POST("/jump", pageHandler.JumpToMonth)
		}

		pages.POST("/events/:id/select", pageHandler.SelectEvent)

		dialog := pages.Group("/dialog")
		{
			dialog.POST("/tab/:tab", pageHandler.SetDialogTab)
			dialog.POST("/close", pageHandler.CloseDialog)
			dialog.POST("/signup", pageHandler.SubmitSignup)
		}

		scan := pages.Group("/scan")
		{
			scan.POST("/start", pageHandler.StartScan)
			scan.POST("/stop", pageHandler.StopScan)
		}

		pages.POST("/settings/:key/toggle", pageHandler.ToggleSetting)
	}

	// API routes
	api := router.Group("/api/v1", client)
	{
		api.GET("/state", apiHandler.State)

		session := api.Group("/session")
		{
			session.POST("/login", apiHandler.Login)
			session.POST("/logout", apiHandler.Logout)
		}

		authorized := api.Group("", middleware.RequireLogin())
		{
			authorized.POST("/route/:route", apiHandler.SelectRoute)
			authorized.GET("/events", apiHandler.GetAllEvents)
			authorized.GET("/events/:id", apiHandler.GetEvent)
			authorized.POST("/events/:id/signups", apiHandler.Signup)
		}
	}

	return router, nil
}
