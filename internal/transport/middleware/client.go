package middleware

import (
	"net/http"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	appKey      = "app"
	clientIDKey = "client_id"
)

// Client binds the request to the App named by the client cookie and
// creates a new client when the cookie is missing or stale.
func Client(store *service.AppStore, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		app, created, err := store.Resolve(id)
		if err != nil {
			logrus.WithError(err).Error("Failed to create client")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
			return
		}
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, app.ID(), 0, "/", "", secure, true)
		}

		c.Set(appKey, app)
		c.Set(clientIDKey, app.ID())
		c.Next()
	}
}

// App returns the client bound by Client.
func App(c *gin.Context) *service.App {
	return c.MustGet(appKey).(*service.App)
}

// RequireLogin rejects API calls of clients that are not logged in.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !App(c).LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Next()
	}
}
