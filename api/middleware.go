package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apimodels "github.com/deffiedeff2/event-app/api/models"
)

const contextUserKey = "user"

// RequestID tags every request with a generated ID for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequireAuth rejects requests without a session user and exposes the
// username on the gin context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentSession(c).Get()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apimodels.ErrorResponse{
				Error: "You must be logged in.",
			})
			return
		}
		c.Set(contextUserKey, username)
		c.Next()
	}
}

// sessionUser returns the authenticated username set by RequireAuth.
func sessionUser(c *gin.Context) string {
	return c.GetString(contextUserKey)
}
