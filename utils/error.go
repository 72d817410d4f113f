package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and renders the shared
// error page instead of dropping the connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				RenderError(c, http.StatusInternalServerError,
					"Something went wrong. Please try again later.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RenderError renders the shared error page with a user-facing message.
func RenderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":   "Something went wrong",
		"Message": message,
	})
}
