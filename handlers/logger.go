package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promarket/middleware"
	"promarket/utils"
)

// getLogger returns the global logger annotated with this request's ID.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger()
	if rid := middleware.GetRequestID(c); rid != "" {
		return logger.With(zap.String("request_id", rid))
	}
	return logger
}
