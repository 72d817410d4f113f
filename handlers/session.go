package handlers

import (
	"github.com/gin-gonic/gin"

	"promarket/middleware"
	"promarket/services/marketplace"
)

// sessionFrom builds the backend session from the request's validated
// cookie token, carrying the request ID through to backend calls.
func sessionFrom(c *gin.Context) marketplace.Session {
	return marketplace.Session{
		Token:     middleware.SessionToken(c),
		RequestID: middleware.GetRequestID(c),
	}
}
