package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"promarket/config"
	"promarket/models"
	"promarket/utils"
)

// Context keys set by SessionAuthMiddleware.
const (
	CtxKeyViewer       = "viewer"
	CtxKeySessionToken = "sessionToken"
)

// SessionAuthMiddleware resolves the viewer from the backend-issued session
// cookie. Validated sessions are cached in Redis by token hash so repeat
// page loads skip JWT parsing. Requests without a valid session are
// redirected to the login page with a return path.
func SessionAuthMiddleware(cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		token, err := c.Cookie(config.AppConfig.SessionCookie)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		tokenHash := utils.HashToken(token)
		viewer, err := utils.GetViewerSession(cache, tokenHash)
		if err != nil {
			viewer, err = utils.ViewerFromToken(token)
			if err != nil {
				logger.Warn("invalid session token", zap.Error(err))
				redirectToLogin(c)
				return
			}
			if cacheErr := utils.CacheViewerSession(cache, tokenHash, *viewer); cacheErr != nil {
				logger.Warn("failed to cache viewer session", zap.Error(cacheErr))
			}
		}

		c.Set(CtxKeyViewer, *viewer)
		c.Set(CtxKeySessionToken, token)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	target := "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// CurrentViewer returns the viewer resolved for this request.
func CurrentViewer(c *gin.Context) (models.Viewer, bool) {
	v, ok := c.Get(CtxKeyViewer)
	if !ok {
		return models.Viewer{}, false
	}
	viewer, ok := v.(models.Viewer)
	return viewer, ok
}

// SessionToken returns the raw session token forwarded to backend calls.
func SessionToken(c *gin.Context) string {
	if v, ok := c.Get(CtxKeySessionToken); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
