package middleware

import (
	"github.com/gin-gonic/gin"

	"promarket/utils"
)

const CtxKeyFlash = "flash"

// FlashMiddleware reads the one-shot flash cookie into the context and
// clears it, valid or not, so a bad cookie is never retried.
func FlashMiddleware(codec *utils.FlashCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(CtxKeyFlash, f)
			}
			c.SetCookie(codec.CookieName, "", -1, "/", "", codec.Secure, true)
		}
		c.Next()
	}
}

// GetFlash returns the flash decoded for this request, if any.
func GetFlash(c *gin.Context) *utils.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*utils.Flash); ok {
			return f
		}
	}
	return nil
}

// SetFlash queues a flash message for the next page render.
func SetFlash(c *gin.Context, codec *utils.FlashCodec, f utils.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	c.SetCookie(codec.CookieName, val, codec.CookieMaxAge(), "/", "", codec.Secure, true)
}
