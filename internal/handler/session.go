package handler

import (
	"citizen-services/internal/i18n"
	"citizen-services/internal/middleware"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionScope attaches the caller's session, recreating it from seed data when the
// token outlived it. Must run after JWTAuth.
func SessionScope(reg *service.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := reg.Ensure(c.GetString(middleware.SessionIDKey), c.GetInt(middleware.UserIDKey))
		c.Set(sessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *service.Session {
	return c.MustGet(sessionKey).(*service.Session)
}

// sessionLocale feeds middleware.Locale.
func sessionLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(sessionKey); ok {
		return v.(*service.Session).Locale()
	}
	return ""
}
