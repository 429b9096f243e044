package middleware

import (
	"citizen-services/internal/i18n"

	"github.com/gin-gonic/gin"
)

const LocaleKey = "locale"

// Locale resolves the display locale of a request: a valid ?lang= query wins, then
// the session's chosen locale, then Accept-Language, then the store's fallback.
// sessionLocale may be nil; it returns "" when the session has no preference.
func Locale(tr *i18n.Store, sessionLocale func(*gin.Context) i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LocaleKey, resolve(c, tr, sessionLocale))
		c.Next()
	}
}

func resolve(c *gin.Context, tr *i18n.Store, sessionLocale func(*gin.Context) i18n.Locale) i18n.Locale {
	if l, ok := i18n.Parse(c.Query("lang")); ok {
		return l
	}
	if sessionLocale != nil {
		if l := sessionLocale(c); l != "" {
			return l
		}
	}
	return tr.Negotiate(c.GetHeader("Accept-Language"))
}

// LocaleOf returns the locale chosen by Locale, or TH when the middleware did not run.
func LocaleOf(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.TH
}
