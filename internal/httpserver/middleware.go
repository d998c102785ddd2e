package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"modernshop/internal/i18n"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	localeKey       = "locale"
)

// requestIDMiddleware propagates the caller's X-Request-ID or mints a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// localeMiddleware negotiates en/he from ?lang= or Accept-Language.
func localeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(localeKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func localeOf(c *gin.Context) string {
	if v := c.GetString(localeKey); v != "" {
		return v
	}
	return i18n.English
}
