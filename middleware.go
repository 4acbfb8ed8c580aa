package main

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const themeCookie = "theme"

// requestLogger tags every request with a short id and logs the outcome.
// Static assets are skipped to keep the log readable.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		reqID := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		c.Set("request_id", reqID)
		start := time.Now()

		c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// themeFromRequest reads the visitor's theme cookie; dark is the default.
func themeFromRequest(c *gin.Context) string {
	if v, err := c.Cookie(themeCookie); err == nil && v == "light" {
		return "light"
	}
	return "dark"
}

// pageData assembles the fields every page template needs.
func pageData(c *gin.Context, site siteConfig, extra gin.H) gin.H {
	data := gin.H{
		"L":     localizer{Lang: negotiateLang(c)},
		"Theme": themeFromRequest(c),
		"Site":  site,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
