package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger returns a middleware that logs requests using logrus
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		// Health probes and the live feed are too chatty to log
		if path == "/up" || strings.HasSuffix(c.Request.URL.Path, "/health") || strings.HasSuffix(c.Request.URL.Path, "/activity/stream") {
			return
		}

		entry := logrus.WithFields(logrus.Fields{
			"status":    statusCode,
			"latency":   latency,
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      path,
		})

		// Only log errors (status >= 400); 422 is the normal form re-render
		switch {
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400 && statusCode != 422:
			entry.Warn("Client error")
		default:
			entry.Debug("Request handled")
		}
	}
}
