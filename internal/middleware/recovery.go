package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic into a 500 and reports it to Sentry
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("panic: %v", recovered)
				logrus.WithFields(logrus.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Errorf("%v\n%s", err, debug.Stack())

				utils.CaptureError(err, map[string]string{
					"method": c.Request.Method,
					"path":   c.FullPath(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
