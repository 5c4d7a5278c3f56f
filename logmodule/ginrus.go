package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Ginrus returns a gin middleware which logs every request through logrus
func Ginrus(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.WithFields(log.Fields{
			"prefix":    prefix,
			"status":    c.Writer.Status(),
			"method":    c.Request.Method,
			"path":      path,
			"ip":        c.ClientIP(),
			"latency":   time.Since(start),
			"userAgent": c.Request.UserAgent(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
			return
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error()
		case status >= 400:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}
