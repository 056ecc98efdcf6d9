package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/logger"
)

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
