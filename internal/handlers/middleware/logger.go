package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/domain/ports"
)

// RequestLogger registra uma linha por requisição no logger estruturado
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if status >= 500 {
			logger.Error("request failed", args...)
			return
		}
		logger.Info("request", args...)
	}
}
