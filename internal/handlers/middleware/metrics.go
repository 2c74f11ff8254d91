package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/infrastructure/metrics"
)

// RequestMetrics registra contagem, latência e requisições em andamento.
// O label path usa a rota registrada (c.FullPath) para limitar a cardinalidade.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// BaseURL publica a URL base da API no contexto para os tipos de problema RFC 7807
func BaseURL(url string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", url)
		c.Next()
	}
}
