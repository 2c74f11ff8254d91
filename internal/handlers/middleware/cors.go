package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir de uma lista separada por vírgula.
// "*" libera qualquer origem, sem credenciais.
func CORS(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Actor-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
