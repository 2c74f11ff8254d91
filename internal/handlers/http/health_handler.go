package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/handlers/dto"
)

// HealthResponse é o payload de /api/health
type HealthResponse struct {
	Status    string            `json:"status" example:"UP"`
	Message   string            `json:"message"`
	Timestamp dto.LocalDateTime `json:"timestamp" swaggertype:"string" example:"2025-01-01 08:00:00"`
	Version   string            `json:"version" example:"0.0.1-SNAPSHOT"`
}

// HealthHandler responde às rotas de liveness e boas-vindas
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// Health godoc
// @Summary      Health check
// @Description  Retorna o estado do serviço sem tocar no banco
// @Tags         system
// @Produce      json
// @Param        lang  query  string  false  "Idioma (en, zh-CN)"
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "UP",
		Message:   dto.T(c, "health.message"),
		Timestamp: dto.LocalDateTime(h.now()),
		Version:   h.version,
	})
}

// Welcome godoc
// @Summary      Mensagem de boas-vindas
// @Tags         system
// @Produce      plain
// @Param        lang  query  string  false  "Idioma (en, zh-CN)"
// @Success      200  {string}  string
// @Router       /api/welcome [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, dto.T(c, "welcome"))
}
