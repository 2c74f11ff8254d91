package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/handlers/dto"
	"github.com/cynric/familymanagement-backend/internal/services"
)

// DBTestHandler expõe os diagnósticos de banco
type DBTestHandler struct {
	diagnostics *services.DiagnosticsService
	logger      ports.Logger
}

// NewDBTestHandler cria um novo DBTestHandler
func NewDBTestHandler(diagnostics *services.DiagnosticsService, logger ports.Logger) *DBTestHandler {
	return &DBTestHandler{
		diagnostics: diagnostics,
		logger:      logger.With("component", "db_test_handler"),
	}
}

// TestConnection godoc
// @Summary      Testa a conexão com o banco
// @Description  Executa SELECT 1. Sempre responde 200; falhas aparecem no texto.
// @Tags         db-test
// @Produce      plain
// @Param        lang  query  string  false  "Idioma (en, zh-CN)"
// @Success      200  {string}  string
// @Router       /api/db-test/test [get]
func (h *DBTestHandler) TestConnection(c *gin.Context) {
	status := h.diagnostics.TestConnection(c.Request.Context())

	if !status.Connected {
		c.String(http.StatusOK, dto.T(c, "db.test.failure", map[string]interface{}{"Error": status.Error}))
		return
	}

	c.String(http.StatusOK, dto.T(c, "db.test.success", map[string]interface{}{"Result": status.Result}))
}

// ListTables godoc
// @Summary      Lista as tabelas do schema public
// @Tags         db-test
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/db-test/tables [get]
func (h *DBTestHandler) ListTables(c *gin.Context) {
	tables, err := h.diagnostics.ListTables(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list tables", "error", err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	if tables == nil {
		tables = []string{}
	}
	c.JSON(http.StatusOK, tables)
}
