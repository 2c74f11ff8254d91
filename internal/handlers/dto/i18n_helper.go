package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/handlers/middleware"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/i18n"
)

// FallbackLanguage é usado quando o middleware de i18n não rodou
const FallbackLanguage = "zh-CN"

// T traduz uma chave no idioma da requisição
// Uso: dto.T(c, "db.test.success", map[string]interface{}{"Result": 1})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(middleware.LanguageContextKey); ok {
		if s, ok := lang.(string); ok && s != "" {
			return s
		}
	}
	return FallbackLanguage
}
