package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cynric/familymanagement-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=zh-CN
// 2. Accept-Language header
// 3. Idioma padrão
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			lang = m.match(queryLang)
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o primeiro idioma suportado
// Exemplo: "zh-TW,zh;q=0.9,en-US;q=0.8" -> "zh-CN"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if matched := m.match(lang); matched != "" {
			return matched
		}
	}

	return ""
}

// match resolve uma tag de idioma para um idioma suportado.
// Tenta a tag exata, depois a base (en-US -> en), depois uma variante
// regional da mesma base (zh -> zh-CN).
func (m *I18nMiddleware) match(lang string) string {
	if lang == "" || lang == "*" {
		return ""
	}

	if m.i18nService.IsLanguageSupported(lang) {
		return lang
	}

	base := lang
	if idx := strings.Index(lang, "-"); idx != -1 {
		base = lang[:idx]
		if m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.EqualFold(strings.SplitN(supported, "-", 2)[0], base) {
			return supported
		}
	}

	return ""
}
