package dto

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/cynric/familymanagement-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		DefaultProblem: &problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// WriteProblem escreve o problema com o content type application/problem+json
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta de erro 400 com erros por campo
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 sem detalhe por campo
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// ValidationErrorsI18n extrai os erros por campo do validator, traduzidos.
// Retorna nil quando err não é validator.ValidationErrors.
func ValidationErrorsI18n(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		params := map[string]interface{}{"Field": field, "Param": fe.Param()}

		key := "validation." + fe.Tag()
		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.default", params)
		}

		out = append(out, ValidationError{Field: field, Message: message, Tag: fe.Tag()})
	}
	return out
}

var jsonNamesOnce sync.Once

// UseJSONFieldNames faz o validator do gin reportar os nomes das tags json
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
