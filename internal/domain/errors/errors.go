package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrUsernameAlreadyExists = errors.New("error.username_already_exists")
	ErrPhoneAlreadyExists    = errors.New("error.phone_already_exists")
	ErrInvalidUserID         = errors.New("error.invalid_user_id")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidInput = errors.New("error.invalid_input")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)
