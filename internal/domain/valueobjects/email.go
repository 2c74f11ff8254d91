package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/cynric/familymanagement-backend/internal/domain/errors"
)

var (
	ErrInvalidEmail = domainerrors.ErrInvalidEmail

	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor zero representa "sem email" (a coluna é opcional).
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NewOptionalEmail aceita string vazia como ausência de email
func NewOptionalEmail(email string) (Email, error) {
	if strings.TrimSpace(email) == "" {
		return Email{}, nil
	}
	return NewEmail(email)
}

// EmailFromStorage reconstrói um Email já persistido sem validar o formato.
// Linhas antigas podem ter endereços que NewEmail recusaria.
func EmailFromStorage(raw string) Email {
	return Email{value: raw}
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
