package services

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations adiciona as tags próprias do projeto a um validator.
// O gin usa outra instância, então o router também precisa chamar esta função.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("maxbytes", maxBytes)
}

// maxBytes compara o tamanho em bytes UTF-8, que é o que o bcrypt limita
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
