package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
)

// RatingMessage is reported for any rating outside [0, 10].
const RatingMessage = "O rating deve estar entre 0 e 10."

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(jsonName)
	if err := val.RegisterValidation("rating", validRating); err != nil {
		panic(err)
	}
	return val
}

func validRating(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := fl.Field().Int()
		return n >= 0 && n <= 10
	}
	return false
}

// Struct validates s and reports the first failure as an apperr.Invalid
// carrying a client-facing message.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.Invalid(messageFor(verrs[0]))
	}
	return apperr.Invalid(err.Error())
}

// jsonName reports fields by their request body name.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "rating":
		return RatingMessage
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", fe.Field())
	case "email":
		return fmt.Sprintf("O campo %s deve ser um email válido.", fe.Field())
	case "min":
		return fmt.Sprintf("O campo %s deve ter pelo menos %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("O campo %s deve ser >= %s.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser > %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido.", fe.Field())
	}
}
