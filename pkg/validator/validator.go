package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("campo %s no cumple la regla %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("campo %s no cumple la regla %s", e.Field, e.Tag)
}

// Struct valida un struct según sus tags `validate` y devuelve los errores de campo.
func Struct(s interface{}) []FieldError {
	var errs []FieldError
	if err := validate.Struct(s); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				Field: strings.ToLower(ve.Field()),
				Tag:   ve.Tag(),
				Param: ve.Param(),
			})
		}
	}
	return errs
}

// FirstError devuelve el primer error de validación como error simple, o nil si no hay.
func FirstError(s interface{}) error {
	errs := Struct(s)
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
