package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"football-league/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre del campo JSON, no el de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON deserializa el cuerpo de una petición. Un tipo incorrecto o una
// fecha mal formada se devuelve como ValidationError, nunca llega a la base
// de datos.
func DecodeJSON(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &models.ValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("se esperaba %s", typeErr.Type),
			}
		}
		return &models.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}

// Struct comprueba las etiquetas validate de una entidad ya deserializada y
// devuelve el primer campo que falla.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		var reason string
		switch fe.Tag() {
		case "required":
			reason = "obligatorio y no puede estar vacío"
		case "gte":
			reason = "debe ser mayor o igual que " + fe.Param()
		default:
			reason = "no cumple la regla '" + fe.Tag() + "'"
		}
		return &models.ValidationError{Field: fe.Field(), Reason: reason}
	}
	return &models.ValidationError{Field: "body", Reason: err.Error()}
}
