package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxRequestBytes caps request bodies decoded by DecodeAndValidate.
const maxRequestBytes = 64 << 10

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalizer is implemented by request DTOs that clean their fields (e.g. trim)
// before validation.
type Normalizer interface {
	Normalize()
}

// DecodeAndValidate decodes the request body into dest, ignoring unknown fields,
// normalizes it when dest implements Normalizer, and validates its `validate` tags.
// Malformed JSON is answered with 400 and failed validation with 422; in both
// cases it returns false and callers should return immediately.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "JSON inválido: "+err.Error())
		return false
	}
	if n, ok := dest.(Normalizer); ok {
		n.Normalize()
	}
	if err := validate.Struct(dest); err != nil {
		WriteJSONError(w, http.StatusUnprocessableEntity, ErrCodeValidation, ValidationMessage(err))
		return false
	}
	return true
}

// ValidationMessage turns validator errors into a user-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("O campo %s é obrigatório.", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres.", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("O campo %s é inválido.", fe.Field()))
		}
	}
	return strings.Join(msgs, " ")
}
