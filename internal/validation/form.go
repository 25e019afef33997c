package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Error reports the first rule a form value broke. Message is user facing (French).
type Error struct {
	Field   string
	Rule    string
	Param   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Invalid builds an Error for checks that live outside struct tags.
func Invalid(field, rule, msg string) *Error {
	return &Error{Field: field, Rule: rule, Message: msg}
}

// IsValidation reports whether err carries a *Error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Validator checks struct tags (`validate:"..."`) and names fields by their `label` tag.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if l := fld.Tag.Get("label"); l != "" && l != "-" {
			return l
		}
		return strings.ToLower(fld.Name)
	})
	return &Validator{v: v}
}

// Struct validates s and returns nil or a *Error for the first failing field.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		return err
	}
	fe := fes[0]
	return &Error{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("le champ %s est obligatoire", fe.Field())
	case "max":
		return fmt.Sprintf("le champ %s ne doit pas dépasser %s caractères", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("le champ %s doit contenir au moins %s caractères", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("le champ %s est invalide", fe.Field())
	}
}

// Normalize trims surrounding whitespace and composes the string to NFC so
// length limits count what the user sees.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
