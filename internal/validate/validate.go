// Package validate checks untrusted form input against per-form schemas and
// reports failures as a field → message map suitable for re-displaying the
// form. Only the first violation per field is reported.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Permissive phone grammar: digits, spaces, dashes, plus, parentheses.
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	// Lowercase letters, digits and hyphens only.
	slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so error maps line up with the
	// submitted form fields.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = val.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})

	return val
}

// check runs the validator over form and flattens the result into a
// field → message map using the given message table. Keys in the table are
// "<field>" or "<field>.<tag>"; the bare field key is the fallback.
// A nil map means the form is valid.
func check(form any, messages map[string]string) map[string]string {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid input"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, exists := out[field]; exists {
			// First violation per field wins.
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = "Invalid value"
		}
	}
	return out
}
