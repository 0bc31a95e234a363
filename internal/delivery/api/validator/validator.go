// Package validator adapts go-playground/validator to echo and registers the domain enum tags.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// enumTags maps struct tags to the domain enum they check.
var enumTags = map[string]func(string) bool{
	"role":         func(s string) bool { return entity.Role(s).IsValid() },
	"unit":         func(s string) bool { return entity.Unit(s).IsValid() },
	"timeframe":    func(s string) bool { return entity.Timeframe(s).IsValid() },
	"category":     func(s string) bool { return entity.Category(s).IsValid() },
	"protein_type": func(s string) bool { return entity.ProteinType(s).IsValid() },
	"cadence":      func(s string) bool { return entity.Cadence(s).IsValid() },
	"org_type":     func(s string) bool { return entity.OrganizationType(s).IsValid() },
	"status":       func(s string) bool { return entity.ProductStatus(s).IsValid() },
}

func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	for tag, isValid := range enumTags {
		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return isValid(fl.Field().String())
		})
	}

	return &CustomValidator{validate: validate}
}

// Validate returns a readable message listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "uuid":
		return field + " must be a UUID"
	}
	if _, ok := enumTags[fe.Tag()]; ok {
		return fmt.Sprintf("%s has an invalid %s value", field, strings.ReplaceAll(fe.Tag(), "_", " "))
	}

	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
