package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a Config against its validate tags and reports failures
// by their config keys (production.batch_size) rather than Go field names
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that names fields after their mapstructure tags
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate runs the struct's validate tags
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s must satisfy %s, got %v", configKey(fe), rule(fe), fe.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// configKey drops the root struct name from the namespace
func configKey(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return key
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
