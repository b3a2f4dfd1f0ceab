package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// ValidateConfig performs schema validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return prismerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if value, ok := ve.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s (got %q)", msg, value)
		}
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Theme.Palette[brand]" into
// "theme.palette[brand]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(name string) string {
	var b strings.Builder
	inKey := false
	for i, r := range name {
		switch {
		case r == '[':
			inKey = true
		case r == ']':
			inKey = false
		case !inKey && r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
