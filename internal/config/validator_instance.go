package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prism/internal/box"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	styleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		_ = v.RegisterValidation("box", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == box.None {
				return true
			}
			_, ok := box.Lookup(name)
			return ok
		})

		// Style names become markup tags, so they are limited to what the tag
		// grammar matches: letters, digits, "_" and ".".
		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			return styleNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isColor accepts hex, rgb(), color(n) and the colour names the terminal
// backend understands.
func isColor(word string) bool {
	c, ok := style.ParseColor(word)
	if !ok {
		return false
	}
	if c.Kind() == style.ColorNamed {
		return style.KnownName(word)
	}
	return true
}
