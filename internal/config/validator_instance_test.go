package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	assert.Same(t, v1, v2)
}

func TestColorValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"hex", "#ff8800", true},
		{"short hex", "#f80", true},
		{"bad hex", "#ff88zz", false},
		{"rgb", "rgb(1,2,3)", true},
		{"index", "color(200)", true},
		{"ansi name", "red", true},
		{"bright name", "bright_blue", true},
		{"camel bright name", "cyanBright", true},
		{"unknown name", "mauve", false},
		{"empty", "", false},
		{"sentence", "bold red", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "color")
			assert.Equal(t, tt.expected, err == nil, tt.value)
		})
	}
}

func TestBoxValidation(t *testing.T) {
	v := GetValidator()

	for _, name := range []string{"rounded", "round", "heavy", "ascii", "none", "thick"} {
		assert.NoError(t, v.Var(name, "box"), name)
	}
	for _, name := range []string{"wobbly", "ROUNDED", ""} {
		assert.Error(t, v.Var(name, "box"), name)
	}
}

func TestStyleNameValidation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Var("rule.line", "style_name"))
	assert.NoError(t, v.Var("brand_2", "style_name"))
	assert.Error(t, v.Var("two words", "style_name"))
	assert.Error(t, v.Var("[x]", "style_name"))
	assert.Error(t, v.Var("my-style", "style_name"))
}
