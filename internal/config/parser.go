package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/theme"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a configuration file from disk, validates it, and returns the resulting model.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, prismerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates configuration bytes. path is only used in errors.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, prismerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// BuildTheme returns the default theme with the configured palette and
// styles layered on top. A primary colour generates the base palette.
func (c *Config) BuildTheme() (*theme.Theme, error) {
	palette := theme.DefaultPalette()
	if c == nil {
		return theme.Default(), nil
	}

	if c.Theme.Primary != "" {
		generated, err := theme.FromPrimary(hexColor(c.Theme.Primary))
		if err != nil {
			return nil, prismerrors.NewValidationError("theme.primary", err.Error(), err)
		}
		colors := make(map[string]string)
		for _, name := range generated.Names() {
			colors[name], _ = generated.Get(name)
		}
		palette = palette.Merge(colors)
	}
	palette = palette.Merge(c.Theme.Palette)

	styles := make(map[string]theme.Entry, len(c.Theme.Styles))
	for name, description := range c.Theme.Styles {
		styles[name] = theme.Raw(description)
	}
	return theme.Default().WithPalette(palette).Extend(styles), nil
}

// hexColor converts any accepted colour notation to hex, leaving values it
// cannot convert for FromPrimary to reject.
func hexColor(value string) string {
	c, ok := style.ParseColor(value)
	if !ok {
		return value
	}
	if hex, ok := c.HexString(); ok {
		return hex
	}
	return value
}
