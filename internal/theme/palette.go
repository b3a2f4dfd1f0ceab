package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps semantic colour names to concrete colour values.
type Palette struct {
	colors map[string]string
}

// NewPalette copies colors into a new palette.
func NewPalette(colors map[string]string) *Palette {
	p := &Palette{colors: make(map[string]string, len(colors))}
	maps.Copy(p.colors, colors)
	return p
}

// DefaultPalette returns the built-in semantic colours.
func DefaultPalette() *Palette {
	return NewPalette(map[string]string{
		"primary":   "#007bff",
		"secondary": "#6c757d",
		"success":   "#28a745",
		"info":      "#17a2b8",
		"warning":   "#ffc107",
		"danger":    "#dc3545",
		"light":     "#f8f9fa",
		"dark":      "#343a40",
	})
}

// FromPrimary derives a dark scheme from one seed colour.
func FromPrimary(primary string) (*Palette, error) {
	secondary, err := Lighten(primary, 20)
	if err != nil {
		return nil, fmt.Errorf("derive palette: %w", err)
	}
	return NewPalette(map[string]string{
		"primary":    primary,
		"secondary":  secondary,
		"background": "#121212",
		"surface":    "#1e1e1e",
		"text":       "#ffffff",
		"error":      "#cf6679",
		"success":    "#03dac6",
		"warning":    "#bb86fc",
	}), nil
}

// Get returns the colour registered under name. There is no fallback.
func (p *Palette) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	c, ok := p.colors[name]
	return c, ok
}

// Names returns the colour names in sorted order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.colors))
}

// Merge returns a new palette with other's colours layered over p's.
func (p *Palette) Merge(other map[string]string) *Palette {
	merged := NewPalette(nil)
	if p != nil {
		maps.Copy(merged.colors, p.colors)
	}
	maps.Copy(merged.colors, other)
	return merged
}

// Lighten raises the HSL lightness of a hex colour by amount percentage points.
func Lighten(hex string, amount float64) (string, error) {
	return shiftLightness(hex, amount/100)
}

// Darken lowers the HSL lightness of a hex colour by amount percentage points.
func Darken(hex string, amount float64) (string, error) {
	return shiftLightness(hex, -amount/100)
}

func shiftLightness(hex string, delta float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("parse colour %q: %w", hex, err)
	}
	h, s, l := c.Hsl()
	l = min(1, max(0, l+delta))
	return colorful.Hsl(h, s, l).Clamped().Hex(), nil
}
