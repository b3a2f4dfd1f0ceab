package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ColorKind identifies how a Color was specified.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorNamed
	ColorHex
	ColorRGB
	ColorIndex
)

// Color is one of a named colour token, a hex string, an RGB triple or a
// 0-255 palette index. The zero value means "no colour".
type Color struct {
	kind    ColorKind
	name    string
	r, g, b uint8
	index   uint8
}

var (
	hexPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
	rgbPattern   = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	indexPattern = regexp.MustCompile(`(?i)^color\(\s*(\d+)\s*\)$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z_]*$`)
)

// Named returns a named colour such as "red" or "bright_blue".
func Named(name string) Color { return Color{kind: ColorNamed, name: name} }

// Hex returns a colour from a "#rgb" or "#rrggbb" string. The string is not validated.
func Hex(hex string) Color { return Color{kind: ColorHex, name: hex} }

// RGB returns a truecolor colour.
func RGB(r, g, b uint8) Color { return Color{kind: ColorRGB, r: r, g: g, b: b} }

// Index returns a colour from the 256-colour palette.
func Index(n uint8) Color { return Color{kind: ColorIndex, index: n} }

// ParseColor parses a single colour token. Numeric channels are clamped to [0,255].
func ParseColor(word string) (Color, bool) {
	if strings.HasPrefix(word, "#") {
		if hexPattern.MatchString(word) {
			return Hex(word), true
		}
		return Color{}, false
	}
	if m := rgbPattern.FindStringSubmatch(word); m != nil {
		return RGB(clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3])), true
	}
	if m := indexPattern.FindStringSubmatch(word); m != nil {
		return Index(clampChannel(m[1])), true
	}
	if namePattern.MatchString(word) {
		return Named(word), true
	}
	return Color{}, false
}

func clampChannel(digits string) uint8 {
	n, err := strconv.Atoi(digits)
	if err != nil || n > 255 {
		return 255
	}
	return uint8(n)
}

// Kind reports how the colour was specified.
func (c Color) Kind() ColorKind { return c.kind }

// IsZero reports whether the colour is unset.
func (c Color) IsZero() bool { return c.kind == ColorNone }

// Name returns the colour name or hex string for named and hex colours.
func (c Color) Name() string { return c.name }

// Triple returns the RGB channels of an RGB colour.
func (c Color) Triple() (uint8, uint8, uint8) { return c.r, c.g, c.b }

// Number returns the palette index of an indexed colour.
func (c Color) Number() uint8 { return c.index }

// String renders the colour in the same notation ParseColor accepts.
func (c Color) String() string {
	switch c.kind {
	case ColorNamed, ColorHex:
		return c.name
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case ColorIndex:
		return fmt.Sprintf("color(%d)", c.index)
	default:
		return ""
	}
}

var namedColors = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"gray":           termenv.ANSIBrightBlack,
	"grey":           termenv.ANSIBrightBlack,
	"bright_black":   termenv.ANSIBrightBlack,
	"bright_red":     termenv.ANSIBrightRed,
	"bright_green":   termenv.ANSIBrightGreen,
	"bright_yellow":  termenv.ANSIBrightYellow,
	"bright_blue":    termenv.ANSIBrightBlue,
	"bright_magenta": termenv.ANSIBrightMagenta,
	"bright_cyan":    termenv.ANSIBrightCyan,
	"bright_white":   termenv.ANSIBrightWhite,
}

// normalizeName maps the camel-case "redBright" spelling onto "bright_red".
func normalizeName(name string) string {
	if base, ok := strings.CutSuffix(name, "Bright"); ok && base != "" {
		return "bright_" + base
	}
	return strings.ToLower(name)
}

// KnownName reports whether a colour name is understood by the terminal backend.
func KnownName(name string) bool {
	_, ok := namedColors[normalizeName(name)]
	return ok
}

// terminal converts the colour for the given profile. Unsupported names yield nil.
func (c Color) terminal(p termenv.Profile) termenv.Color {
	switch c.kind {
	case ColorHex:
		return p.Convert(termenv.RGBColor(expandHex(c.name)))
	case ColorRGB:
		return p.Convert(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)))
	case ColorIndex:
		return p.Convert(termenv.ANSI256Color(c.index))
	case ColorNamed:
		ansi, ok := namedColors[normalizeName(c.name)]
		if !ok {
			return nil
		}
		return p.Convert(ansi)
	default:
		return nil
	}
}

// HexString returns the colour as "#rrggbb". Named and indexed colours use the
// standard xterm palette values; unknown names report false.
func (c Color) HexString() (string, bool) {
	switch c.kind {
	case ColorHex:
		return strings.ToLower(expandHex(c.name)), true
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b), true
	case ColorIndex:
		return termenv.ConvertToRGB(termenv.ANSI256Color(c.index)).Hex(), true
	case ColorNamed:
		ansi, ok := namedColors[normalizeName(c.name)]
		if !ok {
			return "", false
		}
		return termenv.ConvertToRGB(ansi).Hex(), true
	default:
		return "", false
	}
}

// expandHex turns "#abc" into "#aabbcc".
func expandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
