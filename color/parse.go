package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse interprets s as a color. Accepted forms, tried in order:
//
//   - "#RRGGBB" or "#RGB" hex (the leading '#' is optional for 6 digits)
//   - "r,g,b" with each channel a number in [0,255]
//   - a CSS/SVG color name, case- and space-insensitive ("Dark Orange")
//
// Errors:
//   - ErrInvalidColor for a well-formed triple with an out-of-range channel.
//   - ErrUnknownColor when no form matches.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty input: %w", ErrUnknownColor)
	}

	// Stage 1: hex.
	if c, ok := parseHex(s); ok {
		return c, nil
	}

	// Stage 2: numeric triple.
	if strings.Count(s, ",") == 2 {
		return parseTriple(s)
	}

	// Stage 3: named color.
	if c, ok := ParseName(s); ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// ParseName looks s up in the SVG 1.1 color keyword table.
func ParseName(s string) (Color, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	rgba, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}

	return RGB(rgba.R, rgba.G, rgba.B), true
}

func parseHex(s string) (Color, bool) {
	// colorful.Hex ignores trailing input, so the shape is checked first.
	digits := strings.TrimPrefix(s, "#")
	if !isHexDigits(digits) {
		return Color{}, false
	}
	switch {
	case len(digits) == 6:
	case len(digits) == 3 && digits != s:
	default:
		return Color{}, false
	}
	cf, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, false
	}
	r, g, b := cf.RGB255()

	return RGB(r, g, b), true
}

func parseTriple(s string) (Color, error) {
	var (
		parts = strings.Split(s, ",")
		ch    [3]float64
		err   error
		i     int
	)
	for i = 0; i < 3; i++ {
		ch[i], err = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
		}
	}

	return New(ch[0], ch[1], ch[2])
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}
