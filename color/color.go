package color

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel bounds on the 0–255 scale.
const (
	// MinChannel is the smallest valid channel intensity.
	MinChannel = 0.0

	// MaxChannel is the largest valid channel intensity.
	MaxChannel = 255.0
)

// Sentinel errors for color construction and parsing.
var (
	// ErrInvalidColor indicates a channel value outside [0,255] or non-finite.
	ErrInvalidColor = errors.New("color: channel value out of range")

	// ErrUnknownColor indicates that Parse could not interpret the input
	// as hex, "r,g,b" triple, or a known color name.
	ErrUnknownColor = errors.New("color: unrecognized color")
)

// Color is an RGB triple on the 0–255 scale.
//
// The zero value is black and valid. Use Validate to check values that did
// not come from a constructor.
type Color struct {
	R, G, B float64
}

// New returns the color (r,g,b) after validating every channel.
//
// Errors:
//   - ErrInvalidColor if any channel is NaN, ±Inf, or outside [0,255].
func New(r, g, b float64) (Color, error) {
	c := Color{R: r, G: g, B: b}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}

	return c, nil
}

// RGB returns the color for 8-bit channel values. It cannot fail.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// FromUnit scales normalized channels in [0,1] to the 0–255 scale.
//
// Errors:
//   - ErrInvalidColor if any input channel is outside [0,1] or non-finite.
func FromUnit(r, g, b float64) (Color, error) {
	var (
		in = [3]float64{r, g, b}
		i  int
	)
	for i = 0; i < 3; i++ {
		if !isFinite(in[i]) || in[i] < 0 || in[i] > 1 {
			return Color{}, fmt.Errorf("unit channel %d = %v: %w", i, in[i], ErrInvalidColor)
		}
	}

	return Color{R: r * MaxChannel, G: g * MaxChannel, B: b * MaxChannel}, nil
}

// Validate reports ErrInvalidColor when any channel is non-finite or out of range.
func (c Color) Validate() error {
	var (
		ch = [3]float64{c.R, c.G, c.B}
		i  int
	)
	for i = 0; i < 3; i++ {
		if !isFinite(ch[i]) || ch[i] < MinChannel || ch[i] > MaxChannel {
			return fmt.Errorf("channel %d = %v: %w", i, ch[i], ErrInvalidColor)
		}
	}

	return nil
}

// IsFinite reports whether all three channels are finite numbers.
func (c Color) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B)
}

// RGB8 rounds each channel to the nearest integer, clamped to [0,255].
func (c Color) RGB8() [3]uint8 {
	return [3]uint8{toByte(c.R), toByte(c.G), toByte(c.B)}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String implements fmt.Stringer as "rgb(r, g, b)" with rounded channels.
func (c Color) String() string {
	v := c.RGB8()
	return fmt.Sprintf("rgb(%d, %d, %d)", v[0], v[1], v[2])
}

// Vec returns the channels as a fresh 3-element slice.
func (c Color) Vec() []float64 {
	return []float64{c.R, c.G, c.B}
}

// Add returns c + o channel-wise.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns c − o channel-wise. The result is a difference vector and
// may have negative channels.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale returns k·c.
func (c Color) Scale(k float64) Color {
	return Color{R: k * c.R, G: k * c.G, B: k * c.B}
}

// Dot returns the inner product of c and o treated as 3-vectors.
func (c Color) Dot(o Color) float64 {
	return c.R*o.R + c.G*o.G + c.B*o.B
}

// Norm2 returns the squared Euclidean norm of c.
func (c Color) Norm2() float64 {
	return c.Dot(c)
}

// colorful converts to go-colorful's normalized representation.
func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R / MaxChannel, G: c.G / MaxChannel, B: c.B / MaxChannel}
}

func toByte(v float64) uint8 {
	if !isFinite(v) || v <= MinChannel {
		return 0
	}
	if v >= MaxChannel {
		return 255
	}

	return uint8(math.Round(v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
