package world

import (
	"errors"
	"fmt"
)

var ErrColorRange = errors.New("world: color channel out of range [0,1]")

// Color is an immutable RGB triple with channels in [0,1].
type Color struct {
	r, g, b float64
}

// NewColor validates the channels and returns the color.
func NewColor(r, g, b float64) (Color, error) {
	for _, ch := range [3]float64{r, g, b} {
		if !(ch >= 0 && ch <= 1) {
			return Color{}, fmt.Errorf("%w: (%g, %g, %g)", ErrColorRange, r, g, b)
		}
	}
	return Color{r: r, g: g, b: b}, nil
}

// MustColor is NewColor for constants; it panics on invalid input.
func MustColor(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

// ToFloatArray returns the channels in the layout the renderer expects.
func (c Color) ToFloatArray() [3]float32 {
	return [3]float32{float32(c.r), float32(c.g), float32(c.b)}
}

func (c Color) String() string { return fmt.Sprintf("rgb(%g,%g,%g)", c.r, c.g, c.b) }

var (
	Red     = MustColor(1, 0, 0)
	Green   = MustColor(0, 1, 0)
	Blue    = MustColor(0, 0, 1)
	Cyan    = MustColor(0, 1, 1)
	Magenta = MustColor(1, 0, 1)
	Yellow  = MustColor(1, 1, 0)
	White   = MustColor(1, 1, 1)
)

// Palette assigns ball colors in order. Balls past the end wrap around.
var Palette = []Color{Red, Green, Blue, Magenta, Cyan, Yellow, White}
