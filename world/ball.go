package world

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRadius    = errors.New("world: radius must be positive")
	ErrInvalidDirection = errors.New("world: direction must be +1 or -1")
	ErrInvalidBounds    = errors.New("world: lower bound must be below upper bound")
	ErrInvalidStep      = errors.New("world: step must be positive")
)

// boundEpsilon absorbs accumulated floating error so a boundary reached by repeated
// steps counts as reached.
const boundEpsilon = 1e-9

// Bounds are the vertical bounce boundaries of a ball's centre.
type Bounds struct {
	Lower, Upper float64
}

func (b Bounds) Validate() error {
	if !(b.Lower < b.Upper) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, b.Lower, b.Upper)
	}
	return nil
}

func (b Bounds) Contains(y float64) bool { return y >= b.Lower && y <= b.Upper }

// Ball oscillates vertically between its bounds at a fixed step per update.
type Ball struct {
	loc       Location
	color     Color
	radius    float64
	direction int
	bounds    Bounds
	step      float64

	slices, stacks int
	bounces        int
}

// NewBall returns a ball moving up from loc.
func NewBall(loc Location, c Color, radius float64, bounds Bounds, step float64) (*Ball, error) {
	b := &Ball{
		loc:       loc,
		color:     c,
		direction: 1,
		slices:    16,
		stacks:    16,
	}
	if err := b.SetRadius(radius); err != nil {
		return nil, err
	}
	if err := b.SetBounds(bounds); err != nil {
		return nil, err
	}
	if err := b.SetStep(step); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Ball) SetColor(c Color) { b.color = c }

func (b *Ball) SetRadius(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, r)
	}
	b.radius = r
	return nil
}

func (b *Ball) SetDirection(d int) error {
	if d != 1 && d != -1 {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	b.direction = d
	return nil
}

// SetLocation copies loc. A location outside the bounds is pulled back on the next Step.
func (b *Ball) SetLocation(loc Location) { b.loc = loc }

func (b *Ball) SetBounds(bounds Bounds) error {
	if err := bounds.Validate(); err != nil {
		return err
	}
	b.bounds = bounds
	return nil
}

func (b *Ball) SetStep(step float64) error {
	if !(step > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}
	b.step = step
	return nil
}

// SetDetail sets the sphere tessellation used by Draw.
func (b *Ball) SetDetail(slices, stacks int) {
	b.slices, b.stacks = slices, stacks
}

func (b *Ball) Location() Location { return b.loc }
func (b *Ball) Color() Color       { return b.color }
func (b *Ball) Radius() float64    { return b.radius }
func (b *Ball) Direction() int     { return b.direction }
func (b *Ball) Bounds() Bounds     { return b.bounds }
func (b *Ball) Bounces() int       { return b.bounces }

// Step advances the ball one step and reports whether it reflected at a bound.
func (b *Ball) Step() bool {
	y := b.loc.Y() + b.step*float64(b.direction)
	switch {
	case b.direction > 0 && y >= b.bounds.Upper-boundEpsilon:
		y = b.bounds.Upper
		b.direction = -1
	case b.direction < 0 && y <= b.bounds.Lower+boundEpsilon:
		y = b.bounds.Lower
		b.direction = 1
	default:
		b.loc.SetY(y)
		return false
	}
	b.loc.SetY(y)
	b.bounces++
	return true
}

// Draw issues the draw calls for the ball at its current location.
func (b *Ball) Draw(p Painter) {
	p.PushMatrix()
	p.Translate(float32(b.loc.X()), float32(b.loc.Y()), float32(b.loc.Z()))
	p.MaterialAmbientAndDiffuse(glColor(b.color))
	p.SolidSphere(float32(b.radius), b.slices, b.stacks)
	p.PopMatrix()
}

// Update steps the ball and draws it at its new location.
func (b *Ball) Update(p Painter) bool {
	bounced := b.Step()
	b.Draw(p)
	return bounced
}
