package fixedgl

// Color is a floating-point RGBA color with channels nominally in 0..1.
//
// Intermediate lighting results may exceed 1; they are clamped when written to a Target.
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// FromArray converts a 3-element channel array, as produced by world colors, to a Color.
func FromArray(v [3]float32) Color { return RGB(v[0], v[1], v[2]) }

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A} }

// Mul multiplies channel-wise; alpha is kept from c.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A} }

func (c Color) Scale(s float32) Color { return Color{c.R * s, c.G * s, c.B * s, c.A} }

func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// RGBA8 converts to 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	c = c.Clamp()
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), uint8(c.A*255 + 0.5)
}

func lerpColor(a0, a1, a2 float32, c0, c1, c2 Color) Color {
	return Color{
		R: a0*c0.R + a1*c1.R + a2*c2.R,
		G: a0*c0.G + a1*c1.G + a2*c2.G,
		B: a0*c0.B + a1*c1.B + a2*c2.B,
		A: a0*c0.A + a1*c1.A + a2*c2.A,
	}
}
