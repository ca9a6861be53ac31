package world

import "bouncer/fixedgl"

// Painter is the subset of the immediate-mode renderer the world draws through.
// *fixedgl.Context implements it.
type Painter interface {
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float32)
	MaterialAmbientAndDiffuse(c fixedgl.Color)
	Begin(p fixedgl.Primitive)
	Normal(x, y, z float32)
	Vertex(x, y, z float32)
	End()
	SolidSphere(radius float32, slices, stacks int)
}

var _ Painter = (*fixedgl.Context)(nil)

func glColor(c Color) fixedgl.Color { return fixedgl.FromArray(c.ToFloatArray()) }
