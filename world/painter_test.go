package world

import (
	"fmt"

	"bouncer/fixedgl"
)

// recorder is a Painter that logs calls.
type recorder struct {
	calls    []string
	vertices int
	depth    int
	spheres  []float32
	colors   []fixedgl.Color
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) PushMatrix() { r.depth++; r.log("push") }
func (r *recorder) PopMatrix()  { r.depth--; r.log("pop") }
func (r *recorder) Translate(x, y, z float32) {
	r.log("translate %.2f %.2f %.2f", x, y, z)
}
func (r *recorder) MaterialAmbientAndDiffuse(c fixedgl.Color) {
	r.colors = append(r.colors, c)
	r.log("material")
}
func (r *recorder) Begin(p fixedgl.Primitive) { r.log("begin %d", p) }
func (r *recorder) Normal(x, y, z float32)    { r.log("normal %.0f %.0f %.0f", x, y, z) }
func (r *recorder) Vertex(x, y, z float32)    { r.vertices++ }
func (r *recorder) End()                      { r.log("end") }
func (r *recorder) SolidSphere(radius float32, slices, stacks int) {
	r.spheres = append(r.spheres, radius)
	r.log("sphere %.2f %d %d", radius, slices, stacks)
}
