package fixedgl

import "math"

// Primitive selects how vertices between Begin and End are assembled.
type Primitive uint8

const (
	Triangles Primitive = iota + 1
	Quads
)

func (p Primitive) size() int {
	if p == Quads {
		return 4
	}
	return 3
}

// vertex is a vertex after modelview, lighting and projection.
type vertex struct {
	clip  Vec4
	color Color
}

type primitive struct {
	kind  Primitive
	verts []vertex
}

// Begin starts a primitive. Vertices are assembled until End.
func (c *Context) Begin(p Primitive) {
	if c.prim != nil {
		c.fail(ErrNestedBegin)
		return
	}
	c.prim = &primitive{kind: p, verts: make([]vertex, 0, p.size())}
}

// End closes the current primitive. A trailing incomplete triangle or quad is discarded.
func (c *Context) End() {
	if c.prim == nil {
		c.fail(ErrEndWithoutBegin)
		return
	}
	c.prim = nil
}

// Normal sets the current normal in object coordinates. It persists across Begin/End
// and applies to every following vertex until changed.
func (c *Context) Normal(x, y, z float32) { c.normal = V3(x, y, z) }

// Vertex submits a vertex in object coordinates using the current normal, material and color.
func (c *Context) Vertex(x, y, z float32) {
	p := c.prim
	if p == nil {
		return
	}
	mv := c.Matrix(ModelView)
	eye := mv.Transform(V4(x, y, z, 1))

	col := c.color
	if c.lighting {
		n := mv.TransformDir(c.normal).Normalize()
		col = shade(eye.XYZ(), n, c.material, c.lights[:], c.lightOn[:])
	}

	p.verts = append(p.verts, vertex{
		clip:  c.Matrix(Projection).Transform(eye),
		color: col,
	})
	if len(p.verts) < p.kind.size() {
		return
	}

	v := p.verts
	c.triangle(v[0], v[1], v[2])
	if p.kind == Quads {
		c.triangle(v[0], v[2], v[3])
	}
	p.verts = p.verts[:0]
}

// SolidSphere draws a sphere of the given radius centred at the origin of the current
// modelview, as a latitude/longitude mesh of slices*stacks quads.
func (c *Context) SolidSphere(radius float32, slices, stacks int) {
	if radius <= 0 {
		return
	}
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	point := func(i, j int) Vec3 {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		sp := math.Sin(phi)
		return V3(
			float32(sp*math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(sp*math.Sin(theta)),
		)
	}
	emit := func(n Vec3) {
		c.Normal(n.X, n.Y, n.Z)
		c.Vertex(n.X*radius, n.Y*radius, n.Z*radius)
	}

	c.Begin(Quads)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			emit(point(i, j))
			emit(point(i+1, j))
			emit(point(i+1, j+1))
			emit(point(i, j+1))
		}
	}
	c.End()
}
