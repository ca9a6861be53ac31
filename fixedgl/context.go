package fixedgl

import "errors"

var (
	ErrStackOverflow   = errors.New("fixedgl: matrix stack overflow")
	ErrStackUnderflow  = errors.New("fixedgl: matrix stack underflow")
	ErrInvalidLight    = errors.New("fixedgl: invalid light index")
	ErrNestedBegin     = errors.New("fixedgl: Begin inside Begin/End")
	ErrEndWithoutBegin = errors.New("fixedgl: End without Begin")
)

// Capability is a toggle accepted by Enable and Disable.
type Capability uint8

const (
	DepthTest Capability = iota + 1
	Lighting
	Light0
	Light1
)

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint8

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// MatrixMode selects the stack that matrix operations apply to.
type MatrixMode uint8

const (
	ModelView MatrixMode = iota
	Projection
)

// Maximum stack depths, matching the minimums the fixed-function API guarantees.
const (
	modelViewDepth  = 32
	projectionDepth = 2
)

// Viewport maps normalized device coordinates to target pixels.
type Viewport struct {
	X, Y, W, H int
}

// Stats counts work done since the last Clear of the color buffer.
type Stats struct {
	Triangles int // triangles submitted
	Culled    int // dropped by clipping
	Fragments int // pixels that passed the depth test
}

// Context holds all fixed-function state and draws into a Target.
//
// The first error raised by a call is kept and reported by Err; later calls still run
// where they can.
type Context struct {
	target Target

	viewport   Viewport
	clearColor Color
	clearDepth float32

	depthTest bool
	lighting  bool

	mode  MatrixMode
	stack [2][]Mat4

	lights   [MaxLights]Light
	lightOn  [MaxLights]bool
	material Material
	color    Color
	normal   Vec3

	depth []float32
	prim  *primitive

	stats Stats
	err   error
}

// NewContext creates a context drawing into t. The viewport covers the whole target.
func NewContext(t Target) *Context {
	c := &Context{
		target:     t,
		clearColor: Black,
		clearDepth: 1,
		material:   DefaultMaterial(),
		color:      White,
		normal:     V3(0, 0, 1),
	}
	c.stack[ModelView] = []Mat4{Identity()}
	c.stack[Projection] = []Mat4{Identity()}
	c.lights[0] = DefaultLight()
	for i := 1; i < MaxLights; i++ {
		c.lights[i] = Light{Ambient: Black, Diffuse: Black, Specular: Black, Position: V4(0, 0, 1, 0)}
	}
	if t != nil {
		w, h := t.Size()
		c.viewport = Viewport{W: w, H: h}
	}
	return c
}

// SetTarget switches the output target, for example after a framebuffer resize.
// The viewport is left unchanged; callers reshape explicitly.
func (c *Context) SetTarget(t Target) { c.target = t }

// Err returns the first error recorded since the last call to Err and clears it.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Context) Stats() Stats { return c.stats }

func (c *Context) Enable(k Capability)  { c.setCap(k, true) }
func (c *Context) Disable(k Capability) { c.setCap(k, false) }

func (c *Context) setCap(k Capability, on bool) {
	switch k {
	case DepthTest:
		c.depthTest = on
	case Lighting:
		c.lighting = on
	case Light0:
		c.lightOn[0] = on
	case Light1:
		c.lightOn[1] = on
	}
}

func (c *Context) ClearColor(col Color) { c.clearColor = col }

// Clear resets the selected buffers. Clearing the color buffer also resets Stats.
func (c *Context) Clear(mask ClearMask) {
	if c.target == nil {
		return
	}
	if mask&ColorBufferBit != 0 {
		c.target.Clear(c.clearColor)
		c.stats = Stats{}
	}
	if mask&DepthBufferBit != 0 {
		w, h := c.target.Size()
		if n := w * h; n > 0 {
			if cap(c.depth) < n {
				c.depth = make([]float32, n)
			}
			c.depth = c.depth[:n]
			for i := range c.depth {
				c.depth[i] = c.clearDepth
			}
		}
	}
}

// Viewport sets the pixel rectangle NDC maps onto. Y grows upwards from the bottom edge.
func (c *Context) Viewport(x, y, w, h int) {
	c.viewport = Viewport{X: x, Y: y, W: w, H: h}
}

func (c *Context) CurrentViewport() Viewport { return c.viewport }

func (c *Context) MatrixMode(m MatrixMode) { c.mode = m }

func (c *Context) top() *Mat4 {
	s := c.stack[c.mode]
	return &s[len(s)-1]
}

// Matrix returns the top of the given stack.
func (c *Context) Matrix(m MatrixMode) Mat4 {
	s := c.stack[m]
	return s[len(s)-1]
}

func (c *Context) LoadIdentity() { *c.top() = Identity() }

// MultMatrix post-multiplies the current matrix by m.
func (c *Context) MultMatrix(m Mat4) {
	t := c.top()
	*t = t.Mul(m)
}

func (c *Context) PushMatrix() {
	limit := modelViewDepth
	if c.mode == Projection {
		limit = projectionDepth
	}
	s := c.stack[c.mode]
	if len(s) >= limit {
		c.fail(ErrStackOverflow)
		return
	}
	c.stack[c.mode] = append(s, s[len(s)-1])
}

func (c *Context) PopMatrix() {
	s := c.stack[c.mode]
	if len(s) <= 1 {
		c.fail(ErrStackUnderflow)
		return
	}
	c.stack[c.mode] = s[:len(s)-1]
}

func (c *Context) Translate(x, y, z float32) { c.MultMatrix(Translation(x, y, z)) }

// Perspective multiplies the current matrix by a perspective projection (fovY in degrees).
func (c *Context) Perspective(fovY, aspect, zNear, zFar float32) {
	c.MultMatrix(PerspectiveMatrix(fovY, aspect, zNear, zFar))
}

// LookAt multiplies the current matrix by a viewing transform.
func (c *Context) LookAt(eye, center, up Vec3) {
	c.MultMatrix(LookAtMatrix(eye, center, up))
}

// SetLight configures light i. The position is transformed into eye space with the
// current modelview matrix, so call it after the viewing transform for a world-fixed
// light, or with identity for a light that follows the camera.
func (c *Context) SetLight(i int, l Light) {
	if i < 0 || i >= MaxLights {
		c.fail(ErrInvalidLight)
		return
	}
	l.Position = c.Matrix(ModelView).Transform(l.Position)
	c.lights[i] = l
}

func (c *Context) LightAt(i int) (Light, bool) {
	if i < 0 || i >= MaxLights {
		return Light{}, false
	}
	return c.lights[i], true
}

// MaterialAmbientAndDiffuse sets both the ambient and diffuse reflectance.
func (c *Context) MaterialAmbientAndDiffuse(col Color) {
	c.material.Ambient = col
	c.material.Diffuse = col
}

func (c *Context) MaterialSpecular(col Color) { c.material.Specular = col }

func (c *Context) MaterialShininess(s float32) {
	if s < 0 {
		s = 0
	}
	if s > 128 {
		s = 128
	}
	c.material.Shininess = s
}

// Color sets the current vertex color used while lighting is disabled.
func (c *Context) Color(col Color) { c.color = col }

// Flush is a no-op: rendering is synchronous.
func (c *Context) Flush() {}
