package fixedgl

import "math"

type screenVertex struct {
	x, y, z float32
	color   Color
}

func (c *Context) triangle(v0, v1, v2 vertex) {
	c.stats.Triangles++
	if c.target == nil {
		return
	}
	// No near-plane clipping: anything at or behind the eye is dropped whole.
	if v0.clip.W <= 0 || v1.clip.W <= 0 || v2.clip.W <= 0 {
		c.stats.Culled++
		return
	}
	tw, th := c.target.Size()
	s0 := c.toScreen(v0, th)
	s1 := c.toScreen(v1, th)
	s2 := c.toScreen(v2, th)
	c.fill(s0, s1, s2, tw, th)
}

// toScreen maps clip coordinates to target pixels. Target rows grow downwards while
// the viewport origin is the bottom-left corner.
func (c *Context) toScreen(v vertex, targetH int) screenVertex {
	inv := 1 / v.clip.W
	nx, ny, nz := v.clip.X*inv, v.clip.Y*inv, v.clip.Z*inv
	vp := c.viewport
	wx := float32(vp.X) + (nx*0.5+0.5)*float32(vp.W)
	wy := float32(vp.Y) + (ny*0.5+0.5)*float32(vp.H)
	return screenVertex{
		x:     wx,
		y:     float32(targetH) - wy,
		z:     nz*0.5 + 0.5,
		color: v.color,
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func (c *Context) fill(s0, s1, s2 screenVertex, tw, th int) {
	area := edge(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area == 0 {
		return
	}

	// Scissor to the viewport in target rows.
	vp := c.viewport
	clipX0, clipX1 := maxInt(vp.X, 0), minInt(vp.X+vp.W, tw)
	clipY0, clipY1 := maxInt(th-(vp.Y+vp.H), 0), minInt(th-vp.Y, th)

	minX := maxInt(int(math.Floor(float64(min3f(s0.x, s1.x, s2.x)))), clipX0)
	maxX := minInt(int(math.Ceil(float64(max3f(s0.x, s1.x, s2.x)))), clipX1-1)
	minY := maxInt(int(math.Floor(float64(min3f(s0.y, s1.y, s2.y)))), clipY0)
	maxY := minInt(int(math.Ceil(float64(max3f(s0.y, s1.y, s2.y)))), clipY1-1)
	if minX > maxX || minY > maxY {
		c.stats.Culled++
		return
	}

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			a0 := edge(s1.x, s1.y, s2.x, s2.y, px, py) * inv
			a1 := edge(s2.x, s2.y, s0.x, s0.y, px, py) * inv
			a2 := edge(s0.x, s0.y, s1.x, s1.y, px, py) * inv
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}
			z := a0*s0.z + a1*s1.z + a2*s2.z
			if !c.depthPass(x, y, tw, z) {
				continue
			}
			c.stats.Fragments++
			c.target.SetPixel(x, y, lerpColor(a0, a1, a2, s0.color, s1.color, s2.color))
		}
	}
}

// depthPass applies the LESS depth function and updates the buffer on success.
// Fragments outside the near/far range are always rejected.
func (c *Context) depthPass(x, y, w int, z float32) bool {
	if z < 0 || z > 1 {
		return false
	}
	if !c.depthTest || c.depth == nil {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(c.depth) {
		return false
	}
	if z >= c.depth[idx] {
		return false
	}
	c.depth[idx] = z
	return true
}

// DepthAt returns the stored depth of a pixel, or 1 when unavailable.
func (c *Context) DepthAt(x, y int) float32 {
	if c.target == nil {
		return 1
	}
	w, _ := c.target.Size()
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(c.depth) {
		return 1
	}
	return c.depth[idx]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3f(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3f(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
