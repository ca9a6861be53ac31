package fixedgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGBATarget renders into an RGBA8888 buffer with the given row stride in bytes.
//
// Callers own the buffer; the target never reallocates it.
type RGBATarget struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) valid() bool {
	return t != nil && t.Buf != nil && t.Stride >= t.W*4 && t.W > 0 && t.H > 0
}

func (t *RGBATarget) Clear(c Color) {
	if !t.valid() {
		return
	}
	r, g, b, a := c.RGBA8()
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		if row+t.W*4 > len(t.Buf) {
			return
		}
		for x := 0; x < t.W; x++ {
			off := row + x*4
			t.Buf[off+0] = r
			t.Buf[off+1] = g
			t.Buf[off+2] = b
			t.Buf[off+3] = a
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off+0], t.Buf[off+1], t.Buf[off+2], t.Buf[off+3] = c.RGBA8()
}

// At reads back a pixel. Out-of-range coordinates return transparent black.
func (t *RGBATarget) At(x, y int) (r, g, b, a uint8) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, 0, 0, 0
	}
	off := y*t.Stride + x*4
	if off+3 >= len(t.Buf) {
		return 0, 0, 0, 0
	}
	return t.Buf[off], t.Buf[off+1], t.Buf[off+2], t.Buf[off+3]
}
