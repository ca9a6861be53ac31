package frame

import (
	"image/color"

	"bouncer/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay exposes an RGBA8888 framebuffer as a tinygo display for tinyfont.
// Display is a no-op; the driver presents once per frame.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	off, ok := d.offset(int(x), int(y))
	if !ok {
		return
	}
	buf := d.fb.Buffer()
	buf[off+0] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplay) Display() error { return nil }

// FillRectangle blends c over the rectangle using c.A as coverage.
func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) {
	a := uint16(c.A)
	for yy := int(y); yy < int(y)+int(height); yy++ {
		for xx := int(x); xx < int(x)+int(width); xx++ {
			off, ok := d.offset(xx, yy)
			if !ok {
				continue
			}
			buf := d.fb.Buffer()
			buf[off+0] = blend(buf[off+0], c.R, a)
			buf[off+1] = blend(buf[off+1], c.G, a)
			buf[off+2] = blend(buf[off+2], c.B, a)
			buf[off+3] = 0xFF
		}
	}
}

func (d *fbDisplay) offset(x, y int) (int, bool) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return 0, false
	}
	if x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return 0, false
	}
	off := y*d.fb.StrideBytes() + x*4
	if off+3 >= len(d.fb.Buffer()) {
		return 0, false
	}
	return off, true
}

func blend(dst, src uint8, a uint16) uint8 {
	return uint8((uint16(src)*a + uint16(dst)*(255-a)) / 255)
}
