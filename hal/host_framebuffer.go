package hal

import (
	"image"
	"image/png"
	"io"
	"sync"
)

// hostFramebuffer is double buffered: the app draws into back and Present copies it to
// front, which is what the window shows.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	back   []byte
	front  []byte

	presented uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.width * 4 }
func (f *hostFramebuffer) Buffer() []byte      { return f.back }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	for i := 0; i+3 < len(f.back); i += 4 {
		f.back[i+0] = r
		f.back[i+1] = g
		f.back[i+2] = b
		f.back[i+3] = 0xFF
	}
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presented++
	return nil
}

// resize reallocates both buffers. Sizes below 1 are clamped to 1.
func (f *hostFramebuffer) resize(width, height int) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if width == f.width && height == f.height && f.back != nil {
		return false
	}
	f.width = width
	f.height = height
	f.back = make([]byte, width*height*4)
	f.front = make([]byte, width*height*4)
	return true
}

// snapshot copies the last presented frame into dst and returns its size.
func (f *hostFramebuffer) snapshot(dst []byte) (w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.width, f.height
}

func (f *hostFramebuffer) presentedFrames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

// WriteSnapshotPNG encodes the last presented frame as PNG.
func (f *hostFramebuffer) WriteSnapshotPNG(w io.Writer) error {
	f.mu.Lock()
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.front)
	f.mu.Unlock()
	return png.Encode(w, img)
}
