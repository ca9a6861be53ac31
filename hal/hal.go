package hal

import (
	"errors"

	"go.uber.org/zap"
)

var ErrNoWindow = errors.New("hal: window mode unavailable")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook.
//
// Width and Height may change between frames when the window is resized; callers
// re-read Buffer after a size change.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyEvent is a keyboard event. Repeat marks auto-repeated presses of a held key.
type KeyEvent struct {
	Code   KeyCode
	Press  bool
	Repeat bool
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Time provides a millisecond tick stream. Each value is the running tick count.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the demo and the host.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
	Input() Input
	Time() Time
}

// AppFactory builds the per-tick step function of an application bound to a HAL.
type AppFactory func(HAL) (step func() error, err error)
