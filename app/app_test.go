package app

import (
	"testing"

	"bouncer/frame"
	"bouncer/hal"
	"bouncer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type testFB struct {
	w, h      int
	buf       []byte
	presented int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *testFB) StrideBytes() int        { return f.w * 4 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presented++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i], f.buf[i+1], f.buf[i+2], f.buf[i+3] = r, g, b, 0xFF
	}
}

type testHAL struct {
	logger *zap.Logger
	fb     *testFB
	keys   chan hal.KeyEvent
	ticks  chan uint64
}

func newTestHAL(t *testing.T, w, h int) *testHAL {
	return &testHAL{
		logger: zaptest.NewLogger(t),
		fb:     &testFB{w: w, h: h, buf: make([]byte, w*h*4)},
		keys:   make(chan hal.KeyEvent, 16),
		ticks:  make(chan uint64, 1024),
	}
}

func (h *testHAL) Logger() *zap.Logger          { return h.logger }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Time() hal.Time               { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *testHAL) Ticks() <-chan uint64         { return h.ticks }

func TestStepFollowsTimer(t *testing.T) {
	h := newTestHAL(t, 64, 48)
	a, err := New(h, config.Default())
	require.NoError(t, err)

	for ms := uint64(1); ms <= 99; ms++ {
		h.ticks <- ms
	}
	require.NoError(t, a.Step())
	assert.Zero(t, h.fb.presented, "nothing before the initial delay")

	h.ticks <- 100
	require.NoError(t, a.Step())
	assert.Equal(t, 1, h.fb.presented)

	for ms := uint64(101); ms <= 132; ms++ {
		h.ticks <- ms
	}
	require.NoError(t, a.Step())
	assert.Equal(t, 2, h.fb.presented, "one frame per step, late fires are not replayed")
	assert.Equal(t, uint64(148), a.Driver().NextFire())
}

func TestStepHandlesKeysBeforeTicks(t *testing.T) {
	h := newTestHAL(t, 32, 24)
	a, err := New(h, config.Default())
	require.NoError(t, err)

	h.keys <- hal.KeyEvent{Code: hal.KeyUp, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyUp}
	h.keys <- hal.KeyEvent{Code: hal.KeyLeft, Press: true, Repeat: true}
	h.ticks <- 1
	require.NoError(t, a.Step())

	cam := a.World().Camera
	assert.InDelta(t, 5.2, cam.Y(), 1e-12)
	assert.InDelta(t, -0.2, cam.X(), 1e-12)
	assert.Equal(t, 1, h.fb.presented, "key presses request a redraw")
	assert.Equal(t, frame.Idle, a.Driver().State())
}

func TestNewAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Balls.Count = 3
	cfg.Balls.Seed = 42
	cfg.Camera.Eye = [3]float64{1, 2, 3}

	a, err := New(newTestHAL(t, 8, 8), cfg)
	require.NoError(t, err)
	assert.Len(t, a.World().Balls, 3)
	assert.Equal(t, 1.0, a.World().Camera.X())

	b, err := New(newTestHAL(t, 8, 8), cfg)
	require.NoError(t, err)
	for i := range a.World().Balls {
		assert.Equal(t, a.World().Balls[i].Location(), b.World().Balls[i].Location(), "same seed, same scene")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Balls.Count = 0
	_, err := New(newTestHAL(t, 8, 8), cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = Factory(cfg)(newTestHAL(t, 8, 8))
	assert.Error(t, err)
}

func TestFactoryReturnsStep(t *testing.T) {
	step, err := Factory(config.Default())(newTestHAL(t, 8, 8))
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.NoError(t, step())
}

func TestPanicIsReportedOnScreen(t *testing.T) {
	h := newTestHAL(t, 120, 80)
	a, err := New(h, config.Default())
	require.NoError(t, err)

	err = a.panicked("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, h.fb.presented)

	var dark int
	for i := 0; i < len(h.fb.buf); i += 4 {
		if h.fb.buf[i] == 0 {
			dark++
		}
	}
	assert.Greater(t, dark, 0, "text drawn over the white screen")
}

func TestOptionsMapping(t *testing.T) {
	cfg := config.Default()
	fo := FrameOptions(cfg)
	assert.Equal(t, 16, fo.FrameIntervalMs)
	assert.Equal(t, 100, fo.InitialDelayMs)
	assert.Equal(t, 40.0, fo.FovY)
	assert.Equal(t, "Bouncing Balls", fo.Title)

	wo := WorldOptions(cfg)
	assert.Equal(t, 7, wo.Balls)
	assert.Equal(t, 0.5, wo.Bounds.Lower)
	assert.Equal(t, 2.0, wo.Bounds.Upper)
	assert.Equal(t, 0.2, wo.CameraStep)
}

func TestLoggerNames(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newTestHAL(t, 8, 8)
	h.logger = zap.New(core)
	_, err := New(h, config.Default())
	require.NoError(t, err)

	names := map[string]string{}
	for _, e := range logs.All() {
		names[e.Message] = e.LoggerName
	}
	assert.Equal(t, "app", names["scene ready"])
	assert.Equal(t, "frame", names["reshape"])
}
