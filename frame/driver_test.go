package frame

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"bouncer/fixedgl"
	"bouncer/hal"
	"bouncer/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memFB struct {
	w, h      int
	buf       []byte
	presented int
	onPresent func() error
}

func newMemFB(w, h int) *memFB { return &memFB{w: w, h: h, buf: make([]byte, w*h*4)} }

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *memFB) StrideBytes() int        { return f.w * 4 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}

func (f *memFB) Present() error {
	f.presented++
	if f.onPresent != nil {
		return f.onPresent()
	}
	return nil
}

func (f *memFB) resize(w, h int) {
	f.w, f.h = w, h
	f.buf = make([]byte, w*h*4)
}

func newTestDriver(t *testing.T, fb *memFB, mutate func(*Options)) (*Driver, *world.World) {
	t.Helper()
	w, err := world.New(world.DefaultOptions(), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.HUD = false
	if mutate != nil {
		mutate(&opts)
	}
	d, err := New(w, fb, opts, zaptest.NewLogger(t))
	require.NoError(t, err)
	return d, w
}

func TestTimerCadence(t *testing.T) {
	fb := newMemFB(64, 48)
	d, _ := newTestDriver(t, fb, nil)

	var fires []uint64
	for now := uint64(0); now <= 150; now++ {
		before := d.Stats().TimerFires
		require.NoError(t, d.Tick(now))
		if d.Stats().TimerFires > before {
			fires = append(fires, now)
		}
	}
	assert.Equal(t, []uint64{100, 116, 132, 148}, fires)
	assert.Equal(t, 4, fb.presented)
	assert.Equal(t, uint64(4), d.Stats().Frames)
	assert.Equal(t, Idle, d.State())
}

func TestTimerRearmsFromFireTime(t *testing.T) {
	d, _ := newTestDriver(t, newMemFB(8, 8), nil)
	require.NoError(t, d.Tick(250))
	assert.Equal(t, uint64(1), d.Stats().TimerFires, "late ticks do not replay missed periods")
	assert.Equal(t, uint64(266), d.NextFire())
}

func TestKeyPressRequestsRedraw(t *testing.T) {
	fb := newMemFB(32, 24)
	d, w := newTestDriver(t, fb, nil)

	require.NoError(t, d.HandleKey(hal.KeyEvent{Code: hal.KeyUp, Press: true}))
	assert.True(t, d.RedrawPending())
	assert.InDelta(t, 5.2, w.Camera.Y(), 1e-12)
	assert.Equal(t, Idle, d.State())

	require.NoError(t, d.Tick(1))
	assert.Equal(t, 1, fb.presented)
	assert.False(t, d.RedrawPending())
	assert.Zero(t, d.Stats().TimerFires)
}

func TestKeysMoveCamera(t *testing.T) {
	d, w := newTestDriver(t, newMemFB(8, 8), nil)
	press := func(k hal.KeyCode) {
		require.NoError(t, d.HandleKey(hal.KeyEvent{Code: k, Press: true}))
	}
	press(hal.KeyLeft)
	press(hal.KeyLeft)
	press(hal.KeyRight)
	press(hal.KeyDown)
	assert.InDelta(t, -0.2, w.Camera.X(), 1e-12)
	assert.InDelta(t, 4.8, w.Camera.Y(), 1e-12)
	assert.Equal(t, 10.0, w.Camera.Z())
	assert.Equal(t, uint64(4), d.Stats().Keys)
}

func TestReleasesAndOtherKeysIgnored(t *testing.T) {
	d, w := newTestDriver(t, newMemFB(8, 8), nil)
	require.NoError(t, d.HandleKey(hal.KeyEvent{Code: hal.KeyUp}))
	require.NoError(t, d.HandleKey(hal.KeyEvent{Code: hal.KeyUnknown, Press: true}))
	assert.False(t, d.RedrawPending())
	assert.Equal(t, 5.0, w.Camera.Y())
}

func TestReentryRejected(t *testing.T) {
	fb := newMemFB(8, 8)
	d, _ := newTestDriver(t, fb, nil)
	var inner error
	fb.onPresent = func() error {
		assert.Equal(t, Rendering, d.State())
		inner = d.HandleKey(hal.KeyEvent{Code: hal.KeyUp, Press: true})
		return nil
	}
	require.NoError(t, d.Display())
	assert.ErrorIs(t, inner, ErrReentrant)
	assert.Equal(t, Idle, d.State())
}

func TestPresentErrorIsReturned(t *testing.T) {
	fb := newMemFB(8, 8)
	d, _ := newTestDriver(t, fb, nil)
	boom := errors.New("boom")
	fb.onPresent = func() error { return boom }
	assert.ErrorIs(t, d.Display(), boom)
	assert.Equal(t, Idle, d.State())
}

func TestReshapeFollowsFramebuffer(t *testing.T) {
	fb := newMemFB(80, 60)
	d, _ := newTestDriver(t, fb, nil)
	assert.Equal(t, fixedgl.Viewport{W: 80, H: 60}, d.gl.CurrentViewport())

	fb.resize(40, 20)
	require.NoError(t, d.Tick(0))
	assert.Equal(t, fixedgl.Viewport{W: 40, H: 20}, d.gl.CurrentViewport())
	p := d.gl.Matrix(fixedgl.Projection)
	assert.InDelta(t, float64(p[5]/p[0]), 2.0, 1e-5, "aspect follows the new size")
}

func TestReshapeClampsZeroHeight(t *testing.T) {
	d, _ := newTestDriver(t, newMemFB(8, 8), nil)
	d.Reshape(100, 0)
	assert.Equal(t, fixedgl.Viewport{W: 100, H: 1}, d.gl.CurrentViewport())
	p := d.gl.Matrix(fixedgl.Projection)
	assert.False(t, math.IsNaN(float64(p[0])) || math.IsInf(float64(p[0]), 0), "projection must stay finite")
	require.NoError(t, d.gl.Err())
}

func TestDisplayDrawsSceneAndAdvancesBalls(t *testing.T) {
	fb := newMemFB(160, 120)
	d, w := newTestDriver(t, fb, nil)
	mid := w.Balls[0].Bounds()
	w.Balls[0].SetLocation(world.NewLocation(4, (mid.Lower+mid.Upper)/2, 4))
	top := w.Balls[1]
	top.SetLocation(world.NewLocation(2, top.Bounds().Upper, 2))

	require.NoError(t, d.Display())
	assert.InDelta(t, (mid.Lower+mid.Upper)/2+0.05, w.Balls[0].Location().Y(), 1e-12)
	assert.Equal(t, top.Bounds().Upper, top.Location().Y(), "a ball on the ceiling reflects in place")
	assert.Equal(t, -1, top.Direction())
	st := d.Stats()
	assert.GreaterOrEqual(t, st.Bounces, uint64(1))
	assert.Greater(t, st.Render.Triangles, 0)
	assert.Greater(t, st.Render.Fragments, 0)

	var lit int
	for i := 0; i < len(fb.buf); i += 4 {
		if fb.buf[i]|fb.buf[i+1]|fb.buf[i+2] != 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
}

func TestNewValidation(t *testing.T) {
	w, err := world.New(world.DefaultOptions(), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	_, err = New(nil, newMemFB(1, 1), DefaultOptions(), nil)
	assert.Error(t, err)
	_, err = New(w, nil, DefaultOptions(), nil)
	assert.Error(t, err)
	opts := DefaultOptions()
	opts.FrameIntervalMs = 0
	_, err = New(w, newMemFB(1, 1), opts, nil)
	assert.Error(t, err)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "idle", Idle.Name())
	assert.Equal(t, "rendering", Rendering.Name())
	assert.Equal(t, "handling-input", HandlingInput.Name())
}
