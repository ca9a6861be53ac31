// Package frame turns a millisecond tick stream and arrow-key events into redraws of a
// world through the fixed-function renderer.
package frame

import (
	"errors"
	"fmt"

	"bouncer/fixedgl"
	"bouncer/hal"
	"bouncer/world"

	"go.uber.org/zap"
)

var ErrReentrant = errors.New("frame: handler re-entered")

// Options configures the driver.
type Options struct {
	InitialDelayMs  int
	FrameIntervalMs int

	FovY      float64
	Near, Far float64
	Shininess float64

	HUD   bool
	Title string
}

// DefaultOptions matches the classic 60 Hz demo.
func DefaultOptions() Options {
	return Options{
		InitialDelayMs:  100,
		FrameIntervalMs: 1000 / 60,
		FovY:            40,
		Near:            1,
		Far:             150,
		Shininess:       30,
		HUD:             true,
		Title:           "Bouncing Balls",
	}
}

// Stats summarizes the work done so far.
type Stats struct {
	Frames     uint64
	TimerFires uint64
	Keys       uint64
	Bounces    uint64
	Render     fixedgl.Stats
}

// Driver owns the redraw cycle. It is not safe for concurrent use.
type Driver struct {
	logger *zap.Logger
	world  *world.World
	fb     hal.Framebuffer
	opts   Options

	gl     *fixedgl.Context
	target fixedgl.RGBATarget
	disp   fbDisplay
	hud    *HUD

	state  State
	timer  timer
	redraw bool
	width  int
	height int
	stats  Stats
}

// New builds a driver rendering w into fb. It performs the one-time renderer setup and
// an initial Reshape to the framebuffer size.
func New(w *world.World, fb hal.Framebuffer, opts Options, logger *zap.Logger) (*Driver, error) {
	if w == nil {
		return nil, errors.New("frame: nil world")
	}
	if fb == nil {
		return nil, errors.New("frame: nil framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("frame: unsupported pixel format %d", fb.Format())
	}
	if opts.FrameIntervalMs <= 0 {
		return nil, fmt.Errorf("frame: frame interval %dms", opts.FrameIntervalMs)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Driver{
		logger: logger.Named("frame"),
		world:  w,
		fb:     fb,
		opts:   opts,
		timer:  newTimer(uint64(max(opts.InitialDelayMs, 0)), uint64(opts.FrameIntervalMs)),
		disp:   fbDisplay{fb: fb},
	}
	if opts.HUD {
		d.hud = NewHUD(opts.Title)
	}
	d.bindTarget()
	d.gl = fixedgl.NewContext(&d.target)
	d.init()
	d.Reshape(fb.Width(), fb.Height())
	if err := d.gl.Err(); err != nil {
		return nil, fmt.Errorf("frame: renderer setup: %w", err)
	}
	return d, nil
}

// init enables depth testing and a white specular light with shininess.
func (d *Driver) init() {
	d.gl.ClearColor(fixedgl.Black)
	d.gl.Enable(fixedgl.DepthTest)
	light := fixedgl.DefaultLight()
	light.Diffuse = fixedgl.White
	light.Specular = fixedgl.White
	d.gl.SetLight(0, light)
	d.gl.MaterialSpecular(fixedgl.White)
	d.gl.MaterialShininess(float32(d.opts.Shininess))
	d.gl.Enable(fixedgl.Lighting)
	d.gl.Enable(fixedgl.Light0)
	if l, ok := d.gl.LightAt(0); ok {
		p := l.Position
		d.logger.Debug("light 0",
			zap.Float32s("position", []float32{p.X, p.Y, p.Z, p.W}),
			zap.Float64("shininess", d.opts.Shininess))
	}
}

func (d *Driver) bindTarget() {
	d.target = fixedgl.RGBATarget{
		Buf:    d.fb.Buffer(),
		Stride: d.fb.StrideBytes(),
		W:      d.fb.Width(),
		H:      d.fb.Height(),
	}
}

func (d *Driver) State() State { return d.state }
func (d *Driver) Stats() Stats { return d.stats }

// NextFire returns the tick at which the timer fires next.
func (d *Driver) NextFire() uint64 { return d.timer.next() }

// RedrawPending reports whether a redraw has been requested but not run.
func (d *Driver) RedrawPending() bool { return d.redraw }

func (d *Driver) transition(to State) {
	if ce := d.logger.Check(zap.DebugLevel, "state"); ce != nil {
		ce.Write(zap.Stringer("from", d.state), zap.Stringer("to", to))
	}
	d.state = to
}

// Tick runs the timer at now (milliseconds) and, if a redraw is pending, Display.
// A framebuffer size change since the last call triggers Reshape first.
func (d *Driver) Tick(now uint64) error {
	if d.state != Idle {
		return ErrReentrant
	}
	if w, h := d.fb.Width(), d.fb.Height(); w != d.width || h != d.height {
		d.Reshape(w, h)
	}
	if d.timer.fire(now) {
		d.stats.TimerFires++
		d.redraw = true
	}
	if !d.redraw {
		return nil
	}
	return d.Display()
}

// Display draws one frame: clear, view from the camera towards the board centre, board,
// then every ball updated and drawn in order. The result is presented.
func (d *Driver) Display() error {
	if d.state != Idle {
		return ErrReentrant
	}
	d.transition(Rendering)
	defer d.transition(Idle)
	d.redraw = false

	gl := d.gl
	d.bindTarget()
	gl.Clear(fixedgl.ColorBufferBit | fixedgl.DepthBufferBit)
	gl.MatrixMode(fixedgl.ModelView)
	gl.LoadIdentity()
	eye, center := d.world.LookAt()
	gl.LookAt(
		fixedgl.V3(float32(eye.X()), float32(eye.Y()), float32(eye.Z())),
		fixedgl.V3(float32(center.X()), float32(center.Y()), float32(center.Z())),
		fixedgl.V3(0, 1, 0),
	)
	bounced := d.world.Render(gl)
	gl.Flush()
	if err := gl.Err(); err != nil {
		d.logger.Error("render", zap.Error(err))
		return fmt.Errorf("frame %d: %w", d.stats.Frames+1, err)
	}

	d.stats.Frames++
	d.stats.Bounces += uint64(bounced)
	d.stats.Render = gl.Stats()
	if d.hud != nil {
		d.hud.Draw(&d.disp, d.hud.Line(d.world, d.stats.Frames))
	}
	if err := d.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Reshape maps the viewport to w x h and resets the projection to a perspective with
// the configured field of view. Sizes below 1 are clamped to 1.
func (d *Driver) Reshape(w, h int) {
	d.width, d.height = w, h
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	d.bindTarget()
	gl := d.gl
	gl.Viewport(0, 0, w, h)
	gl.MatrixMode(fixedgl.Projection)
	gl.LoadIdentity()
	gl.Perspective(float32(d.opts.FovY), float32(w)/float32(h), float32(d.opts.Near), float32(d.opts.Far))
	gl.MatrixMode(fixedgl.ModelView)
	vp := gl.CurrentViewport()
	d.logger.Debug("reshape", zap.Int("width", vp.W), zap.Int("height", vp.H))
}

// HandleKey moves the camera on an arrow key press and requests a redraw. Releases and
// other keys are ignored.
func (d *Driver) HandleKey(ev hal.KeyEvent) error {
	if d.state != Idle {
		return ErrReentrant
	}
	if !ev.Press {
		return nil
	}
	cam := d.world.Camera
	var move func()
	switch ev.Code {
	case hal.KeyLeft:
		move = cam.MoveLeft
	case hal.KeyRight:
		move = cam.MoveRight
	case hal.KeyUp:
		move = cam.MoveUp
	case hal.KeyDown:
		move = cam.MoveDown
	default:
		return nil
	}

	d.transition(HandlingInput)
	move()
	d.redraw = true
	d.stats.Keys++
	d.transition(Idle)
	d.logger.Debug("camera moved",
		zap.Stringer("key", ev.Code),
		zap.Bool("repeat", ev.Repeat),
		zap.Stringer("eye", cam.Eye()))
	return nil
}
