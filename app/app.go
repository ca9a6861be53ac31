// Package app wires configuration, the HAL, the world and the frame driver into the
// per-tick step function the host runners call.
package app

import (
	"fmt"
	"math/rand/v2"

	"bouncer/frame"
	"bouncer/hal"
	"bouncer/internal/config"
	"bouncer/world"

	"go.uber.org/zap"
)

// App is one running demo bound to a HAL.
type App struct {
	logger *zap.Logger
	h      hal.HAL
	world  *world.World
	driver *frame.Driver
	now    uint64
}

// New builds the world from cfg, seeds ball placement with cfg.Balls.Seed and attaches a
// frame driver to the HAL framebuffer.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := h.Logger().Named("app")

	seed := cfg.Balls.Seed
	w, err := world.New(WorldOptions(cfg), rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	fb := h.Display().Framebuffer()
	d, err := frame.New(w, fb, FrameOptions(cfg), h.Logger())
	if err != nil {
		return nil, err
	}

	logger.Info("scene ready",
		zap.Int("balls", len(w.Balls)),
		zap.Uint64("seed", seed),
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()))
	for i, b := range w.Balls {
		logger.Debug("ball",
			zap.Int("index", i),
			zap.Stringer("location", b.Location()),
			zap.Stringer("color", b.Color()),
			zap.Int("direction", b.Direction()),
			zap.Bool("in_bounds", b.Bounds().Contains(b.Location().Y())))
	}
	return &App{logger: logger, h: h, world: w, driver: d}, nil
}

// Factory adapts New to the HAL runner signature.
func Factory(cfg config.Config) hal.AppFactory {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

func (a *App) World() *world.World   { return a.world }
func (a *App) Driver() *frame.Driver { return a.driver }

// Step drains pending key events and ticks, then lets the driver run its timer and any
// requested redraw. A panic is reported on screen and returned as an error.
func (a *App) Step() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = a.panicked(v)
		}
	}()

	keys := a.h.Input().Keyboard().Events()
	ticks := a.h.Time().Ticks()
drain:
	for {
		select {
		case ev := <-keys:
			if err := a.driver.HandleKey(ev); err != nil {
				return err
			}
		case now := <-ticks:
			a.now = now
		default:
			break drain
		}
	}
	return a.driver.Tick(a.now)
}

// WorldOptions maps cfg onto the scene description.
func WorldOptions(cfg config.Config) world.Options {
	o := world.DefaultOptions()
	o.Balls = cfg.Balls.Count
	o.Radius = cfg.Balls.Radius
	o.Step = cfg.Balls.Step
	o.Bounds = world.Bounds{Lower: cfg.Balls.Floor, Upper: cfg.Balls.Ceiling}
	o.SpawnMin = cfg.Balls.SpawnMin
	o.SpawnMax = cfg.Balls.SpawnMax
	o.SphereSlices = cfg.Balls.Slices
	o.SphereStacks = cfg.Balls.Stacks
	o.BoardCells = cfg.Board.Cells
	o.BoardCellSize = cfg.Board.CellSize
	o.Eye = world.NewLocation(cfg.Camera.Eye[0], cfg.Camera.Eye[1], cfg.Camera.Eye[2])
	o.CameraStep = cfg.Camera.Step
	return o
}

// FrameOptions maps cfg onto the driver settings.
func FrameOptions(cfg config.Config) frame.Options {
	return frame.Options{
		InitialDelayMs:  cfg.Timing.InitialDelayMs,
		FrameIntervalMs: cfg.Timing.FrameIntervalMs(),
		FovY:            cfg.Render.FovY,
		Near:            cfg.Render.Near,
		Far:             cfg.Render.Far,
		Shininess:       cfg.Render.Shininess,
		HUD:             cfg.HUD.Enabled,
		Title:           cfg.Window.Title,
	}
}
