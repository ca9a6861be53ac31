//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Width     int
	Height    int
	X, Y      int
	Title     string
	Resizable bool
	TPS       int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards arrow keys.
// It blocks until the window closes or Escape is pressed.
func RunWindow(cfg WindowConfig, newApp AppFactory, logger *zap.Logger) error {
	h := newHost(logger, cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	g := &hostGame{h: h, step: step, resizable: cfg.Resizable}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowPosition(cfg.X, cfg.Y)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	h.log.Info("window open",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tps", ebiten.TPS()))

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h         *hostHAL
	step      func() error
	resizable bool
	scratch   []byte
}

func (g *hostGame) Update() error {
	if isQuitPressed() {
		return ebiten.Termination
	}
	g.h.kbd.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	n := fb.StrideBytes() * fb.Height()
	if cap(g.scratch) < n {
		g.scratch = make([]byte, n)
	}
	g.scratch = g.scratch[:n]
	w, h := fb.snapshot(g.scratch)
	b := screen.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return
	}
	screen.WritePixels(g.scratch)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && g.h.fb.resize(outsideWidth, outsideHeight) {
		g.h.log.Debug("framebuffer resized",
			zap.Int("width", g.h.fb.Width()),
			zap.Int("height", g.h.fb.Height()))
	}
	return g.h.fb.Width(), g.h.fb.Height()
}
