//go:build !cgo

package hal

import (
	"fmt"

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

func RunWindow(_ WindowConfig, _ AppFactory, _ *zap.Logger) error {
	return fmt.Errorf("%w: requires cgo (build/run with CGO_ENABLED=1)", ErrNoWindow)
}
