package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"bouncer/frame"

	"go.uber.org/zap"
)

// panicked logs a recovered panic with its stack, paints it onto the framebuffer and
// presents it so the window shows what went wrong before the runner exits.
func (a *App) panicked(v any) error {
	stack := string(debug.Stack())
	a.logger.Error("panic", zap.Any("value", v), zap.String("stack", stack))

	lines := []string{
		"Bouncing Balls panic:",
		fmt.Sprintf("panic: %v", v),
		fmt.Sprintf("frame: %d", a.driver.Stats().Frames),
		"stack:",
	}
	for _, line := range strings.Split(stack, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	fb := a.h.Display().Framebuffer()
	frame.DrawText(fb, lines)
	if err := fb.Present(); err != nil {
		a.logger.Warn("present panic screen", zap.Error(err))
	}
	return fmt.Errorf("app: panic: %v", v)
}
