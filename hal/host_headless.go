package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64
	// Snapshot, when set, is a PNG path written with the last presented frame.
	Snapshot string
}

// RunHeadless runs the app without opening a window. Each ticker fire advances virtual
// time by one period, so runs are reproducible for a given config and seed.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig, logger *zap.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(logger, cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	runErr := runTicker(ctx, h, step, d, cfg.Ticks)
	h.log.Info("headless stopped",
		zap.Uint64("ms", h.t.now()),
		zap.Uint64("frames", h.fb.presentedFrames()))

	if cfg.Snapshot != "" {
		if err := writeSnapshot(h.fb, cfg.Snapshot); err != nil {
			return err
		}
		h.log.Info("snapshot written", zap.String("path", cfg.Snapshot))
	}
	return runErr
}

func runTicker(ctx context.Context, h *hostHAL, step func() error, d time.Duration, limit uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(d)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := fb.WriteSnapshotPNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}
