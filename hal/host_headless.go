package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"paintbox/export"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// SnapshotDir, when set, receives a PNG of the composed canvases after
	// the last tick.
	SnapshotDir string
}

// RunHeadless runs the app on software canvases without opening a window.
func RunHeadless(ctx context.Context, opts Options, newApp NewApp, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	if opts.Backend == GPUBackend {
		return fmt.Errorf("%w: the gpu renderer needs a window", ErrNotImplemented)
	}

	h, err := newHost(opts)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return h.snapshot(cfg.SnapshotDir, tick)
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return h.snapshot(cfg.SnapshotDir, tick)
			}
		}
	}
}

// snapshot writes the composed canvases to dir/frame-<tick>.png.
func (h *hostHAL) snapshot(dir string, tick uint64) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	img := h.composeImage()
	path := filepath.Join(dir, fmt.Sprintf("frame-%06d.png", tick))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := export.PNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	h.logger.Info("snapshot written", "path", path)
	return nil
}

func (h *hostHAL) composeImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, h.opts.Width*len(h.fbs), h.opts.Height))
	h.composeRGBA(img.Pix)
	return img
}
