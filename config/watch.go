package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Logger is what Watch reports reload results to.
type Logger interface {
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// Watch reloads path whenever it changes and sends each valid config on out
// until ctx is done. Files that fail to parse are logged and skipped.
//
// The parent directory is watched rather than the file itself, since most
// editors save by renaming a temporary file over the original.
func Watch(ctx context.Context, path string, lg Logger, out chan<- Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := Load(target)
			if err != nil {
				lg.Warn("config reload rejected", "path", target, "err", err)
				continue
			}
			lg.Info("config reloaded", "path", target)
			select {
			case out <- cfg:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			lg.Warn("watcher error", "err", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
