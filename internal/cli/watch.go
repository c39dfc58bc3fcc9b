package cli

import (
	"context"
	"crypto/md5"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange when the content of path changes. Events are
// coalesced over interval. It returns when ctx is done.
//
// The parent directory is watched so that editors which save by rename
// keep triggering. When no notifier can be created it falls back to
// polling every interval.
func Watch(ctx context.Context, path string, interval time.Duration, logger *slog.Logger, onChange func()) {
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		err = watcher.Add(filepath.Dir(path))
		if err != nil {
			watcher.Close()
		}
	}
	if err != nil {
		logger.Warn("Watch: notifier unavailable, polling", "path", path, "error", err)
		poll(ctx, path, interval, logger, onChange)
		return
	}
	defer watcher.Close()

	last, _ := fileHash(path)
	name := filepath.Clean(path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(interval)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch: notifier error", "path", path, "error", err)
		case <-debounce:
			debounce = nil
			if changed(path, &last, logger) {
				onChange()
			}
		}
	}
}

func poll(ctx context.Context, path string, interval time.Duration, logger *slog.Logger, onChange func()) {
	last, _ := fileHash(path)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if changed(path, &last, logger) {
				onChange()
			}
		}
	}
}

// changed reports whether the file hash differs from *last and records it.
func changed(path string, last *[md5.Size]byte, logger *slog.Logger) bool {
	sum, err := fileHash(path)
	if err != nil {
		logger.Warn("Watch: failed to read file", "path", path, "error", err)
		return false
	}
	if sum == *last {
		return false
	}
	*last = sum
	logger.Info("Watch: file changed", "path", path)
	return true
}

func fileHash(path string) ([md5.Size]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [md5.Size]byte{}, err
	}
	return md5.Sum(data), nil
}
