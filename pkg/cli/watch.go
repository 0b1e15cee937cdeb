/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchConfig calls run each time the file at path is written or recreated,
// until ctx is done. Runs are serial; a failed run is logged and watching
// continues.
func watchConfig(ctx context.Context, path string, run func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// editors that save atomically replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory of %s: %w", path, err)
	}

	slog.Info("watching configuration for changes", "path", path)

	filename := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			slog.Info("stopped watching configuration", "path", path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			slog.Debug("configuration changed",
				"event", event.Op.String(),
				"file", event.Name)

			if err := run(ctx); err != nil {
				logError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "error", err)
		}
	}
}
