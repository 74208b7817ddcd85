package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchAndRender re-renders the gallery whenever the watched directory
// changes. It blocks until the watcher is closed or fails.
func watchAndRender(cmd *cobra.Command, dir string, opts *renderOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes...\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if isSelfInflicted(event.Name, dir, opts) {
				continue
			}
			if err := renderOnce(cmd, dir, opts); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: render failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: watch: %v\n", err)
		}
	}
}

// isSelfInflicted reports whether a filesystem event was caused by our own
// output, so rendering does not retrigger itself.
func isSelfInflicted(name, dir string, opts *renderOptions) bool {
	if abs, err := filepath.Abs(name); err == nil {
		if out, err := filepath.Abs(opts.output); err == nil && abs == out {
			return true
		}
	}
	if opts.makeThumbs {
		thumbs := filepath.Join(dir, opts.thumbDir)
		if rel, err := filepath.Rel(thumbs, name); err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}
