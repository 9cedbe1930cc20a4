package substrata

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs Generate once, then regenerates whenever a token stylesheet in
// config.TokensDir is created, written, removed or renamed. Bursts of events
// are debounced into a single run. Runs never overlap; each outcome goes to
// onResult and watching continues after failed runs.
//
// Watch returns when ctx is cancelled. It fails immediately only when the
// directory cannot be watched.
func Watch(ctx context.Context, config Config, onResult func(*GenerateResult, error)) error {
	log := config.logger()

	if config.Cache == nil {
		cache, err := NewFileCache(0)
		if err != nil {
			return err
		}
		config.Cache = cache
	}

	onResult(Generate(config))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(config.TokensDir); err != nil {
		return fmt.Errorf("watch %s: %w", config.TokensDir, err)
	}
	log.Info("watching tokens directory", "dir", config.TokensDir)

	excluded := compileExcludes(config.Excludes)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isTokenFile(filepath.Base(event.Name), config.includes(), excluded) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("file event", "op", event.Op.String(), "file", event.Name)

			if timer == nil {
				timer = time.NewTimer(config.debounce())
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(config.debounce())
			}
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-pending:
			pending = nil
			onResult(Generate(config))
		}
	}
}
