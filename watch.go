package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/metcalfc/rsvp/internal/book"
	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/rs/zerolog"
)

const reloadDebounce = 300 * time.Millisecond

// watchSource reloads path whenever it changes on disk and passes the new
// book to onChange. onChange runs on the watcher goroutine; front ends hand
// it over to their own event loop. The watch ends when ctx is cancelled.
func watchSource(ctx context.Context, path string, log zerolog.Logger, onChange func(reader.Book)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	log.Info().Str("file", abs).Msg("watching source")

	go func() {
		defer watcher.Close()
		var last time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if time.Since(last) < reloadDebounce {
					continue
				}
				last = time.Now()

				b, err := book.Open(abs)
				if err != nil {
					log.Warn().Err(err).Str("op", event.Op.String()).Msg("reload failed")
					continue
				}
				log.Info().Str("op", event.Op.String()).Int("chapters", len(b.Chapters)).Msg("source reloaded")
				onChange(b)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("watcher error")
			}
		}
	}()
	return nil
}
