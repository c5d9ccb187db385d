package archive

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/logger"
)

// Watcher reports bulletin archives created under the source root after
// the initial walk. Producers are expected to move archives into place
// atomically; a file still being written decodes as garbage or fails and
// is skipped like any other bad archive.
type Watcher struct {
	source *Source
	fw     *fsnotify.Watcher
}

// NewWatcher starts watching the source root and its subdirectories.
func NewWatcher(source *Source) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(source.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{source: source, fw: fw}, nil
}

// Run delivers payloads for newly created archives until the context is
// cancelled. Newly created directories are watched as they appear.
func (w *Watcher) Run(ctx context.Context, fn func(domain.Payload) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if isDir(event.Name) {
				if err := w.fw.Add(event.Name); err != nil {
					logger.Warn("cannot watch %s: %v", event.Name, err)
				}
				continue
			}
			if !w.source.Matches(event.Name) {
				continue
			}
			payload, err := w.source.Load(event.Name)
			if err != nil {
				logger.Error("skipping archive %s: %v", event.Name, err)
				continue
			}
			if err := fn(payload); err != nil {
				return err
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
