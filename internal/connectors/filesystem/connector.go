// Package filesystem discovers convertible files below local paths.
package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

// Connector walks a set of root paths and emits a descriptor per
// supported file. Roots may be files or directories; unsupported
// extensions are skipped silently (they are not an error — inputs
// are often mixed directories).
type Connector struct {
	roots     []string
	recursive bool
}

// New creates a connector over the given roots.
func New(roots []string, recursive bool) *Connector {
	return &Connector{roots: roots, recursive: recursive}
}

// Discover walks the roots in order and streams descriptors.
// Both channels close when the walk finishes or ctx is cancelled.
// Walk errors are reported on the error channel and the walk continues
// with the remaining entries.
func (c *Connector) Discover(ctx context.Context) (<-chan domain.SourceDescriptor, <-chan error) {
	out := make(chan domain.SourceDescriptor)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		for _, root := range c.roots {
			info, err := os.Stat(root)
			if err != nil {
				sendErr(ctx, errs, err)
				continue
			}
			if !info.IsDir() {
				emit(ctx, out, root)
				continue
			}
			walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if err != nil {
					sendErr(ctx, errs, err)
					return nil
				}
				if d.IsDir() {
					if !c.recursive && path != root {
						return fs.SkipDir
					}
					return nil
				}
				emit(ctx, out, path)
				return nil
			})
			if walkErr != nil && walkErr != ctx.Err() {
				sendErr(ctx, errs, walkErr)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return out, errs
}

// Watch emits a descriptor whenever a supported file is created or
// written below a directory root. The channel closes when ctx is
// cancelled. Repeated writes to the same file re-emit it; the consumer
// converts per event.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.SourceDescriptor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, root := range c.roots {
		if err := watcher.Add(root); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	out := make(chan domain.SourceDescriptor)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
					continue
				}
				emit(ctx, out, event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return out, nil
}

// emit sends a descriptor for path if its type is supported.
func emit(ctx context.Context, out chan<- domain.SourceDescriptor, path string) {
	src := domain.NewSourceDescriptor(path)
	if !src.Type.Supported() {
		logger.Debug("skipping unsupported file %s", path)
		return
	}
	select {
	case out <- src:
	case <-ctx.Done():
	}
}

func sendErr(ctx context.Context, errs chan<- error, err error) {
	select {
	case errs <- err:
	case <-ctx.Done():
	default:
		// Error channel full; the walk keeps going, the detail is logged.
		logger.Warn("discovery error: %v", err)
	}
}
