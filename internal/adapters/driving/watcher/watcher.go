// Package watcher publishes markdown files dropped into a watched
// directory. Finished files are renamed with a .published suffix so
// they are not picked up again.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/logger"
)

// DefaultDebounce is how long a file must be quiet before it is
// published. Editors and sync clients write in bursts.
const DefaultDebounce = 500 * time.Millisecond

// publishedSuffix marks files that have already been processed.
const publishedSuffix = ".published"

// Config holds watcher configuration.
type Config struct {
	// Dir is the directory to watch. Required.
	Dir string
	// Debounce is the quiet period before a changed file is published.
	// Zero means DefaultDebounce.
	Debounce time.Duration
	// Extensions lists the file extensions to pick up.
	// Empty means .md only.
	Extensions []string
}

// Watcher watches a drop directory and publishes markdown files.
type Watcher struct {
	config    Config
	publisher driving.PublishService

	mu      sync.Mutex
	fw      *fsnotify.Watcher
	pending map[string]*time.Timer
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a new drop-directory watcher.
func NewWatcher(config Config, publisher driving.PublishService) (*Watcher, error) {
	if publisher == nil {
		return nil, fmt.Errorf("watcher: publish service is required")
	}
	if config.Dir == "" {
		return nil, fmt.Errorf("watcher: directory is required")
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".md"}
	}
	return &Watcher{
		config:    config,
		publisher: publisher,
		pending:   make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. It also publishes matching files already
// present in the directory, so memos dropped while the watcher was
// down are not lost.
func (w *Watcher) Start(ctx context.Context) error {
	info, err := os.Stat(w.config.Dir)
	if err != nil {
		return fmt.Errorf("watcher: stat %s: %w", w.config.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watcher: %s is not a directory", w.config.Dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	if err := fw.Add(w.config.Dir); err != nil {
		fw.Close()
		return fmt.Errorf("watcher: watch %s: %w", w.config.Dir, err)
	}

	w.mu.Lock()
	w.fw = fw
	w.done = make(chan struct{})
	w.mu.Unlock()

	if err := w.publishExisting(ctx); err != nil {
		logger.Warn("Watcher: initial scan: %v", err)
	}

	w.wg.Add(1)
	go w.loop(ctx)

	logger.Info("Watching %s for markdown memos", w.config.Dir)
	return nil
}

// Stop stops watching and waits for in-flight publishes.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fw := w.fw
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	var err error
	if fw != nil {
		err = fw.Close()
	}
	w.wg.Wait()
	return err
}

// loop dispatches filesystem events until the watcher is stopped.
func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	w.mu.Lock()
	fw, done := w.fw, w.done
	w.mu.Unlock()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.wanted(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher: %v", err)
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// schedule arms (or re-arms) the debounce timer for a path.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.config.Debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.publishFile(ctx, path)
	})
}

// publishExisting publishes matching files already in the directory.
func (w *Watcher) publishExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.config.Dir, entry.Name())
		if w.wanted(path) {
			w.publishFile(ctx, path)
		}
	}
	return nil
}

// wanted reports whether a path should be published. Hidden files and
// already-processed files are skipped.
func (w *Watcher) wanted(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.HasSuffix(name, publishedSuffix) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range w.config.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// publishFile reads, publishes and marks one file.
func (w *Watcher) publishFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Watcher: read %s: %v", path, err)
		}
		return
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		logger.Debug("Watcher: skipping empty file %s", path)
		return
	}

	source := "watch:" + filepath.Base(path)
	pub, err := w.publisher.PublishDocument(ctx, text, source)
	if err != nil {
		logger.Warn("Watcher: publish %s: %v", path, err)
		return
	}
	logger.Info("Published %s as page %s", filepath.Base(path), pub.PageID)

	if err := os.Rename(path, path+publishedSuffix); err != nil {
		logger.Warn("Watcher: mark %s: %v", path, err)
	}
}
