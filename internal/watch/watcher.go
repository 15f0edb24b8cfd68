package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lokistudio/detell/internal/logger"
)

// Watcher invokes a callback whenever a file changes on disk. Change events
// are rate limited so editors that fire bursts of writes on save trigger
// one rewrite, not many.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	limiter  *rate.Limiter
	debounce time.Duration
	logger   *logger.Logger
}

// New creates a watcher for path. The debounce interval caps how often the
// callback can fire; values <= 0 fall back to 500ms.
func New(path string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the parent directory: editors often replace the file on save,
	// which would drop a watch held on the inode itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		path:     filepath.Clean(path),
		fsw:      fsw,
		limiter:  rate.NewLimiter(rate.Every(debounce), 1),
		debounce: debounce,
		logger:   log,
	}, nil
}

// Run blocks, invoking onChange for every write to the watched file, until
// the context is cancelled. Writes landing inside the debounce window are
// coalesced, not dropped: a trailing timer re-fires the callback so the
// last save in a burst always reaches the output. Callback errors are
// logged, not fatal: a bad intermediate save should not kill the watch.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	defer w.fsw.Close()

	trailing := time.NewTimer(w.debounce)
	if !trailing.Stop() {
		<-trailing.C
	}
	defer trailing.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.limiter.Allow() {
				// Rate limited: remember the event and re-fire once the
				// window passes.
				if pending && !trailing.Stop() {
					<-trailing.C
				}
				pending = true
				trailing.Reset(w.debounce)
				continue
			}

			w.logger.Debug("File changed",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)
			if err := onChange(); err != nil {
				w.logger.Error("Rewrite failed", zap.Error(err))
			}

		case <-trailing.C:
			pending = false
			w.logger.Debug("Coalesced change processed", zap.String("path", w.path))
			if err := onChange(); err != nil {
				w.logger.Error("Rewrite failed", zap.Error(err))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", zap.Error(err))
		}
	}
}
