package pipeline

import (
	"context"
	"io"
	"sync"

	"github.com/nxadm/tail"

	"github.com/livp123/evplot/internal/event"
	"github.com/livp123/evplot/internal/metrics"
	"github.com/livp123/evplot/internal/series"
	"github.com/livp123/evplot/internal/utils/logger"
)

// Watcher follows a growing event log and accumulates continuously.
//
// Unlike the one-shot Run, a malformed line is not fatal here: a live
// stream can hand us a torn line around rotation, so parse errors are
// logged and counted instead. PolicyReject still stops the watcher.
type Watcher struct {
	path      string
	fromStart bool
	opts      Options
	acc       *series.Accumulator

	tailer   *tail.Tail
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.Mutex
	err       error
	lineNo    int
	parseErrs uint64
}

// NewWatcher creates a watcher for the given file.
func NewWatcher(path string, fromStart bool, opts Options) *Watcher {
	return &Watcher{
		path:      path,
		fromStart: fromStart,
		opts:      opts,
		acc:       series.NewAccumulator(opts.Kinds, opts.Policy),
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
}

// Start begins tailing the file.
func (w *Watcher) Start(ctx context.Context) error {
	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true, // Handle log rotation
		MustExist: false,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	}
	if !w.fromStart {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	tailer, err := tail.TailFile(w.path, cfg)
	if err != nil {
		return err
	}
	w.tailer = tailer

	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.doneChan)

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case line, ok := <-w.tailer.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				logger.Get(ctx).Warnf("Error reading %s: %v", w.path, line.Err)
				continue
			}
			if !w.handle(ctx, line.Text) {
				return
			}
		}
	}
}

// handle feeds one line through parse, filter and accumulate.
// It returns false when the watcher must stop (PolicyReject hit).
func (w *Watcher) handle(ctx context.Context, text string) bool {
	w.mu.Lock()
	w.lineNo++
	lineNo := w.lineNo
	w.mu.Unlock()

	if text == "" {
		return true
	}

	rec, err := event.ParseLine(lineNo, text)
	if err != nil {
		metrics.ParseErrorsTotal.Inc()
		w.mu.Lock()
		w.parseErrs++
		w.mu.Unlock()
		logger.Get(ctx).Warnf("⚠️  Skipping malformed line: %v", err)
		return true
	}

	if !w.opts.Filter.Match(rec) {
		metrics.LinesFilteredTotal.Inc()
		return true
	}

	added, err := w.acc.Add(rec)
	if err != nil {
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
		logger.Get(ctx).Errorf("❌ Stopping watch: %v", err)
		return false
	}
	if added {
		metrics.EventsTotal.WithLabelValues(rec.Kind).Inc()
		metrics.TrackedKinds.Set(float64(len(w.acc.Kinds())))
	} else {
		metrics.LinesIgnoredTotal.Inc()
	}
	return true
}

// Snapshot returns a copy of the accumulated series.
func (w *Watcher) Snapshot() []series.Series {
	return w.acc.Snapshot()
}

// Accumulator exposes the live accumulator for metrics collection.
func (w *Watcher) Accumulator() *series.Accumulator {
	return w.acc
}

// ParseErrors returns how many malformed lines were skipped so far.
func (w *Watcher) ParseErrors() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parseErrs
}

// Done is closed when the watch loop exits on its own.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneChan
}

// Err returns the error that stopped the watcher, if any.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Stop stops tailing and waits for the loop to drain.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.tailer != nil {
			_ = w.tailer.Stop()
		}
	})
	w.wg.Wait()
}
