package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/app/pokedex"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

const defaultRetryInterval = 30 * time.Second

// Pipeline is the two-phase load the Loader drives.
type Pipeline interface {
	LoadList(ctx context.Context) (int, error)
	Preload(ctx context.Context) (pokedex.PreloadResult, error)
}

// Options configures a Loader.
type Options struct {
	// Preload loads every entity's details once the list is in.
	Preload bool
	// RetryInterval spaces list attempts while the list has not loaded.
	RetryInterval time.Duration
	Logger        *slog.Logger
}

// Loader runs the pipeline once per process in the background: the list first,
// retried until it succeeds, then the optional detail preload.
type Loader struct {
	pipeline      Pipeline
	preload       bool
	retryInterval time.Duration
	logger        *slog.Logger
	now           func() time.Time

	startMu  sync.Mutex
	started  bool
	cancel   context.CancelFunc
	finished chan struct{}
	stopOnce sync.Once

	statusMu sync.RWMutex
	status   Status
}

// Status describes how far the pipeline has progressed.
type Status struct {
	ListLoaded          bool
	Count               int
	Preloading          bool
	PreloadDone         bool
	DetailsLoaded       int
	DetailFailures      int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the list has loaded. Detail loads never gate readiness.
func (s Status) IsReady() bool {
	return s.ListLoaded
}

// New constructs a Loader with sane defaults.
func New(pipeline Pipeline, opts Options) *Loader {
	interval := opts.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &Loader{
		pipeline:      pipeline,
		preload:       opts.Preload,
		retryInterval: interval,
		logger:        opts.Logger,
		now:           time.Now,
		finished:      make(chan struct{}),
	}
}

// Start runs the pipeline in a goroutine until it completes, ctx ends or Stop is called.
// Calling Start more than once has no effect.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.startMu.Unlock()

	go func() {
		defer close(l.finished)
		defer cancel()

		logging.Info(l.logger, "loader started", slog.Bool("preload", l.preload))
		for {
			if err := l.loadList(runCtx); err == nil {
				break
			}
			timer := time.NewTimer(l.retryInterval)
			select {
			case <-runCtx.Done():
				timer.Stop()
				logging.Info(l.logger, "loader stopped")
				return
			case <-timer.C:
			}
		}
		if l.preload {
			l.preloadDetails(runCtx)
		}
		logging.Info(l.logger, "loader finished")
	}()
}

// Run loads the list once and, when enabled, preloads details, blocking until done.
func (l *Loader) Run(ctx context.Context) error {
	if err := l.loadList(ctx); err != nil {
		return err
	}
	if l.preload {
		return l.preloadDetails(ctx)
	}
	return nil
}

// Stop cancels a running pipeline and waits for it to exit or for ctx to end.
func (l *Loader) Stop(ctx context.Context) error {
	l.startMu.Lock()
	started, cancel := l.started, l.cancel
	l.startMu.Unlock()
	if !started {
		return nil
	}

	l.stopOnce.Do(cancel)
	select {
	case <-l.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when a started pipeline has exited.
func (l *Loader) Done() <-chan struct{} {
	return l.finished
}

// Status returns a snapshot of the loader's progress.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

func (l *Loader) loadList(ctx context.Context) error {
	start := l.now()
	l.update(func(s *Status) { s.LastAttempt = start })

	n, err := l.pipeline.LoadList(ctx)
	if err != nil {
		l.update(func(s *Status) {
			s.ConsecutiveFailures++
			s.LastError = err.Error()
		})
		logging.Warn(l.logger, "loader list attempt failed",
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			"error", err,
		)
		return err
	}

	l.update(func(s *Status) {
		s.ListLoaded = true
		s.Count += n
		s.ConsecutiveFailures = 0
		s.LastError = ""
		s.LastSuccess = start
	})
	return nil
}

func (l *Loader) preloadDetails(ctx context.Context) error {
	l.update(func(s *Status) { s.Preloading = true })
	res, err := l.pipeline.Preload(ctx)
	l.update(func(s *Status) {
		s.Preloading = false
		s.PreloadDone = err == nil
		s.DetailsLoaded = res.Loaded
		s.DetailFailures = res.Failed
		if err != nil {
			s.LastError = err.Error()
		}
	})
	if err != nil {
		logging.Warn(l.logger, "loader preload interrupted", "error", err)
	}
	return err
}

func (l *Loader) update(fn func(*Status)) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	fn(&l.status)
}
