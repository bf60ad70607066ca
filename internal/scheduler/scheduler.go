package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of scheduled work.
type Task func(context.Context) error

// Stats summarizes the executions since the scheduler was created.
type Stats struct {
	Runs      int
	Failures  int
	LastRunAt time.Time
	LastError error
}

type Option func(*Scheduler)

// WithTaskTimeout bounds every execution. Without it a run is only
// cancelled by Stop or by the context given to Start.
func WithTaskTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		s.taskTimeout = timeout
	}
}

// WithoutInitialRun waits one interval before the first execution.
func WithoutInitialRun() Option {
	return func(s *Scheduler) {
		s.runOnStart = false
	}
}

// Scheduler executes a task every interval. Executions never overlap: a
// tick that fires while the task is still running is dropped.
type Scheduler struct {
	logger      *zap.Logger
	interval    time.Duration
	taskTimeout time.Duration
	runOnStart  bool
	task        Task
	stopCh      chan struct{}
	doneCh      chan struct{}
	isRunning   bool
	stats       Stats
	mu          sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, interval time.Duration, task Task, opts ...Option) *Scheduler {
	s := &Scheduler{
		logger:      logger,
		interval:    interval,
		runOnStart:  true,
		task:        task,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the scheduler loop. The loop ends on Stop or when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for a running execution to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.isRunning = false
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Stats returns a snapshot of the execution counters.
func (s *Scheduler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Scheduler) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	// Merge the parent context and Stop so a running task is cancelled by both.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	if s.runOnStart {
		s.execute(runCtx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-runCtx.Done():
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
			s.logger.Info("Scheduler loop finished", zap.Error(context.Cause(runCtx)))
			return
		case <-ticker.C:
			s.execute(runCtx)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	taskCtx := ctx
	if s.taskTimeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, s.taskTimeout)
		defer cancel()
	}

	started := time.Now()
	err := s.task(taskCtx)

	s.mu.Lock()
	s.stats.Runs++
	s.stats.LastRunAt = started
	s.stats.LastError = err
	if err != nil {
		s.stats.Failures++
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Scheduled task failed",
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return
	}

	s.logger.Debug("Scheduled task completed", zap.Duration("elapsed", time.Since(started)))
}
