// Package scheduler runs cancellable polling tasks keyed by an ID, at most one
// loop per key.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultInterval is the polling period used when Config.Interval is zero
const DefaultInterval = 15 * time.Second

// TickFunc is called on every tick. ctx is cancelled as soon as the task is
// stopped, so a tick in flight can tell it must not act on its results.
type TickFunc func(ctx context.Context)

// Config holds configuration for the scheduler
type Config struct {
	// Interval between ticks; the first tick runs immediately
	Interval time.Duration

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

// Scheduler owns the polling loops
type Scheduler struct {
	interval time.Duration
	log      *logrus.Logger

	mu    sync.Mutex
	tasks map[string]*task
	wg    sync.WaitGroup
}

// task is one polling loop
type task struct {
	key    string
	ctx    context.Context
	cancel context.CancelFunc

	// mu guards stopped; it is never held while the tick runs
	mu      sync.Mutex
	stopped bool
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Interval < 0 {
		return nil, errors.New("interval cannot be negative")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Scheduler{
		interval: interval,
		log:      logger,
		tasks:    make(map[string]*task),
	}, nil
}

// Interval returns the configured polling period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start begins polling key with fn. It returns false without starting anything
// when a loop is already active for key.
func (s *Scheduler) Start(key string, fn TickFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tasks[key]; ok && !existing.isStopped() {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{
		key:    key,
		ctx:    ctx,
		cancel: cancel,
	}
	s.tasks[key] = t

	s.wg.Add(1)
	go s.run(t, fn)

	s.log.WithFields(logrus.Fields{
		"key":      key,
		"interval": s.interval,
	}).Debug("polling started")

	return true
}

// Stop ends the loop for key and cancels the context handed to its ticks. A
// tick that has not reached fn yet is skipped; one already inside fn sees the
// cancellation. Safe to call repeatedly and from inside a tick.
func (s *Scheduler) Stop(key string) bool {
	s.mu.Lock()
	t, ok := s.tasks[key]
	if ok {
		delete(s.tasks, key)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}

	wasRunning := t.stop()
	if wasRunning {
		s.log.WithField("key", key).Debug("polling stopped")
	}

	return wasRunning
}

// IsActive reports whether a loop is running for key
func (s *Scheduler) IsActive(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	return ok && !t.isStopped()
}

// ActiveKeys returns the keys with a running loop
func (s *Scheduler) ActiveKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.tasks))
	for key, t := range s.tasks {
		if !t.isStopped() {
			keys = append(keys, key)
		}
	}
	return keys
}

// StopAll stops every loop and waits for in-flight ticks to return
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = make(map[string]*task)
	s.mu.Unlock()

	for _, t := range tasks {
		t.stop()
	}

	s.wg.Wait()
}

func (s *Scheduler) run(t *task, fn TickFunc) {
	defer s.wg.Done()
	defer s.forget(t)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if !t.beginTick() {
			return
		}
		s.tick(t, fn)

		select {
		case <-t.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) tick(t *task, fn TickFunc) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"key":   t.key,
				"panic": r,
			}).Error("poll tick panicked")
		}
	}()

	// Stopped between the gate and here
	if t.ctx.Err() != nil {
		return
	}

	fn(t.ctx)
}

// forget removes t from the task map if it is still the registered loop for its key
func (s *Scheduler) forget(t *task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.tasks[t.key]; ok && current == t {
		delete(s.tasks, t.key)
	}
}

// beginTick is the gate every tick passes through
func (t *task) beginTick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped
}

func (t *task) stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	t.cancel()
	return true
}

func (t *task) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
