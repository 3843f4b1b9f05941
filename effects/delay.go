package effects

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/collective_go/purefn"
	"github.com/on-the-ground/collective_go/shared/helper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrDelayedPanic wraps the value recovered from a delayed call that panicked.
var ErrDelayedPanic = errors.New("panic in delayed call")

const (
	timerPending int32 = iota
	timerRunning
	timerFired
	timerStopped
)

// Timer is the handle of one delayed call.
type Timer struct {
	id    string
	span  TimeSpan
	timer atomic.Pointer[time.Timer]
	done  chan struct{}
	state atomic.Int32
	owner *Scheduler
}

func (t *Timer) ID() string {
	return t.id
}

// TimeSpan is the window from scheduling to the earliest firing time.
func (t *Timer) TimeSpan() TimeSpan {
	return t.span
}

// Done is closed once the call has returned or the timer was stopped.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

// Fired reports whether the call ran (or is running).
func (t *Timer) Fired() bool {
	s := t.state.Load()
	return s == timerRunning || s == timerFired
}

// Stop cancels the call. It reports whether the call was prevented;
// false means it already ran, is running or was stopped before.
func (t *Timer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	if tm := t.timer.Load(); tm != nil {
		tm.Stop()
	}
	t.owner.logger.Debug("delayed call stopped", zap.String("timer_id", t.id))
	t.owner.finish(t)
	return true
}

// Scheduler runs delayed calls on their own goroutines and keeps track
// of them until they finish. A panic in a delayed call is recovered,
// logged and reported by Wait.
//
// Delayed calls carry no ordering guarantee among themselves.
type Scheduler struct {
	logger  *zap.Logger
	pending sync.Map // timer id -> *Timer

	mu     sync.Mutex
	idle   *sync.Cond // signalled when active drops to 0
	active int
	panics []error
}

type SchedulerOption func(*Scheduler)

// WithLogger routes scheduler events to logger. The default discards them.
func WithLogger(logger *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{logger: zap.NewNop()}
	s.idle = sync.NewCond(&s.mu)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultScheduler is the scheduler behind the package-level Delay.
var DefaultScheduler = purefn.Once(func() *Scheduler {
	return NewScheduler()
})

// After schedules fn to run once, no earlier than wait from now, and
// returns immediately.
func (s *Scheduler) After(wait time.Duration, fn func()) *Timer {
	helper.MustFunc(fn, "delayed function")
	now := time.Now()
	t := &Timer{
		id:    uuid.New().String(),
		span:  NewTimeSpan(now, now.Add(max(wait, 0))),
		done:  make(chan struct{}),
		owner: s,
	}

	s.mu.Lock()
	s.active++
	s.mu.Unlock()
	s.pending.Store(t.id, t)
	tm := time.AfterFunc(wait, func() { s.fire(t, fn) })
	t.timer.Store(tm)
	if t.state.Load() == timerStopped {
		// stopped through Scheduler.Stop before the timer was attached
		tm.Stop()
	}

	s.logger.Debug("delayed call scheduled", zap.String("timer_id", t.id), zap.Duration("wait", wait))
	return t
}

// AfterContext is After, but the call is stopped if ctx ends first.
func (s *Scheduler) AfterContext(ctx context.Context, wait time.Duration, fn func()) *Timer {
	t := s.After(wait, fn)
	stop := context.AfterFunc(ctx, func() { t.Stop() })
	go func() {
		<-t.Done()
		stop()
	}()
	return t
}

func (s *Scheduler) fire(t *Timer, fn func()) {
	if !t.state.CompareAndSwap(timerPending, timerRunning) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: timer %s: %v", ErrDelayedPanic, t.id, r)
			s.logger.Error("panic in delayed call", zap.String("timer_id", t.id), zap.Any("panic", r))
			s.mu.Lock()
			s.panics = append(s.panics, err)
			s.mu.Unlock()
		}
		t.state.Store(timerFired)
		s.finish(t)
	}()
	fn()
}

func (s *Scheduler) finish(t *Timer) {
	s.pending.Delete(t.id)
	close(t.done)
	s.mu.Lock()
	s.active--
	if s.active == 0 {
		s.idle.Broadcast()
	}
	s.mu.Unlock()
}

// Pending returns the number of calls that have neither finished nor been stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Wait blocks until no call is pending, then returns the panics recovered
// so far, combined. Calls may be scheduled while others wait; Wait returns
// once the scheduler is idle at some instant.
func (s *Scheduler) Wait() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.active > 0 {
		s.idle.Wait()
	}
	return multierr.Combine(s.panics...)
}

// Stop cancels every pending call and returns how many were prevented.
func (s *Scheduler) Stop() int {
	stopped := 0
	s.pending.Range(func(_, v any) bool {
		if v.(*Timer).Stop() {
			stopped++
		}
		return true
	})
	return stopped
}

// Shutdown stops pending calls, waits for running ones and flushes the logger.
func (s *Scheduler) Shutdown() error {
	stopped := s.Stop()
	err := s.Wait()
	s.logger.Info("scheduler shut down", zap.Int("stopped", stopped))
	syncLogger(s.logger)
	return err
}

// Delay runs fn(args...) once on the default scheduler, no earlier than
// wait from now. The returned Timer can cancel it.
func Delay[A any](fn func(...A), wait time.Duration, args ...A) *Timer {
	return DelayOn(DefaultScheduler(), fn, wait, args...)
}

// DelayOn is Delay on an explicit scheduler.
func DelayOn[A any](s *Scheduler, fn func(...A), wait time.Duration, args ...A) *Timer {
	helper.MustFunc(fn, "delayed function")
	bound := append([]A(nil), args...)
	return s.After(wait, func() { fn(bound...) })
}
