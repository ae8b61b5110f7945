// AngelaMos | 2026
// scheduler.go

package schedule

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

var ErrClosed = errors.New("scheduler closed")

type Func func(ctx context.Context)

const (
	statePending int32 = iota
	stateFired
	stateCancelled
)

// Task is one delayed callback. It fires at most once.
type Task struct {
	name  string
	timer *time.Timer
	state atomic.Int32
	owner *Scheduler
}

func (t *Task) Name() string {
	return t.name
}

// Cancel stops the task if it has not fired yet and reports whether it did.
func (t *Task) Cancel() bool {
	if !t.state.CompareAndSwap(statePending, stateCancelled) {
		return false
	}
	t.timer.Stop()
	t.owner.release(t)
	return true
}

// Scheduler owns delayed callbacks so they outlive the request that created
// them and stop together on Close.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	tasks  map[*Task]struct{}
	closed bool

	wg sync.WaitGroup
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[*Task]struct{}),
	}
}

func (s *Scheduler) After(delay time.Duration, name string, fn Func) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	t := &Task{
		name:  name,
		owner: s,
	}
	s.tasks[t] = struct{}{}
	s.wg.Add(1)

	t.timer = time.AfterFunc(delay, func() {
		s.fire(t, fn)
	})

	return t, nil
}

// Pending is the number of tasks that are waiting or still running.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close cancels every pending task and waits for running callbacks, which
// keep a live context until they return. The context is cancelled last.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true

	pending := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		pending = append(pending, t)
	}
	s.mu.Unlock()

	for _, t := range pending {
		t.Cancel()
	}

	s.wg.Wait()
	s.cancel()
}

func (s *Scheduler) fire(t *Task, fn Func) {
	if !t.state.CompareAndSwap(statePending, stateFired) {
		return
	}
	defer s.release(t)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("scheduled task panicked",
				"task", t.name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	fn(s.ctx)
}

func (s *Scheduler) release(t *Task) {
	s.mu.Lock()
	delete(s.tasks, t)
	s.mu.Unlock()
	s.wg.Done()
}
