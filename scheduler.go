package flex

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Scheduler batches layout requests from dirty roots and runs them once per
// tick. Many mutations to one root within a tick produce one layout pass.
//
// A Scheduler is single-threaded: Enqueue, Flush and the scoped update
// methods must be called from the goroutine that drives it. QueueUpdate is
// the only method safe to call from other goroutines.
type Scheduler struct {
	queue   []Root
	queued  map[Root]struct{}
	working []Root
	scoped  map[Root]struct{}

	onTick []func(dt time.Duration)
	tasks  chan func()

	logger         *log.Logger
	frameDuration  time.Duration
	taskQueueSize  int
	lastFlushCount int
}

// NewScheduler creates a scheduler. Defaults: 60 fps and a 256-entry
// update queue.
func NewScheduler(opts ...SchedulerOption) (*Scheduler, error) {
	s := &Scheduler{
		queued:        make(map[Root]struct{}),
		scoped:        make(map[Root]struct{}),
		frameDuration: time.Second / 60,
		taskQueueSize: 256,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.tasks = make(chan func(), s.taskQueueSize)
	return s, nil
}

// Enqueue requests a layout of r on the next Flush. Duplicate requests are
// ignored and first-request order is kept. Roots under a scoped update are
// not queued.
func (s *Scheduler) Enqueue(r Root) {
	if r == nil {
		return
	}
	if _, ok := s.scoped[r]; ok {
		return
	}
	if _, ok := s.queued[r]; ok {
		return
	}
	s.queued[r] = struct{}{}
	s.queue = append(s.queue, r)
}

// Pending returns the number of queued roots.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// IsQueued reports whether r is waiting for the next Flush.
func (s *Scheduler) IsQueued(r Root) bool {
	_, ok := s.queued[r]
	return ok
}

// Flush lays out every queued root in order and returns how many were laid
// out. Roots that left their host since being queued are skipped. Roots
// dirtied during the flush are queued for the next one. Scoped updates on
// roots that left their host are released.
func (s *Scheduler) Flush() int {
	for r := range s.scoped {
		if !r.Attached() {
			s.logger.Debug("flex: releasing scope of detached root", "id", r.ID())
			delete(s.scoped, r)
		}
	}
	if len(s.queue) == 0 {
		return 0
	}

	s.working = append(s.working[:0], s.queue...)
	clear(s.queue)
	s.queue = s.queue[:0]
	clear(s.queued)
	defer func() {
		clear(s.working)
		s.working = s.working[:0]
	}()

	n := 0
	for _, r := range s.working {
		if !r.Attached() {
			s.logger.Debug("flex: skipping detached root", "id", r.ID())
			continue
		}
		s.layout(r)
		n++
	}
	s.lastFlushCount = n
	s.logger.Debug("flex: flush", "roots", n, "skipped", len(s.working)-n)
	return n
}

// LayoutImmediate lays out r now and drops any queued request for it.
func (s *Scheduler) LayoutImmediate(r Root) {
	if _, ok := s.queued[r]; ok {
		delete(s.queued, r)
		for i, q := range s.queue {
			if q == r {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				break
			}
		}
	}
	s.layout(r)
}

func (s *Scheduler) layout(r Root) {
	start := time.Now()
	r.PerformLayout()
	s.logger.Debug("flex: layout", "id", r.ID(), "duration", time.Since(start))
}

// ScopedUpdate suspends automatic queueing of one root while many changes
// are applied to it. End lays the root out once.
type ScopedUpdate struct {
	s    *Scheduler
	root Root
	done bool
}

// BeginScopedUpdate starts a scoped update on an absolute root.
func (s *Scheduler) BeginScopedUpdate(root Root) (*ScopedUpdate, error) {
	if root == nil || !root.IsAbsolute() {
		return nil, ErrNotAbsolute
	}
	if _, ok := s.scoped[root]; ok {
		return nil, fmt.Errorf("root %d: %w", root.ID(), ErrScopedUpdateActive)
	}
	s.scoped[root] = struct{}{}
	return &ScopedUpdate{s: s, root: root}, nil
}

// End releases the root and lays it out immediately unless it left its
// host. Calling End more than once has no effect.
func (u *ScopedUpdate) End() {
	if u == nil || u.done {
		return
	}
	u.done = true
	delete(u.s.scoped, u.root)
	if !u.root.Attached() {
		return
	}
	u.s.LayoutImmediate(u.root)
}

// Scoped runs fn inside a scoped update on root.
func (s *Scheduler) Scoped(root Root, fn func()) error {
	u, err := s.BeginScopedUpdate(root)
	if err != nil {
		return err
	}
	defer u.End()
	fn()
	return nil
}

// OnTick registers fn to run every tick before the flush. Tick hooks are
// where animations and other per-frame mutations belong.
func (s *Scheduler) OnTick(fn func(dt time.Duration)) {
	s.onTick = append(s.onTick, fn)
}

// QueueUpdate enqueues a function to run on the scheduler's goroutine at
// the start of the next tick. Safe to call from any goroutine. Updates are
// dropped with a warning when the queue is full.
func (s *Scheduler) QueueUpdate(fn func()) {
	select {
	case s.tasks <- fn:
	default:
		s.logger.Warn("flex: update queue full, dropping update", "capacity", cap(s.tasks))
	}
}

// Tick runs one frame: queued updates, tick hooks, then the flush. Hosts
// with their own loop call Tick instead of Run.
func (s *Scheduler) Tick(dt time.Duration) int {
drain:
	for {
		select {
		case fn := <-s.tasks:
			fn()
		default:
			break drain
		}
	}
	for _, fn := range s.onTick {
		fn(dt)
	}
	return s.Flush()
}

// Run drives Tick at the configured frame rate until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	last := time.Now()
	for {
		frameStart := time.Now()
		s.Tick(frameStart.Sub(last))
		last = frameStart

		// Sleep for the remaining frame time to keep a steady rate.
		elapsed := time.Since(frameStart)
		wait := max(s.frameDuration-elapsed, 0)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil
		}
	}
}

// FrameDuration returns the target frame duration used by Run.
func (s *Scheduler) FrameDuration() time.Duration {
	return s.frameDuration
}
