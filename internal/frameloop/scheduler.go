// Package frameloop drives per-frame Start/Update hooks for registered objects.
package frameloop

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Object is anything driven by the frame loop. Start runs once, on the first
// tick after registration; Update runs on every tick after that.
type Object interface {
	Start()
	Update(elapsed time.Duration)
}

// Host schedules a callback before the next repaint. Timestamps passed to the
// callback increase monotonically.
type Host interface {
	RequestFrame(func(timestamp time.Duration))
}

type entry struct {
	id      uuid.UUID
	obj     Object
	started bool
	elapsed time.Duration
	removed bool
}

type Scheduler struct {
	host    Host
	logger  *zap.Logger
	entries []*entry

	last     time.Duration
	haveLast bool

	stopWhenEmpty bool
	stopped       bool
}

type Option func(*Scheduler)

// WithStopWhenEmpty stops re-arming the host frame once a tick finds the
// registry empty. After that, Run must be called again to resume.
func WithStopWhenEmpty() Option {
	return func(s *Scheduler) {
		s.stopWhenEmpty = true
	}
}

func New(host Host, logger *zap.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		host:   host,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers obj at the end of the registry and returns its id.
func (s *Scheduler) Add(obj Object) uuid.UUID {
	e := &entry{id: uuid.New(), obj: obj}
	s.entries = append(s.entries, e)

	s.logger.Debug("object registered",
		zap.Stringer("object_id", e.id),
		zap.Int("registered", len(s.entries)),
	)
	return e.id
}

// Remove drops the registration with the given id. It reports whether the
// id was registered.
func (s *Scheduler) Remove(id uuid.UUID) bool {
	for i, e := range s.entries {
		if e.id == id {
			e.removed = true
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			s.logger.Debug("object removed", zap.Stringer("object_id", e.id))
			return true
		}
	}
	return false
}

func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Elapsed returns the last elapsed value handed to the object's Update.
func (s *Scheduler) Elapsed(id uuid.UUID) (time.Duration, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e.elapsed, true
		}
	}
	return 0, false
}

// Run arms the first frame.
func (s *Scheduler) Run() {
	s.stopped = false
	s.host.RequestFrame(s.Tick)
}

// Tick is the frame callback.
func (s *Scheduler) Tick(timestamp time.Duration) {
	if s.stopWhenEmpty && len(s.entries) == 0 {
		if !s.stopped {
			s.logger.Info("registry empty, frame loop stopped")
		}
		s.stopped = true
		return
	}

	var elapsed time.Duration
	if s.haveLast {
		elapsed = timestamp - s.last
	}

	// objects added by a hook wait for the next tick
	snapshot := append([]*entry(nil), s.entries...)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if !e.started {
			e.obj.Start()
			e.started = true
			continue
		}
		e.elapsed = elapsed
		e.obj.Update(elapsed)
	}

	s.last = timestamp
	s.haveLast = true
	s.host.RequestFrame(s.Tick)
}
