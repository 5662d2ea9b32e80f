package loop

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats is a snapshot of how often and how long systems have run.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	// Actions counts every action queued, applied or not.
	Actions int64
	Systems []SystemStats
}

// SystemStats describes one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	Actions        int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type entry struct {
	system System
	stats  SystemStats
}

func (e *entry) run(frame *Frame) {
	queued := frame.Commands.Len()
	start := time.Now()
	e.system.Execute(frame)
	d := time.Since(start)

	s := &e.stats
	if s.ExecutionCount == 0 || d < s.MinDuration {
		s.MinDuration = d
	}
	s.MaxDuration = max(s.MaxDuration, d)
	s.ExecutionCount++
	s.LastDuration = d
	s.TotalDuration += d
	s.Actions += int64(frame.Commands.Len() - queued)
}

// Scheduler runs registered systems in order against one engine.
type Scheduler struct {
	engine *tetris.Engine

	mu      sync.Mutex
	entries []*entry
	frames  int64
	actions int64
}

func NewScheduler(engine *tetris.Engine) *Scheduler {
	return &Scheduler{engine: engine}
}

// Engine returns the engine the scheduler drives.
func (s *Scheduler) Engine() *tetris.Engine {
	return s.engine
}

// Register appends a system to the frame order. Its stats are reported under
// the system's type name.
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("loop: cannot register a nil system")
	}

	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, &entry{
		system: system,
		stats:  SystemStats{Name: t.Name()},
	})
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the queued commands. Stats must not be called from a
// system's Execute; deferred functions may call it.
func (s *Scheduler) Once(dt float64) tetris.Outcome {
	frame := s.execute(dt)
	return frame.Commands.Flush(s.engine)
}

func (s *Scheduler) execute(dt float64) *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := newFrame(dt, s.engine)
	for _, e := range s.entries {
		e.run(frame)
	}
	s.frames++
	s.actions += int64(frame.Commands.Len())
	return frame
}

// Run executes a frame on every tick of interval, passing the measured time
// since the previous frame, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (s *Scheduler) Stats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &SchedulerStats{
		SystemCount: len(s.entries),
		Frames:      s.frames,
		Actions:     s.actions,
		Systems:     make([]SystemStats, 0, len(s.entries)),
	}
	for _, e := range s.entries {
		st := e.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		out.TotalExecutions += st.ExecutionCount
		out.Systems = append(out.Systems, st)
	}
	return out
}
