package matprop

import (
	"github.com/google/uuid"
)

// Task is a unit of per-frame work. Advance is called once per frame with the
// frame's delta time in seconds and reports whether the task has finished.
type Task interface {
	Advance(dt float32) bool
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(dt float32) bool

func (f TaskFunc) Advance(dt float32) bool { return f(dt) }

type TaskId string

type SchedulerOptions struct {
	Logger Logger
}

type scheduledTask struct {
	id      TaskId
	task    Task
	stopped bool
}

// Scheduler steps cooperative tasks from the host's update loop. It is not
// safe for concurrent use; call it from the same goroutine that drives frames.
type Scheduler struct {
	logger  Logger
	tasks   []*scheduledTask
	pending []*scheduledTask
	index   map[TaskId]*scheduledTask
	busy    bool
}

func NewScheduler(opts SchedulerOptions) *Scheduler {
	logger := opts.Logger
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Scheduler{
		logger: logger,
		index:  make(map[TaskId]*scheduledTask),
	}
}

func makeTaskId() TaskId {
	return TaskId(uuid.NewString())
}

// Start queues task. It receives its first Advance on the next Step, even when
// started from inside a running task.
func (s *Scheduler) Start(task Task) TaskId {
	if task == nil {
		panic("matprop: cannot schedule a nil task")
	}
	st := &scheduledTask{id: makeTaskId(), task: task}
	s.index[st.id] = st
	if s.busy {
		s.pending = append(s.pending, st)
	} else {
		s.tasks = append(s.tasks, st)
	}
	s.logger.Debugf("task %s started (%T)", st.id, task)
	return st.id
}

// Stop abandons a task. It is not advanced again, so whatever completion step
// it had never runs. Returns false if the id is unknown or already finished.
func (s *Scheduler) Stop(id TaskId) bool {
	st, ok := s.index[id]
	if !ok {
		s.logger.Warnf("stop: task %s is not running", id)
		return false
	}
	st.stopped = true
	delete(s.index, id)
	s.logger.Debugf("task %s stopped", id)
	return true
}

// StopAll abandons every running task and returns how many there were.
func (s *Scheduler) StopAll() int {
	n := 0
	for id := range s.index {
		if s.Stop(id) {
			n++
		}
	}
	if n > 0 {
		s.logger.Infof("abandoned %d running tasks", n)
	}
	return n
}

func (s *Scheduler) Running(id TaskId) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Scheduler) Len() int {
	return len(s.index)
}

// Step advances every live task once, in start order, and drops the ones that
// finished, were stopped or panicked. A panicking task is logged and removed;
// the other tasks still run. Step must not be called from inside a task.
func (s *Scheduler) Step(dt float32) {
	if s.busy {
		panic("matprop: Scheduler.Step called from inside a running task")
	}
	s.busy = true
	defer func() { s.busy = false }()

	live := make([]*scheduledTask, 0, len(s.tasks)+len(s.pending))
	for _, st := range s.tasks {
		if st.stopped {
			continue
		}
		if s.advance(st, dt) {
			delete(s.index, st.id)
			continue
		}
		if st.stopped {
			continue
		}
		live = append(live, st)
	}

	for _, st := range s.pending {
		if !st.stopped {
			live = append(live, st)
		}
	}
	s.tasks = live
	s.pending = nil
}

// advance runs one step of st and reports whether it should be dropped.
func (s *Scheduler) advance(st *scheduledTask, dt float32) (drop bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("task %s panicked: %v", st.id, r)
			drop = true
		}
	}()
	if st.task.Advance(dt) {
		s.logger.Debugf("task %s finished", st.id)
		return true
	}
	return false
}

// Update steps all tasks with the clock's last frame delta.
func (s *Scheduler) Update(clock *FrameClock) {
	s.Step(clock.DeltaSeconds())
}
