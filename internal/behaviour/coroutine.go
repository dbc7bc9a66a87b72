package behaviour

import "time"

// Task is a cooperative unit of work resumed once per frame.
// Step returns true when the task has finished.
type Task interface {
	Step(t Time) bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func(t Time) bool

func (f TaskFunc) Step(t Time) bool {
	return f(t)
}

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

type coroutine struct {
	handle Handle
	owner  *GameObject
	task   Task
}

// Coroutines schedules tasks and steps them after the per-frame component updates.
// Stopping a task removes it before its next step; there is no other interruption.
type Coroutines struct {
	next    Handle
	now     Time
	running []*coroutine
}

func NewCoroutines() *Coroutines {
	return &Coroutines{}
}

// SetTime publishes the current frame clock. Hosts call it before dispatching
// events so tasks started from an event see the frame they were started in.
func (c *Coroutines) SetTime(t Time) {
	c.now = t
}

// Start schedules task on behalf of owner and runs its first step right away
// at the current clock. A task that finishes on that step is never queued,
// but its Handle is still issued.
func (c *Coroutines) Start(owner *GameObject, task Task) Handle {
	if task == nil {
		return 0
	}
	c.next++
	co := &coroutine{handle: c.next, owner: owner, task: task}
	c.running = append(c.running, co)
	if owner == nil || owner.Active {
		if task.Step(c.now) {
			c.Stop(co.handle)
		}
	}
	return co.handle
}

func (c *Coroutines) Stop(h Handle) {
	if h == 0 {
		return
	}
	for i, co := range c.running {
		if co.handle == h {
			c.running = append(c.running[:i], c.running[i+1:]...)
			return
		}
	}
}

// StopAll cancels every task owned by owner.
func (c *Coroutines) StopAll(owner *GameObject) {
	kept := c.running[:0]
	for _, co := range c.running {
		if co.owner != owner {
			kept = append(kept, co)
		}
	}
	for i := len(kept); i < len(c.running); i++ {
		c.running[i] = nil
	}
	c.running = kept
}

func (c *Coroutines) Running(h Handle) bool {
	if h == 0 {
		return false
	}
	for _, co := range c.running {
		if co.handle == h {
			return true
		}
	}
	return false
}

func (c *Coroutines) Len() int {
	return len(c.running)
}

// Tick steps every queued task once. Tasks started from inside a step are not
// stepped again in the same Tick; a task stopped by an earlier task in the same
// Tick is not stepped.
func (c *Coroutines) Tick(t Time) {
	c.now = t
	batch := append([]*coroutine(nil), c.running...)
	for _, co := range batch {
		if !c.Running(co.handle) {
			continue
		}
		if co.owner != nil && !co.owner.Active {
			continue
		}
		if co.task.Step(t) {
			c.Stop(co.handle)
		}
	}
}

// Clear drops every scheduled task.
func (c *Coroutines) Clear() {
	c.running = nil
}

// waitTask finishes once d has elapsed since its first step.
type waitTask struct {
	d        time.Duration
	unscaled bool
	started  bool
	start    time.Duration
}

// Wait suspends for d of scaled time.
func Wait(d time.Duration) Task {
	return &waitTask{d: d}
}

// WaitUnscaled suspends for d of real time, ignoring the time scale.
func WaitUnscaled(d time.Duration) Task {
	return &waitTask{d: d, unscaled: true}
}

func (w *waitTask) Step(t Time) bool {
	now := t.Now
	if w.unscaled {
		now = t.UnscaledNow
	}
	if !w.started {
		w.started = true
		w.start = now
	}
	return now-w.start >= w.d
}

// Do runs fn once and finishes in the same step.
func Do(fn func()) Task {
	return TaskFunc(func(Time) bool {
		fn()
		return true
	})
}

type sequence struct {
	tasks []Task
	index int
}

// Sequence runs tasks one after another. When a task finishes, the next one
// gets its first step within the same frame.
func Sequence(tasks ...Task) Task {
	return &sequence{tasks: tasks}
}

func (s *sequence) Step(t Time) bool {
	for s.index < len(s.tasks) {
		if !s.tasks[s.index].Step(t) {
			return false
		}
		s.index++
	}
	return true
}
