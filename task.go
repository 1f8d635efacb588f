package sst

import "fmt"

// InitFunc is a Task's one-time initialization hook, invoked synchronously
// by Task.Start before it returns. initial is whatever event Task.Start
// was given (nil is valid if the Task doesn't need one).
type InitFunc func(state any, initial EventRef)

// DispatchFunc is a Task's run-to-completion event handler, invoked once
// per activate() for exactly one event. It must never block.
type DispatchFunc func(state any, evt EventRef)

// Task is an active object: it owns a private FIFO event queue, a
// priority, an initialization hook, and a dispatch hook, and runs each
// event to completion (spec.md §3/§4.2).
type Task struct {
	name     string
	initFn   InitFunc
	dispatch DispatchFunc
	state    any

	owner    *Kernel
	port     Port
	priority uint8
	vector   int
	started  bool

	q queue
}

// NewTask constructs an AO with the given init/dispatch hooks and no side
// effects on kernel state, matching SST_Task_ctor's contract in
// original_source/examples/blinky_button/button2b.c. state is an opaque
// per-AO value threaded back into both hooks (the "per-port-state"
// field spec.md §3 assigns to Task).
func NewTask(name string, initFn InitFunc, dispatch DispatchFunc, state any) *Task {
	return &Task{name: name, initFn: initFn, dispatch: dispatch, state: state}
}

// Start binds t to priority on k's Port, installs queue as its backing
// event-queue storage, and invokes InitFunc(initial) synchronously before
// returning. After Start returns, t is eligible to receive events.
//
// Preconditions enforced here, per spec.md §4.2:
//   - priority must not already be in use by another started Task on k
//     — forwarded verbatim from Port.Bind, which returns
//     ErrDuplicatePriority for the bundled hostport.Port.
//   - queue must describe a usable buffer (len >= 1).
func (t *Task) Start(k *Kernel, priority uint8, queue []EventRef, initial EventRef) error {
	if len(queue) == 0 {
		return ErrInvalidQueue
	}
	if t.started {
		return fmt.Errorf("sst: task %q already started", t.name)
	}

	t.owner = k
	t.port = k.port
	t.priority = priority
	t.q = newQueue(queue)

	vector, err := t.port.Bind(priority, t.activate)
	if err != nil {
		return err
	}
	t.vector = vector
	t.started = true

	k.register(t)

	if t.initFn != nil {
		t.initFn(t.state, initial)
	}
	return nil
}

// Post enqueues evt for t and pends t's bound interrupt vector. Safe to
// call from any goroutine ("any context, thread or ISR" per spec.md §4.2).
// A full queue is a fatal contract violation: the queue overflow assertion
// in spec.md §7 fires through t's owning Kernel's AssertFunc, and Post
// does not return — it panics, either from the AssertFunc itself or from
// the Kernel when the AssertFunc returns (see Kernel.assert).
func (t *Task) Post(evt EventRef) error {
	if !t.started {
		return ErrNotStarted
	}

	t.port.CriticalEnter()
	ok := t.q.push(evt)
	t.port.CriticalExit()

	if !ok {
		t.assertOverflow()
		return ErrQueueOverflow
	}

	t.port.Pend(t.vector)
	return nil
}

// activate is invoked only from t's bound interrupt vector (per spec.md
// §4.2, "[ISR only]"). It drains exactly one event, dispatches it, and
// re-pends its own vector iff more events remain — bounding interrupt
// latency and letting higher-priority Tasks preempt between events, per
// the spec's resolution of the drain-one-vs-drain-all open question
// (spec.md §9).
func (t *Task) activate() {
	t.port.CriticalEnter()
	evt, ok := t.q.pop()
	t.port.CriticalExit()

	if !ok {
		// Hardware pended us with nothing queued: desync between the
		// interrupt controller and the queue it's supposed to mirror.
		t.assertf("task.activate", 0, "pop from empty queue")
		return
	}

	t.dispatch(t.state, evt)

	t.port.CriticalEnter()
	more := !t.q.empty()
	t.port.CriticalExit()

	if more {
		t.port.Pend(t.vector)
	}
}

func (t *Task) assertOverflow() {
	t.assertf("task.Post", int(t.priority), "queue overflow")
}

func (t *Task) assertf(loc string, id int, reason string) {
	if t.owner != nil {
		t.owner.assert(loc, id, reason)
		return
	}
	defaultAssertFunc(loc, id, reason)
}
