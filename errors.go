package sst

import "fmt"

// Sentinel errors returned by the non-fatal edges of the API — callers
// can check these with errors.Is. They are returned directly, without
// running the AssertFunc, except for ErrQueueOverflow: a queue overflow
// goes through the owning Kernel's AssertFunc, which does not let
// Task.Post return (see Task.Post and AssertError below).
var (
	// ErrQueueOverflow names the queue-overflow failure of Task.Post. The
	// overflow is a fatal assertion: it is reported through the owning
	// Kernel's AssertFunc, and Task.Post panics instead of returning it.
	ErrQueueOverflow = fmt.Errorf("sst: queue overflow")

	// ErrDuplicatePriority is returned by Task.Start when another Task
	// already owns the requested priority. Spec §3: "Priorities across
	// all started AOs are pairwise distinct."
	ErrDuplicatePriority = fmt.Errorf("sst: priority already in use")

	// ErrInvalidQueue is returned by Task.Start when the supplied queue
	// buffer is unusable (nil or zero length).
	ErrInvalidQueue = fmt.Errorf("sst: queue buffer must have capacity >= 1")

	// ErrNotStarted is returned by Task.Post when called against a Task
	// that has not completed Task.Start yet.
	ErrNotStarted = fmt.Errorf("sst: task not started")

	// ErrReservedSignal is returned by NewTimeEvt when asked to mint a
	// timer with a signal in the reserved 0..=3 range other than
	// SigTimeout itself — callers constructing event types dynamically
	// (rather than registering them at init() time through NewSignal,
	// which panics) get a recoverable error instead.
	ErrReservedSignal = fmt.Errorf("sst: signal in reserved range 0..=3")

	// ErrNoTimerTarget is returned by TimeEvt.Arm when the TimeEvt was
	// constructed with a nil target Task — a distinct precondition from
	// ErrInvalidQueue's "Task.Start queue buffer" failure, so the two are
	// never confused under errors.Is.
	ErrNoTimerTarget = fmt.Errorf("sst: time event has no target task")
)

// AssertError is the payload of a contract-violation panic raised by the
// default AssertFunc (see logging.go). Module/Location mirror the
// original design-by-contract macros (Q_ASSERT_ID's module name + caller-
// supplied location id) from original_source/src_cpp/qassert.h, adapted
// to carry a free-form Reason instead of requiring every call site to
// invent a numeric id.
type AssertError struct {
	Module   string
	Location int
	Reason   string
}

func (e *AssertError) Error() string {
	return fmt.Sprintf("sst: contract violation in %s (loc %d): %s", e.Module, e.Location, e.Reason)
}

// AssertFunc is the BSP-supplied contract-violation handler (the on_assert
// symbol from spec.md §6). It is required not to return under normal
// operation — the default implementation panics after logging. An
// application-supplied AssertFunc that chooses to return anyway causes the
// framework to panic on its behalf immediately afterward, since nothing in
// the core can safely continue past a broken invariant.
type AssertFunc func(module string, location int, reason string)
