// Package sst implements the Super-Simple Tasker: a preemptive,
// priority-based, run-to-completion kernel for event-driven embedded
// applications on interrupt-controller-equipped microcontrollers.
//
// # Architecture
//
// Each active object ([Task]) owns a private, fixed-capacity FIFO event
// queue and processes posted events one at a time, never blocking within
// a dispatch.
// Scheduling is delegated entirely to a [Port]: each Task's activation is
// driven by a dedicated interrupt vector whose hardware priority encodes
// the Task's scheduling priority. Preemption of a lower-priority Task by a
// higher-priority Task is automatic and lock-free, handled by the Port
// exactly the way an NVIC (or equivalent interrupt controller) would.
//
// A [Kernel] ties a set of started Tasks to a [Port], owns the time-event
// list, and runs the application's idle loop.
//
// # Platform boundary
//
// This package never touches hardware directly. [Port] is the whole
// contract a board-support package must satisfy: critical-section
// enter/exit, binding a priority to an activation vector, and pending that
// vector. The bundled hosted implementation (package `hostport`) stands in
// for real interrupt-controller hardware in tests and on development
// machines, per spec §9's "hosted test harness" note.
//
// # Thread safety
//
// [Task.Post] and [TimeEvt.Arm]/[TimeEvt.Disarm] are safe to call from any
// goroutine: Task.Post routes through the bound [Port]'s critical section,
// and the time-event calls through the owning [Kernel]'s own lock.
// [Task.Start] and [Kernel.Run] are not meant to be called concurrently
// with themselves.
package sst
