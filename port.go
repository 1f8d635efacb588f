package sst

// Port is the entire board-support contract the core consumes, per
// spec.md §6's "To the port (BSP contract)" table. A real target
// implements it against the MCU's NVIC (or equivalent); the bundled
// `hostport` package implements it against a deterministic, mutex-guarded
// simulation suitable for `go test` and for the scenario tests in
// spec.md §8.
//
// Out of scope, deliberately: GPIO, clocks, SysTick configuration, button
// debouncing, and any other BSP concern the spec carves out in §1 — none
// of that belongs behind this interface.
type Port interface {
	// CriticalEnter and CriticalExit bracket a critical section: "globally
	// mask interrupts" by default (spec §5). Calls never nest from this
	// package's own code; an application-supplied Port may implement
	// nesting internally if it wishes, but the core never relies on it.
	CriticalEnter()
	CriticalExit()

	// Bind assigns priority an activation vector and installs activate as
	// its handler, returning the vector id Pend must later be called
	// with. It returns ErrDuplicatePriority if priority is already bound
	// — priorities are pairwise distinct across all started Tasks
	// (spec §3).
	Bind(priority uint8, activate func()) (vector int, err error)

	// Pend marks vector's interrupt pending and, if no equal-or-higher
	// priority vector is currently executing on this logical CPU, runs
	// it (and any vector that becomes ready in turn) to completion before
	// returning — the hardware-tail-chain behavior spec.md §4.2 and §5
	// describe. Pend must be safe to call from any goroutine and from
	// within a running activate callback (re-entrant posting).
	Pend(vector int)

	// Reset is invoked by Kernel.Run's top-level recover, after a fatal
	// contract violation (AssertFunc returned, or panicked past the
	// default handler). On real firmware this is a hard MCU reset and
	// never returns; on a hosted Port it returns, Run then returns the
	// violation, and the Port only needs to record that a reset occurred
	// so tests can assert on it.
	Reset()
}
