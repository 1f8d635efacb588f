// Package hostport implements sst.Port on top of an in-process simulated
// interrupt controller, suitable for unit tests, scenario tests, and
// running the framework on a desktop/CI host instead of real firmware.
// It is the Go analogue of a QEMU or native "hosted" target board support
// package: same contract as the bare-metal Port, different backing
// hardware, explicitly sanctioned by spec.md §9 for property and
// scenario testing.
package hostport

import (
	"errors"
	"sync/atomic"

	sst "github.com/HachCompany-Common/Super-Simple-Tasker"
	"github.com/HachCompany-Common/Super-Simple-Tasker/internal/nvic"
)

// Port is a deterministic sst.Port backed by an internal/nvic.Controller.
// The zero value is not usable; construct with New.
type Port struct {
	ctrl    *nvic.Controller
	resetAt atomic.Int64 // count of Reset calls, for test assertions
}

// New returns a ready-to-use, idle Port.
func New() *Port {
	return &Port{ctrl: nvic.New()}
}

// CriticalEnter implements sst.Port.
func (p *Port) CriticalEnter() { p.ctrl.CriticalEnter() }

// CriticalExit implements sst.Port.
func (p *Port) CriticalExit() { p.ctrl.CriticalExit() }

// Bind implements sst.Port. It translates the controller's own duplicate-
// priority sentinel into sst.ErrDuplicatePriority, the error the Port
// contract documents, so callers can check it with errors.Is without
// importing this package's internal/nvic dependency.
func (p *Port) Bind(priority uint8, activate func()) (int, error) {
	vector, err := p.ctrl.Bind(priority, activate)
	if errors.Is(err, nvic.ErrDuplicatePriority) {
		return vector, sst.ErrDuplicatePriority
	}
	return vector, err
}

// Pend implements sst.Port.
func (p *Port) Pend(vector int) { p.ctrl.Pend(vector) }

// Reset implements sst.Port. A hosted target has no hardware to reset,
// so this just counts the call; Resets reports how many times it has
// fired, letting tests assert a fatal contract violation actually
// reached the Port boundary.
func (p *Port) Reset() { p.resetAt.Add(1) }

// Resets returns how many times Reset has been called.
func (p *Port) Resets() int64 { return p.resetAt.Load() }
