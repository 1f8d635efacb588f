package sst

// TimeEvt is a software timer that posts to a target Task when it
// expires, optionally rearming itself periodically (spec.md §4.3). It
// embeds Event so it satisfies EventRef and can be posted like any other
// event — the target's dispatch sees exactly the Sig it was constructed
// with by NewTimeEvt.
type TimeEvt struct {
	Event

	target *Task
	ctr    uint32
	period uint32
	armed  bool

	owner *Kernel
	next  *TimeEvt // singly-linked list, owner.timeEvts head
}

// NewTimeEvt constructs a one-shot/periodic timer that posts sig to
// target when it fires. sig must not be in the reserved 0..=3 range
// except SigTimeout itself, which callers may reuse deliberately; any
// other reserved value returns ErrReservedSignal rather than panicking,
// since a timer is typically constructed from caller-supplied or
// dynamically assembled configuration rather than at init() time.
func NewTimeEvt(sig Signal, target *Task) (*TimeEvt, error) {
	if reserved(sig) && sig != SigTimeout {
		return nil, ErrReservedSignal
	}
	return &TimeEvt{Event: Event{Sig: sig}, target: target}, nil
}

// Arm (re)starts t on k's tick list: it fires after ctr ticks, and if
// period is nonzero, refires every period ticks thereafter; period == 0
// means one-shot (spec §4.3). Arming an already-armed timer rewrites its
// countdown in place rather than double-linking it.
func (t *TimeEvt) Arm(k *Kernel, ctr, period uint32) error {
	if t.target == nil {
		return ErrNoTimerTarget
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	t.ctr = ctr
	t.period = period
	if !t.armed {
		t.armed = true
		t.owner = k
		t.next = k.timeEvts
		k.timeEvts = t
	}
	return nil
}

// Disarm removes t from its Kernel's tick list. Returns true if t was
// armed (and is now disarmed), false if it was already disarmed — Disarm
// is idempotent, matching spec §4.3's edge case "Disarm on an
// already-disarmed timer: no-op, not an error."
func (t *TimeEvt) Disarm() bool {
	if !t.armed || t.owner == nil {
		return false
	}

	k := t.owner
	k.mu.Lock()
	defer k.mu.Unlock()

	if !t.armed {
		return false
	}
	t.armed = false

	if k.timeEvts == t {
		k.timeEvts = t.next
		t.next = nil
		return true
	}
	for cur := k.timeEvts; cur != nil; cur = cur.next {
		if cur.next == t {
			cur.next = t.next
			t.next = nil
			return true
		}
	}
	return true
}

// Tick advances every armed time-event on k by one unit, posting to each
// target whose countdown reaches zero and either rearming it (periodic)
// or disarming it (one-shot), per spec §4.3. Tick is the only place the
// tick-list is walked; the walk and its ctr/rearm bookkeeping happen
// under k's own lock, and the resulting Task.Post calls (each of which
// independently enters the target's Port critical section) happen only
// after that lock is released, so Tick never holds two locks across a
// call into Task.Post. List order (and therefore per-tick post order)
// matches the original BSP's SysTick_Handler calling SST_TimeEvt_tick
// from inside an ISR (see
// original_source/examples/blinky_button/bsp_nucleo-h743zi.c).
func (k *Kernel) Tick() {
	k.mu.Lock()
	var fire []*TimeEvt
	for cur := k.timeEvts; cur != nil; cur = cur.next {
		if cur.ctr == 0 {
			continue
		}
		cur.ctr--
		if cur.ctr == 0 {
			fire = append(fire, cur)
		}
	}
	for _, t := range fire {
		if t.period > 0 {
			t.ctr = t.period
		} else {
			t.armed = false
			k.unlinkLocked(t)
		}
	}
	k.mu.Unlock()

	for _, t := range fire {
		_ = t.target.Post(t)
	}
}

// unlinkLocked removes t from k.timeEvts. k.mu must already be held.
func (k *Kernel) unlinkLocked(t *TimeEvt) {
	if k.timeEvts == t {
		k.timeEvts = t.next
		t.next = nil
		return
	}
	for cur := k.timeEvts; cur != nil; cur = cur.next {
		if cur.next == t {
			cur.next = t.next
			t.next = nil
			return
		}
	}
}
