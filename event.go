package sst

// Event is the common header every posted event carries. Domain events
// extend it by embedding Event as their first field:
//
//	type ButtonWorkEvt struct {
//	    sst.Event
//	    Toggles uint16
//	}
//
// and are recovered on the receiving side with a type assertion keyed on
// Sig, e.g.:
//
//	switch e.Sig {
//	case sigButtonPressed:
//	    we := evt.(*ButtonWorkEvt)
//	    ...
//	}
//
// Event references are never copied or freed by the framework: a posted
// *Event must remain valid until every recipient Task has finished
// dispatching it. Package-level (program-lifetime) event values trivially
// satisfy this; the framework never allocates events on an AO's behalf
// (see Non-goals in spec.md §1).
type Event struct {
	Sig Signal
}

// EventRef is any pointer-to-struct whose first field is an embedded
// Event; it is the reference type the Queue and Task APIs move around.
// Concrete event types satisfy it automatically as long as they embed
// Event, since Go promotes the sig() method below.
type EventRef interface {
	sig() Signal
}

// sig implements EventRef for the base Event itself — bare Event values
// (no payload) are valid events, e.g. the framework's own timeout event.
func (e *Event) sig() Signal { return e.Sig }

// SignalOf returns the Signal carried by any EventRef, without requiring
// the caller to know the concrete event type — the switch key dispatch_fn
// implementations branch on.
func SignalOf(e EventRef) Signal { return e.sig() }

// newEvent constructs a bare signal-only event, bypassing NewSignal's
// reserved-range check. Nothing in the package calls it; NewTimeEvt
// fills in its embedded Event directly.
func newEvent(sig Signal) *Event {
	return &Event{Sig: sig}
}

// NewSignal validates and returns an application signal. It panics if sig
// falls in the reserved 0..=3 range, catching the mistake at event-type
// registration time (init()) rather than at the first Post call deep in a
// dispatch path — see spec.md §8 property 6.
func NewSignal(sig Signal) Signal {
	if reserved(sig) {
		panic(&AssertError{Module: "sst", Location: int(sig), Reason: "signal in reserved range 0..=3"})
	}
	return sig
}
