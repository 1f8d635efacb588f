package sst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSignalRejectsReservedRange(t *testing.T) {
	tt := []struct {
		name      string
		sig       Signal
		wantPanic bool
	}{
		{name: "SigTimeout reserved", sig: SigTimeout, wantPanic: true},
		{name: "value 3 reserved", sig: 3, wantPanic: true},
		{name: "SigUser is the first allowed value", sig: SigUser, wantPanic: false},
		{name: "value above SigUser allowed", sig: 100, wantPanic: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantPanic {
				require.Panics(t, func() { NewSignal(tc.sig) })
				return
			}
			require.NotPanics(t, func() { NewSignal(tc.sig) })
		})
	}
}

func TestSignalOf(t *testing.T) {
	e := &workEvt{Event: Event{Sig: SigUser + 1}, n: 7}
	require.Equal(t, SigUser+1, SignalOf(e))
}
