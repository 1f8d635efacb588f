package sst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type workEvt struct {
	Event
	n int
}

func TestQueuePushPop(t *testing.T) {
	tt := []struct {
		name    string
		cap     int
		pushes  int
		wantErr bool
	}{
		{name: "single slot fits one", cap: 1, pushes: 1, wantErr: false},
		{name: "single slot overflows on second push", cap: 1, pushes: 2, wantErr: true},
		{name: "four slots fit four", cap: 4, pushes: 4, wantErr: false},
		{name: "four slots overflow on fifth", cap: 4, pushes: 5, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			q := newQueue(make([]EventRef, tc.cap))
			var gotErr bool
			for i := 0; i < tc.pushes; i++ {
				if !q.push(&workEvt{Event: Event{Sig: SigUser}, n: i}) {
					gotErr = true
					break
				}
			}
			require.Equal(t, tc.wantErr, gotErr)
		})
	}
}

func TestQueueFIFOOrder(t *testing.T) {
	q := newQueue(make([]EventRef, 4))
	for i := 0; i < 3; i++ {
		require.True(t, q.push(&workEvt{Event: Event{Sig: SigUser}, n: i}))
	}

	for i := 0; i < 3; i++ {
		ref, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, i, ref.(*workEvt).n)
	}

	_, ok := q.pop()
	require.False(t, ok, "pop on empty queue must report false")
}

func TestQueueWrapsAroundCapacity(t *testing.T) {
	q := newQueue(make([]EventRef, 2))
	require.True(t, q.push(&workEvt{n: 1}))
	require.True(t, q.push(&workEvt{n: 2}))

	ref, ok := q.pop()
	require.True(t, ok)
	require.Equal(t, 1, ref.(*workEvt).n)

	require.True(t, q.push(&workEvt{n: 3}))
	require.True(t, q.full())

	ref, ok = q.pop()
	require.True(t, ok)
	require.Equal(t, 2, ref.(*workEvt).n)

	ref, ok = q.pop()
	require.True(t, ok)
	require.Equal(t, 3, ref.(*workEvt).n)

	require.True(t, q.empty())
}
