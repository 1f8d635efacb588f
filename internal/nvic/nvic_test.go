package nvic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindRejectsDuplicatePriority(t *testing.T) {
	c := New()
	_, err := c.Bind(1, func() {})
	require.NoError(t, err)

	_, err = c.Bind(1, func() {})
	require.Error(t, err)
}

func TestPendRunsHandlerSynchronously(t *testing.T) {
	c := New()
	var ran bool
	v, err := c.Bind(1, func() { ran = true })
	require.NoError(t, err)

	c.Pend(v)
	require.True(t, ran)
}

// TestPendPreemptsHigherPriority exercises the ping-pong shape of spec
// scenario S1: a lower-priority handler posts to a higher-priority
// vector mid-dispatch, which must run to completion before the lower
// handler's Pend call returns.
func TestPendPreemptsHigherPriority(t *testing.T) {
	c := New()
	var order []string

	var highVec int
	lowVec, err := c.Bind(1, func() {
		order = append(order, "low-start")
		c.Pend(highVec)
		order = append(order, "low-end")
	})
	require.NoError(t, err)

	highVec, err = c.Bind(2, func() {
		order = append(order, "high")
	})
	require.NoError(t, err)

	c.Pend(lowVec)
	require.Equal(t, []string{"low-start", "high", "low-end"}, order)
}

// TestPendSelfRependTailChainsRatherThanRecurses verifies that a handler
// re-pending its own (equal-priority) vector does not recurse inline —
// the equal-priority check in highestReady declines to preempt a vector
// of the same priority as itself — but the repend is still honored via
// tail-chaining: the outer Pend loop picks it up again once the current
// frame returns, producing exactly two calls rather than unbounded
// inline recursion or a dropped repend.
func TestPendSelfRependTailChainsRatherThanRecurses(t *testing.T) {
	c := New()
	calls := 0
	var depth int
	var maxDepth int
	var vec int
	vec, err := c.Bind(1, func() {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		calls++
		if calls == 1 {
			c.Pend(vec) // re-pending own vector while it is the running vector
		}
		depth--
	})
	require.NoError(t, err)

	c.Pend(vec)
	require.Equal(t, 2, calls, "self-repend must tail-chain, not be dropped")
	require.Equal(t, 1, maxDepth, "self-repend at equal priority must not recurse inline")
}

func TestPendOnUnboundVectorPanics(t *testing.T) {
	c := New()
	require.Panics(t, func() { c.Pend(42) })
}
