package gate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riftdraft/internal/engine"
)

func TestHandshakeTransitions(t *testing.T) {
	g := New()
	require.Equal(t, StatusIdle, g.Status())

	require.True(t, g.MarkReady(engine.SideBlue))
	require.Equal(t, StatusOneReady, g.Status())

	// Same side again changes nothing.
	require.False(t, g.MarkReady(engine.SideBlue))
	require.Equal(t, StatusOneReady, g.Status())

	require.True(t, g.MarkReady(engine.SideRed))
	require.Equal(t, StatusBothReady, g.Status())
}

func TestCountdownReleasesAfterFiveTicks(t *testing.T) {
	g := New()
	g.MarkReady(engine.SideBlue)
	g.MarkReady(engine.SideRed)

	require.True(t, g.StartCountdown())
	require.Equal(t, StatusCountdownRunning, g.Status())
	require.Equal(t, StartTicks, g.Remaining())

	for i := StartTicks - 1; i > 0; i-- {
		rem, released := g.Tick()
		require.Equal(t, i, rem)
		require.False(t, released)
	}
	rem, released := g.Tick()
	require.Equal(t, 0, rem)
	require.True(t, released)
	require.True(t, g.Released())
}

func TestStartCountdownRequiresBothReady(t *testing.T) {
	g := New()
	require.False(t, g.StartCountdown())

	g.MarkReady(engine.SideBlue)
	require.False(t, g.StartCountdown())
}

func TestReleasedGateIgnoresMarkReady(t *testing.T) {
	g := New()
	g.Release()

	require.False(t, g.MarkReady(engine.SideBlue))
	require.Equal(t, StatusReleased, g.Status())
}

func TestMarkReadyDuringCountdownIgnored(t *testing.T) {
	g := New()
	g.MarkReady(engine.SideBlue)
	g.MarkReady(engine.SideRed)
	g.StartCountdown()

	require.False(t, g.MarkReady(engine.SideRed))
	require.Equal(t, StatusCountdownRunning, g.Status())
}

func TestTickOutsideCountdownIsNoOp(t *testing.T) {
	g := New()
	rem, released := g.Tick()
	require.Equal(t, 0, rem)
	require.False(t, released)
	require.Equal(t, StatusIdle, g.Status())
}

func TestReadyFlagsCopy(t *testing.T) {
	g := New()
	g.MarkReady(engine.SideBlue)

	flags := g.ReadyFlags()
	require.True(t, flags[engine.SideBlue])
	require.False(t, flags[engine.SideRed])

	flags[engine.SideRed] = true
	require.False(t, g.Ready(engine.SideRed))
}
