// Package gate implements the two-party readiness handshake that must
// complete before a draft starts, including the synchronized start
// countdown shown to every connected context.
package gate

import "riftdraft/internal/engine"

type Status string

const (
	StatusIdle             Status = "idle"
	StatusOneReady         Status = "one_ready"
	StatusBothReady        Status = "both_ready"
	StatusCountdownRunning Status = "countdown"
	StatusReleased         Status = "released"
)

// StartTicks is the fixed length of the start countdown.
const StartTicks = 5

type Gate struct {
	status    Status
	ready     map[engine.Side]bool
	remaining int
}

func New() *Gate {
	return &Gate{
		status: StatusIdle,
		ready:  map[engine.Side]bool{},
	}
}

// MarkReady flags a side as ready and reports whether anything changed.
// Calls after both sides are ready (countdown running or released) are
// ignored, so replayed readiness messages converge to the same state.
func (g *Gate) MarkReady(side engine.Side) bool {
	if g.status == StatusCountdownRunning || g.status == StatusReleased {
		return false
	}
	if g.ready[side] {
		return false
	}
	g.ready[side] = true
	if g.ready[engine.SideBlue] && g.ready[engine.SideRed] {
		g.status = StatusBothReady
	} else {
		g.status = StatusOneReady
	}
	return true
}

// StartCountdown arms the start countdown once both sides are ready.
func (g *Gate) StartCountdown() bool {
	if g.status != StatusBothReady {
		return false
	}
	g.status = StatusCountdownRunning
	g.remaining = StartTicks
	return true
}

// Tick consumes one countdown tick and reports the remaining count and
// whether this tick released the gate.
func (g *Gate) Tick() (int, bool) {
	if g.status != StatusCountdownRunning {
		return g.remaining, false
	}
	g.remaining--
	if g.remaining <= 0 {
		g.remaining = 0
		g.status = StatusReleased
		return 0, true
	}
	return g.remaining, false
}

// Release forces the gate open, bypassing the handshake. Used for
// sessions resumed mid-series and in tests.
func (g *Gate) Release() {
	g.ready[engine.SideBlue] = true
	g.ready[engine.SideRed] = true
	g.status = StatusReleased
}

func (g *Gate) Status() Status { return g.status }

func (g *Gate) Released() bool { return g.status == StatusReleased }

func (g *Gate) Ready(side engine.Side) bool { return g.ready[side] }

func (g *Gate) Remaining() int { return g.remaining }

// ReadyFlags returns a copy of the per-side flags for snapshots.
func (g *Gate) ReadyFlags() map[engine.Side]bool {
	return map[engine.Side]bool{
		engine.SideBlue: g.ready[engine.SideBlue],
		engine.SideRed:  g.ready[engine.SideRed],
	}
}
