// Package types defines the JSON wire format between browser contexts
// and the server. Message kinds form a closed set; unknown kinds are
// answered with an Error message and otherwise ignored.
package types

import (
	"riftdraft/internal/engine"
	"riftdraft/internal/gate"
	"riftdraft/internal/series"
)

// Client -> server message kinds.
const (
	MsgSelectChampion = "SelectChampion"
	MsgLockIn         = "LockIn"
	MsgMarkReady      = "MarkReady"
)

type ClientMessage struct {
	Type       string `json:"type"`
	Side       string `json:"side,omitempty"`
	ChampionID string `json:"champion_id,omitempty"`
}

// Server -> client message kinds.
const (
	MsgStateSnapshot      = "StateSnapshot"
	MsgTentativeSelection = "TentativeSelection"
	MsgConfirmedLock      = "ConfirmedLock"
	MsgTimerTick          = "TimerTick"
	MsgReadinessMarked    = "ReadinessMarked"
	MsgCountdownStarted   = "CountdownStarted"
	MsgGameCompleted      = "GameCompleted"
	MsgError              = "Error"
)

type ServerMessage struct {
	Type       string    `json:"type"`
	Version    int       `json:"version,omitempty"`
	Side       string    `json:"side,omitempty"`
	ChampionID string    `json:"champion_id,omitempty"`
	Remaining  int       `json:"remaining,omitempty"`
	GameIndex  int       `json:"game_index,omitempty"`
	State      *Snapshot `json:"state,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Snapshot carries the entire session state so a late-joining context
// catches up from a single message.
type Snapshot struct {
	Version   int                  `json:"version"`
	GameIndex int                  `json:"game_index"`
	BlueName  string               `json:"blue_name,omitempty"`
	RedName   string               `json:"red_name,omitempty"`
	Gate      gate.Status          `json:"gate"`
	Ready     map[engine.Side]bool `json:"ready"`
	Remaining int                  `json:"remaining"`
	Draft     engine.State         `json:"draft"`
	Results   []series.GameResult  `json:"results,omitempty"`
}
