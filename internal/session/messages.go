package session

import (
	"riftdraft/internal/engine"
	"riftdraft/internal/gate"
	"riftdraft/internal/series"
)

// Msg is the session actor's inbox message set.
type Msg interface{ isSessionMsg() }

type Join struct {
	ClientID string
	Role     Role
	Outbox   chan Outbound // where this context wants to receive messages
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type FromClient struct {
	ClientID string
	Cmd      Command
}

func (FromClient) isSessionMsg() {}

// GetState reflects internal state without data races. The HTTP layer
// uses it for link gating; tests use it as a barrier.
type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

// PrimeTimer opens the readiness gate and starts the active turn's
// countdown immediately; test hook.
type PrimeTimer struct{}

func (PrimeTimer) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// timerFired is the internal tick. The generation stamp lets the loop
// drop fires from a countdown that was already cancelled.
type timerFired struct{ gen int }

func (timerFired) isSessionMsg() {}

// Command is a client-originated action before authorization.
type CommandType string

const (
	CmdSelect CommandType = "select"
	CmdLock   CommandType = "lock"
	CmdReady  CommandType = "ready"
)

type Command struct {
	Type       CommandType
	Side       engine.Side
	ChampionID string
}

// Outbound is what clients receive: either a full state snapshot or a
// granular notice about one event.
type Outbound interface{ isOutbound() }

type Snapshot struct {
	Version   int
	GameIndex int
	BlueName  string
	RedName   string
	Gate      gate.Status
	Ready     map[engine.Side]bool
	Remaining int
	Draft     engine.State
	Results   []series.GameResult
}

func (Snapshot) isOutbound() {}

type NoticeKind string

const (
	NoticeTentative        NoticeKind = "tentative"
	NoticeLock             NoticeKind = "lock"
	NoticeTimerTick        NoticeKind = "timer_tick"
	NoticeReady            NoticeKind = "ready"
	NoticeCountdownStarted NoticeKind = "countdown_started"
	NoticeGameCompleted    NoticeKind = "game_completed"
)

type Notice struct {
	Kind       NoticeKind
	Side       engine.Side
	ChampionID string
	Remaining  int
	GameIndex  int
}

func (Notice) isOutbound() {}

// View is a read-only reflection of session internals.
type View struct {
	Version    int
	NumClients int
	Gate       gate.Status
	Remaining  int
	ActiveGame int
	State      engine.State
	Results    []series.GameResult
}
