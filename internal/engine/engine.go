package engine

import (
	"errors"
	"slices"
)

var ErrWrongTurn = errors.New("invalid turn")
var ErrUnavailableChampion = errors.New("champion unavailable")
var ErrNoSelection = errors.New("no champion selected")
var ErrDraftCompleted = errors.New("draft already completed")
var ErrUnsupportedCommand = errors.New("unsupported command")

type Side string

const (
	SideBlue Side = "blue"
	SideRed  Side = "red"
)

type Action string

const (
	ActionBan  Action = "ban"
	ActionPick Action = "pick"
)

type Phase string

const (
	PhaseBan1  Phase = "ban1"
	PhasePick1 Phase = "pick1"
	PhaseBan2  Phase = "ban2"
	PhasePick2 Phase = "pick2"
	PhaseDone  Phase = "done"
)

type TurnStep struct {
	Side   Side   `json:"side"`
	Action Action `json:"action"`
}

// State is the full draft state for one game. Apply treats it as a
// value: mutations happen on a deep copy and the previous state stays
// usable, so a rejected command can never leave partial writes behind.
type State struct {
	Step        int               `json:"step"`
	Phase       Phase             `json:"phase"`
	Picks       map[Side][]string `json:"picks"`
	Bans        map[Side][]string `json:"bans"`
	Unavailable map[string]bool   `json:"unavailable"`
	Tentative   string            `json:"tentative,omitempty"`
	Schedule    Schedule          `json:"-"`
}

type CommandType string

const (
	CmdSelectChampion CommandType = "SelectChampion"
	CmdLockIn         CommandType = "LockIn"
	CmdTimeoutAdvance CommandType = "TimeoutAdvance"
)

type Command struct {
	Type       CommandType
	Side       Side
	ChampionID string
}

type EventType string

const (
	EvtChampionSelected EventType = "ChampionSelected"
	EvtChampionPicked   EventType = "ChampionPicked"
	EvtChampionBanned   EventType = "ChampionBanned"
	EvtTurnAdvanced     EventType = "TurnAdvanced"
	EvtTurnPassed       EventType = "TurnPassed"
	EvtDraftCompleted   EventType = "DraftCompleted"
)

type Event struct {
	Type       EventType
	Side       Side
	ChampionID string
}

// Apply runs one command against the state and returns the events it
// produced plus the successor state. On error the input state is
// returned unchanged; callers decide whether the error is surfaced or
// absorbed as a no-op.
func Apply(s State, cmd Command) ([]Event, State, error) {
	if s.Completed() {
		return nil, s, ErrDraftCompleted
	}

	step := s.Schedule[s.Step]

	switch cmd.Type {
	case CmdSelectChampion:
		// Tentative only: nothing is committed until lock-in, and a later
		// select for the same turn replaces the earlier one.
		if step.Side != cmd.Side {
			return nil, s, ErrWrongTurn
		}
		if s.Unavailable[cmd.ChampionID] {
			return nil, s, ErrUnavailableChampion
		}
		newState := s.clone()
		newState.Tentative = cmd.ChampionID
		events := []Event{
			{Type: EvtChampionSelected, Side: step.Side, ChampionID: cmd.ChampionID},
		}
		return events, newState, nil

	case CmdLockIn:
		if step.Side != cmd.Side {
			return nil, s, ErrWrongTurn
		}
		if s.Tentative == "" {
			return nil, s, ErrNoSelection
		}
		if s.Unavailable[s.Tentative] {
			return nil, s, ErrUnavailableChampion
		}
		return lockTentative(s)

	case CmdTimeoutAdvance:
		// With a live tentative selection the timeout behaves like an
		// explicit lock-in; without one the turn is passed and its slot
		// stays empty, so the draft always terminates.
		if s.Tentative != "" && !s.Unavailable[s.Tentative] {
			return lockTentative(s)
		}
		newState := s.clone()
		newState.Tentative = ""
		newState.advance()
		events := []Event{
			{Type: EvtTurnPassed, Side: step.Side},
			{Type: EvtTurnAdvanced},
		}
		if newState.Completed() {
			events = append(events, Event{Type: EvtDraftCompleted})
		}
		return events, newState, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func lockTentative(s State) ([]Event, State, error) {
	step := s.Schedule[s.Step]
	newState := s.clone()

	champ := newState.Tentative
	var events []Event
	if step.Action == ActionBan {
		newState.Bans[step.Side] = append(newState.Bans[step.Side], champ)
		events = append(events, Event{Type: EvtChampionBanned, Side: step.Side, ChampionID: champ})
	} else {
		newState.Picks[step.Side] = append(newState.Picks[step.Side], champ)
		events = append(events, Event{Type: EvtChampionPicked, Side: step.Side, ChampionID: champ})
	}
	newState.Unavailable[champ] = true
	newState.Tentative = ""
	newState.advance()
	events = append(events, Event{Type: EvtTurnAdvanced})
	if newState.Completed() {
		events = append(events, Event{Type: EvtDraftCompleted})
	}
	return events, newState, nil
}

func (s *State) advance() {
	s.Step++
	s.Phase = s.Schedule.PhaseAt(s.Step)
}

// Completed reports whether the schedule is exhausted; a completed state
// is terminal and rejects every further command.
func (s State) Completed() bool {
	return s.Step >= len(s.Schedule)
}

// ActiveStep returns the turn the draft is currently on. The second
// return is false once the draft has completed.
func (s State) ActiveStep() (TurnStep, bool) {
	if s.Completed() {
		return TurnStep{}, false
	}
	return s.Schedule[s.Step], true
}

func (s State) clone() State {
	c := s
	c.Picks = map[Side][]string{
		SideBlue: slices.Clone(s.Picks[SideBlue]),
		SideRed:  slices.Clone(s.Picks[SideRed]),
	}
	c.Bans = map[Side][]string{
		SideBlue: slices.Clone(s.Bans[SideBlue]),
		SideRed:  slices.Clone(s.Bans[SideRed]),
	}
	c.Unavailable = make(map[string]bool, len(s.Unavailable))
	for id := range s.Unavailable {
		c.Unavailable[id] = true
	}
	return c
}
