package engine

// StateOption tweaks the initial state produced by NewState.
type StateOption func(*State)

// WithSchedule swaps the turn table, for alternate draft formats.
func WithSchedule(sc Schedule) StateOption {
	return func(s *State) { s.Schedule = sc }
}

// WithExcluded marks champion ids as unavailable before the first turn,
// used for fearless-series carry-over.
func WithExcluded(ids []string) StateOption {
	return func(s *State) {
		for _, id := range ids {
			s.Unavailable[id] = true
		}
	}
}

func NewState(opts ...StateOption) State {
	s := State{
		Picks:       map[Side][]string{SideBlue: {}, SideRed: {}},
		Bans:        map[Side][]string{SideBlue: {}, SideRed: {}},
		Unavailable: map[string]bool{},
		Schedule:    DefaultSchedule,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.Phase = s.Schedule.PhaseAt(s.Step)
	return s
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}
