package engine

// Schedule is the ordered turn table for one game. The standard
// tournament order ships as DefaultSchedule; alternate formats can swap
// in their own table when building the initial state.
type Schedule []TurnStep

var DefaultSchedule = Schedule{
	// Ban Phase 1
	{Side: SideBlue, Action: ActionBan},
	{Side: SideRed, Action: ActionBan},
	{Side: SideBlue, Action: ActionBan},
	{Side: SideRed, Action: ActionBan},
	{Side: SideBlue, Action: ActionBan},
	{Side: SideRed, Action: ActionBan},
	// Pick Phase 1
	{Side: SideBlue, Action: ActionPick},
	{Side: SideRed, Action: ActionPick},
	{Side: SideRed, Action: ActionPick},
	{Side: SideBlue, Action: ActionPick},
	{Side: SideBlue, Action: ActionPick},
	{Side: SideRed, Action: ActionPick},
	// Ban Phase 2
	{Side: SideRed, Action: ActionBan},
	{Side: SideBlue, Action: ActionBan},
	{Side: SideRed, Action: ActionBan},
	{Side: SideBlue, Action: ActionBan},
	// Pick Phase 2
	{Side: SideRed, Action: ActionPick},
	{Side: SideBlue, Action: ActionPick},
	{Side: SideBlue, Action: ActionPick},
	{Side: SideRed, Action: ActionPick},
}

// PhaseAt maps a step index onto the display phase. Phase boundaries are
// derived from the table so replacement schedules keep working.
func (sc Schedule) PhaseAt(step int) Phase {
	if step >= len(sc) {
		return PhaseDone
	}
	phase := PhaseBan1
	for i := 0; i <= step; i++ {
		switch {
		case sc[i].Action == ActionPick && phase == PhaseBan1:
			phase = PhasePick1
		case sc[i].Action == ActionBan && phase == PhasePick1:
			phase = PhaseBan2
		case sc[i].Action == ActionPick && phase == PhaseBan2:
			phase = PhasePick2
		}
	}
	return phase
}

// Count returns how many turns the schedule holds for a side/action
// pair, which bounds the matching pick or ban list length.
func (sc Schedule) Count(side Side, action Action) int {
	n := 0
	for _, step := range sc {
		if step.Side == side && step.Action == action {
			n++
		}
	}
	return n
}
