// Package series tracks multi-game (best-of-N) progression: which game
// is active, which results are in, and which champions are burned in
// fearless mode.
package series

import (
	"errors"

	"riftdraft/internal/engine"
)

var ErrGameNotAccessible = errors.New("game not accessible yet")
var ErrDuplicateResult = errors.New("result already recorded for game")

type Mode string

const (
	ModeStandard Mode = "standard"
	ModeFearless Mode = "fearless"
)

type TeamResult struct {
	Bans  []string `json:"bans"`
	Picks []string `json:"picks"`
}

// GameResult is the terminal snapshot of one completed draft. Winner is
// empty at record time; the persistence layer fills it in after the
// match is actually played.
type GameResult struct {
	GameIndex int        `json:"game_index"`
	Blue      TeamResult `json:"blue"`
	Red       TeamResult `json:"red"`
	Winner    string     `json:"winner,omitempty"`
}

type Manager struct {
	mode       Mode
	totalGames int
	activeGame int
	results    []GameResult
}

// NewManager starts a series at game 1. Game indexes are 1-based
// throughout, matching the join links shown to participants.
func NewManager(totalGames int, mode Mode) *Manager {
	if totalGames < 1 {
		totalGames = 1
	}
	return &Manager{
		mode:       mode,
		totalGames: totalGames,
		activeGame: 1,
	}
}

// Restore rebuilds a manager from previously persisted results, for
// resuming a series mid-way.
func Restore(totalGames int, mode Mode, results []GameResult) *Manager {
	m := NewManager(totalGames, mode)
	for _, res := range results {
		// Best effort: out-of-order or duplicate snapshots are dropped.
		_ = m.RecordCompletion(res)
	}
	return m
}

// IsGameAccessible reports whether a participant may open the given
// game. Completed and active games are accessible; skipping ahead is
// the one denial surfaced to users.
func (m *Manager) IsGameAccessible(index int) bool {
	return index >= 1 && index <= m.activeGame
}

// CheckAccess is IsGameAccessible as an error for handler call sites.
func (m *Manager) CheckAccess(index int) error {
	if !m.IsGameAccessible(index) {
		return ErrGameNotAccessible
	}
	return nil
}

// RecordCompletion appends a finished game and, when it is the active
// game and the series has games left, advances the active index.
// Recording the same game twice is rejected.
func (m *Manager) RecordCompletion(res GameResult) error {
	for _, r := range m.results {
		if r.GameIndex == res.GameIndex {
			return ErrDuplicateResult
		}
	}
	if res.GameIndex > m.activeGame {
		return ErrGameNotAccessible
	}
	m.results = append(m.results, res)
	if res.GameIndex == m.activeGame && m.activeGame < m.totalGames {
		m.activeGame++
	}
	return nil
}

// ExcludedChampions returns the champion ids unavailable in the next
// game: in fearless mode the union of every pick and ban recorded so
// far, otherwise nothing.
func (m *Manager) ExcludedChampions() []string {
	if m.mode != ModeFearless {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, res := range m.results {
		for _, group := range [][]string{res.Blue.Picks, res.Blue.Bans, res.Red.Picks, res.Red.Bans} {
			for _, id := range group {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// Complete reports whether every game in the series has a result.
func (m *Manager) Complete() bool {
	return len(m.results) >= m.totalGames
}

func (m *Manager) ActiveGame() int { return m.activeGame }

func (m *Manager) TotalGames() int { return m.totalGames }

func (m *Manager) Mode() Mode { return m.mode }

// Results returns a copy of the recorded results in record order.
func (m *Manager) Results() []GameResult {
	out := make([]GameResult, len(m.results))
	copy(out, m.results)
	return out
}

// ResultFromState packages a completed draft state as a series result.
func ResultFromState(index int, s engine.State) GameResult {
	return GameResult{
		GameIndex: index,
		Blue: TeamResult{
			Bans:  append([]string(nil), s.Bans[engine.SideBlue]...),
			Picks: append([]string(nil), s.Picks[engine.SideBlue]...),
		},
		Red: TeamResult{
			Bans:  append([]string(nil), s.Bans[engine.SideRed]...),
			Picks: append([]string(nil), s.Picks[engine.SideRed]...),
		},
	}
}
