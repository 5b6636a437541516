// Package store persists completed draft results. It implements the
// session's ResultSink so the draft core stays free of database
// concerns.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"riftdraft/internal/series"
)

var ErrNotFound = errors.New("no recorded result")

type GameRecord struct {
	ID          uint      `gorm:"primaryKey"`
	CreatedAt   time.Time
	SessionCode string   `gorm:"index:idx_session_game,unique"`
	GameIndex   int      `gorm:"index:idx_session_game,unique"`
	BlueBans    []string `gorm:"serializer:json"`
	BluePicks   []string `gorm:"serializer:json"`
	RedBans     []string `gorm:"serializer:json"`
	RedPicks    []string `gorm:"serializer:json"`
	Winner      string
}

type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&GameRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveResult records one completed game. The unique session/game index
// makes duplicate hand-offs fail instead of forking history.
func (s *Store) SaveResult(ctx context.Context, code string, res series.GameResult) error {
	rec := GameRecord{
		SessionCode: code,
		GameIndex:   res.GameIndex,
		BlueBans:    res.Blue.Bans,
		BluePicks:   res.Blue.Picks,
		RedBans:     res.Red.Bans,
		RedPicks:    res.Red.Picks,
		Winner:      res.Winner,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// SetWinner fills in the winner after the match has been played; the
// draft itself always completes with the winner unknown.
func (s *Store) SetWinner(ctx context.Context, code string, gameIndex int, winner string) error {
	tx := s.db.WithContext(ctx).
		Model(&GameRecord{}).
		Where("session_code = ? AND game_index = ?", code, gameIndex).
		Update("winner", winner)
	if tx.Error != nil {
		return fmt.Errorf("set winner: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("set winner %s game %d: %w", code, gameIndex, ErrNotFound)
	}
	return nil
}

// Results loads the recorded games for a session in game order, e.g.
// to resume a series after a restart.
func (s *Store) Results(ctx context.Context, code string) ([]series.GameResult, error) {
	var recs []GameRecord
	err := s.db.WithContext(ctx).
		Where("session_code = ?", code).
		Order("game_index").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	out := make([]series.GameResult, 0, len(recs))
	for _, rec := range recs {
		out = append(out, series.GameResult{
			GameIndex: rec.GameIndex,
			Blue:      series.TeamResult{Bans: rec.BlueBans, Picks: rec.BluePicks},
			Red:       series.TeamResult{Bans: rec.RedBans, Picks: rec.RedPicks},
			Winner:    rec.Winner,
		})
	}
	return out, nil
}
