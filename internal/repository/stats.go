package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

// StatsRepository keeps the win/loss/draw counters in SQLite, one row per
// (mode, bucket). The bucket is the difficulty tier in bot mode and the
// mark in PvP mode.
type StatsRepository interface {
	Init(ctx context.Context) error
	AddOutcome(ctx context.Context, mode, bucket, outcome string) error
	Aggregate(ctx context.Context) (*entity.Stats, error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

func (that *dbStats) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS stats (
		mode TEXT NOT NULL,
		bucket TEXT NOT NULL,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		draws INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (mode, bucket)
	)`

	if _, err := that.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create stats table: %w", err)
	}

	return nil
}

func (that *dbStats) AddOutcome(ctx context.Context, mode, bucket, outcome string) error {
	var wins, losses, draws int

	switch outcome {
	case entity.OutcomeWin:
		wins = 1
	case entity.OutcomeLoss:
		losses = 1
	case entity.OutcomeDraw:
		draws = 1
	default:
		return fmt.Errorf("can't record outcome %q: unknown outcome", outcome)
	}

	query := `INSERT INTO stats (mode, bucket, wins, losses, draws) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (mode, bucket) DO UPDATE SET
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			draws = draws + excluded.draws`

	if _, err := that.conn.ExecContext(ctx, query, mode, bucket, wins, losses, draws); err != nil {
		return fmt.Errorf("can't record outcome: %w", err)
	}

	return nil
}

// Aggregate loads every counter and recomputes the bot-mode running total
// from the per-difficulty rows.
func (that *dbStats) Aggregate(ctx context.Context) (*entity.Stats, error) {
	query := `SELECT mode, bucket, wins, losses, draws FROM stats`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't load stats: %w", err)
	}
	defer rows.Close()

	stats := entity.NewStats()

	for rows.Next() {
		var mode, bucket string
		var counter entity.Counter

		if err = rows.Scan(&mode, &bucket, &counter.Wins, &counter.Losses, &counter.Draws); err != nil {
			return nil, fmt.Errorf("can't scan stats row: %w", err)
		}

		switch mode {
		case entity.ModeWithBot:
			stats.Bot[bucket] = counter
			stats.BotTotal.Wins += counter.Wins
			stats.BotTotal.Losses += counter.Losses
			stats.BotTotal.Draws += counter.Draws
		case entity.ModePvP:
			stats.PvP[bucket] = counter
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate stats rows: %w", err)
	}

	return stats, nil
}
