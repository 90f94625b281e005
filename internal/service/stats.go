package service

import (
	"context"
	"fmt"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

type statsRepo interface {
	AddOutcome(ctx context.Context, mode, bucket, outcome string) error
	Aggregate(ctx context.Context) (*entity.Stats, error)
}

type StatsService interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
	Aggregate(ctx context.Context) (*entity.Stats, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// RecordOutcome books a finished game into the counters and persists
// immediately. Bot games land under the difficulty tier, counted from the
// human player's perspective. PvP games land under each mark; a draw adds
// a draw to both marks.
func (that *statsService) RecordOutcome(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return apperror.ErrNoActiveGame
	}

	if game.IsWithBot() {
		return that.recordBotOutcome(ctx, game)
	}

	return that.recordPvPOutcome(ctx, game)
}

func (that *statsService) recordBotOutcome(ctx context.Context, game *entity.Game) error {
	outcome := entity.OutcomeDraw

	switch game.Winner {
	case game.HumanMark:
		outcome = entity.OutcomeWin
	case game.BotMark:
		outcome = entity.OutcomeLoss
	}

	if err := that.statsRepo.AddOutcome(ctx, entity.ModeWithBot, game.Difficulty, outcome); err != nil {
		return fmt.Errorf("failed to record bot game outcome: %w", err)
	}

	return nil
}

func (that *statsService) recordPvPOutcome(ctx context.Context, game *entity.Game) error {
	if game.IsDrawn() {
		for _, mark := range []string{entity.PlayerX, entity.PlayerO} {
			if err := that.statsRepo.AddOutcome(ctx, entity.ModePvP, mark, entity.OutcomeDraw); err != nil {
				return fmt.Errorf("failed to record draw for %s: %w", mark, err)
			}
		}

		return nil
	}

	loser := entity.OpposingMark(game.Winner)

	if err := that.statsRepo.AddOutcome(ctx, entity.ModePvP, game.Winner, entity.OutcomeWin); err != nil {
		return fmt.Errorf("failed to record win for %s: %w", game.Winner, err)
	}

	if err := that.statsRepo.AddOutcome(ctx, entity.ModePvP, loser, entity.OutcomeLoss); err != nil {
		return fmt.Errorf("failed to record loss for %s: %w", loser, err)
	}

	return nil
}

func (that *statsService) Aggregate(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsRepo.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	return stats, nil
}
