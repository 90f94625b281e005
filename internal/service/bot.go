package service

import (
	"fmt"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/engine"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

type BotService interface {
	ChooseCell(game *entity.Game) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseCell picks the bot's cell for the game's difficulty tier. The
// session owns actually applying the move.
func (that *botService) ChooseCell(game *entity.Game) (int, error) {
	if !game.IsWithBot() {
		return -1, fmt.Errorf("bot can't move: %w", apperror.ErrUnknownMode)
	}

	cell := engine.BestMove(game.Board, game.BotMark, game.Difficulty)
	if cell == -1 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}
