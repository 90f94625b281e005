package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Refuses a PvP game", func(t *testing.T) {
		// Given: a PvP game
		botService := NewBotService()
		game := entity.NewGame("g1", entity.ModePvP, "")

		// When: asking the bot for a cell
		_, err := botService.ChooseCell(game)

		// Then: the bot has no mark to play
		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Errors when the board is terminal", func(t *testing.T) {
		// Given: a bot game on a full drawn board
		botService := NewBotService()
		game := entity.NewGame("g1", entity.ModeWithBot, entity.EasyDifficulty)
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}

		// When: asking the bot for a cell
		_, err := botService.ChooseCell(game)

		// Then: no available moves
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Picks a legal cell on an open board", func(t *testing.T) {
		// Given: a fresh hard bot game
		botService := NewBotService()
		game := entity.NewGame("g1", entity.ModeWithBot, entity.HardDifficulty)

		// When: asking the bot for a cell
		cell, err := botService.ChooseCell(game)

		// Then: a legal empty cell comes back
		require.NoError(t, err)
		require.GreaterOrEqual(t, cell, 0)
		require.Less(t, cell, entity.BoardSize)
		assert.Equal(t, entity.EmptyCell, game.Board[cell])
	})
}
