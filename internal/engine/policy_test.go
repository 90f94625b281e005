package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

func TestBestMove_Terminal(t *testing.T) {
	t.Run("Returns -1 for every tier on a finished board", func(t *testing.T) {
		// Given: X already won
		board := entity.Board{}
		board[0], board[1], board[2] = entity.PlayerX, entity.PlayerX, entity.PlayerX

		// Then: no tier attempts a move
		for _, tier := range []string{entity.EasyDifficulty, entity.MediumDifficulty, entity.HardDifficulty} {
			assert.Equal(t, -1, BestMove(board, entity.PlayerO, tier), "tier %s", tier)
		}
	})
}

func TestBestMove_Medium(t *testing.T) {
	t.Run("Blocks the opponent's imminent win", func(t *testing.T) {
		// Given: X on 0 and 1, O only in the center, O to move
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: medium picks a cell
		cell := BestMove(board, entity.PlayerO, entity.MediumDifficulty)

		// Then: it blocks at cell 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Completing its own row beats blocking", func(t *testing.T) {
		// Given: both sides threaten; O can win at 5, X can win at 2
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: medium picks a cell
		cell := BestMove(board, entity.PlayerO, entity.MediumDifficulty)

		// Then: it takes its own win instead of blocking
		assert.Equal(t, 5, cell)
	})

	t.Run("Takes the center when nothing is urgent", func(t *testing.T) {
		// Given: one X in a corner, no threats
		board := entity.Board{}
		board[0] = entity.PlayerX

		// When: medium picks a cell
		cell := BestMove(board, entity.PlayerO, entity.MediumDifficulty)

		// Then: the center
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls back to some empty cell when the center is taken", func(t *testing.T) {
		// Given: no threats and an occupied center
		board := entity.Board{}
		board[4] = entity.PlayerX

		// When: medium picks a cell
		cell := BestMove(board, entity.PlayerO, entity.MediumDifficulty)

		// Then: a legal empty cell
		require.GreaterOrEqual(t, cell, 0)
		assert.Equal(t, entity.EmptyCell, board[cell])
	})
}

func TestBestMove_Easy(t *testing.T) {
	t.Run("Takes its own immediate win", func(t *testing.T) {
		// Given: O can complete the middle row
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: easy picks a cell
		cell := BestMove(board, entity.PlayerO, entity.EasyDifficulty)

		// Then: the win at 5
		assert.Equal(t, 5, cell)
	})

	t.Run("Does not block the opponent", func(t *testing.T) {
		// Given: X threatens at 2 over many trials
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: easy picks 200 times
		nonBlocking := 0
		for i := 0; i < 200; i++ {
			if BestMove(board, entity.PlayerO, entity.EasyDifficulty) != 2 {
				nonBlocking++
			}
		}

		// Then: it regularly ignores the threat, easy has no block rule
		assert.Positive(t, nonBlocking)
	})

	t.Run("Does not prefer the center", func(t *testing.T) {
		// Given: an open board with the center free and no win available
		board := entity.Board{}
		board[0] = entity.PlayerX

		// When: easy picks 200 times
		nonCenter := 0
		for i := 0; i < 200; i++ {
			if BestMove(board, entity.PlayerO, entity.EasyDifficulty) != 4 {
				nonCenter++
			}
		}

		// Then: non-center cells show up, the pick is uniform
		assert.Positive(t, nonCenter)
	})
}

func TestBestMove_Hard(t *testing.T) {
	t.Run("Dispatches to the full search", func(t *testing.T) {
		// Given: X threatens two lines at once; only minimax sees that
		// taking the win now is required
		board := entity.Board{
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: hard picks a cell
		cell := BestMove(board, entity.PlayerO, entity.HardDifficulty)

		// Then: it completes its own row immediately
		assert.Equal(t, 2, cell)
	})
}
