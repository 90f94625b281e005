package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: placing X on cell 4
		ok := board.Place(4, PlayerX)

		// Then: the move succeeds and the cell holds X
		assert.True(t, ok)
		assert.Equal(t, PlayerX, board[4])
	})

	t.Run("Only the first placement on a cell succeeds", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: placing twice on the same cell
		first := board.Place(0, PlayerX)
		second := board.Place(0, PlayerO)

		// Then: only the first placement succeeds and the cell keeps X
		assert.True(t, first)
		assert.False(t, second)
		assert.Equal(t, PlayerX, board[0])
	})

	t.Run("Refuses out-of-range cells without mutation", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: placing outside 0-8
		lowOK := board.Place(-1, PlayerX)
		highOK := board.Place(9, PlayerX)

		// Then: both moves are refused and the board stays empty
		assert.False(t, lowOK)
		assert.False(t, highOK)
		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Returns all cells ascending on an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: all nine indexes come back in ascending order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, cells)
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with cells 0 and 4 taken
		board := Board{}
		require.True(t, board.Place(0, PlayerX))
		require.True(t, board.Place(4, PlayerO))

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: the taken cells are gone
		assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, cells)
	})
}

func TestBoard_Reset(t *testing.T) {
	t.Run("Clears every cell", func(t *testing.T) {
		// Given: a board with some marks
		board := Board{PlayerX, PlayerO, "", PlayerX, "", "", "", "", PlayerO}

		// When: resetting
		board.Reset()

		// Then: the board is empty again
		assert.Equal(t, Board{}, board)
		assert.Len(t, board.EmptyCells(), BoardSize)
	})
}

func TestBoard_CopySemantics(t *testing.T) {
	t.Run("Assignment snapshots the board", func(t *testing.T) {
		// Given: a board and a snapshot of it
		board := Board{}
		require.True(t, board.Place(0, PlayerX))
		snapshot := board

		// When: mutating the original
		require.True(t, board.Place(1, PlayerO))

		// Then: the snapshot does not observe the mutation
		assert.Equal(t, EmptyCell, snapshot[1])
		assert.Equal(t, PlayerO, board[1])
	})
}

func TestOpposingMark(t *testing.T) {
	assert.Equal(t, PlayerO, OpposingMark(PlayerX))
	assert.Equal(t, PlayerX, OpposingMark(PlayerO))
}
