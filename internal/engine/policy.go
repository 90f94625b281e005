package engine

import (
	"math/rand"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

const centerCell = 4

// BestMove picks the bot's cell according to the difficulty tier.
// It returns -1 when the board is already terminal, so a caller racing a
// stale win check never triggers a search on a finished game.
//
// Tiers:
//   - hard: full minimax, cannot be beaten.
//   - medium: take an immediate win, block the opponent's immediate win,
//     take the center, else move at random.
//   - easy: take an immediate win, else move at random. Easy never blocks
//     and never prefers the center; that is the point of the tier.
func BestMove(board entity.Board, botMark, difficulty string) int {
	if isTerminal(board) {
		return -1
	}

	switch difficulty {
	case entity.HardDifficulty:
		return OptimalMove(board, botMark)
	case entity.MediumDifficulty:
		return mediumMove(board, botMark)
	default:
		return easyMove(board, botMark)
	}
}

func mediumMove(board entity.Board, botMark string) int {
	if cell, ok := GapCell(board, botMark); ok {
		return cell
	}

	if cell, ok := GapCell(board, entity.OpposingMark(botMark)); ok {
		return cell
	}

	if board[centerCell] == entity.EmptyCell {
		return centerCell
	}

	return randomCell(board)
}

func easyMove(board entity.Board, botMark string) int {
	if cell, ok := GapCell(board, botMark); ok {
		return cell
	}

	return randomCell(board)
}

func randomCell(board entity.Board) int {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return -1
	}

	return cells[rand.Intn(len(cells))] //nolint: gosec // it's ok
}
