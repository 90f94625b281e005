package engine

import "github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"

const winScore = 100

// minimax searches the full game tree below the board and returns the
// best cell for the mark to move together with its score. The bot mark
// maximizes, the opponent minimizes. Scores are depth-biased: a win in
// fewer moves scores higher and a loss in more moves scores higher, so
// the bot takes the quickest win and drags out a forced loss.
//
// The tree is at most 9 plies deep and tiny, so no pruning or caching is
// needed for interactive response times.
func minimax(board entity.Board, mark string, depth int, botMark string) (int, int) {
	humanMark := entity.OpposingMark(botMark)

	switch {
	case HasWon(board, humanMark):
		return -1, -winScore + depth
	case HasWon(board, botMark):
		return -1, winScore - depth
	case board.IsFull():
		return -1, 0
	}

	maximizing := mark == botMark

	bestCell := -1
	bestScore := 0

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = mark

		_, score := minimax(next, entity.OpposingMark(mark), depth+1, botMark)

		// strict comparison keeps the first-encountered cell on ties,
		// which makes the search deterministic
		better := maximizing && score > bestScore || !maximizing && score < bestScore
		if bestCell == -1 || better {
			bestCell = cell
			bestScore = score
		}
	}

	return bestCell, bestScore
}

// OptimalMove runs the full search with the bot as the side to move.
// It returns -1 on a terminal board.
func OptimalMove(board entity.Board, botMark string) int {
	if isTerminal(board) {
		return -1
	}

	cell, _ := minimax(board, botMark, 0, botMark)

	return cell
}

func isTerminal(board entity.Board) bool {
	if HasWon(board, entity.PlayerX) || HasWon(board, entity.PlayerO) {
		return true
	}

	return board.IsFull()
}
