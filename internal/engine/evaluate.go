// Package engine holds the pure game knowledge: terminal evaluation over
// the fixed winning lines, the minimax search and the per-difficulty move
// policies. Nothing in here mutates a caller's board.
package engine

import "github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"

// WinLines enumerates the 8 winning triples: 3 rows, 3 columns, 2
// diagonals, in that order. The order matters to GapCell, which returns
// the first match.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWon reports whether the mark holds a complete winning line.
func HasWon(board entity.Board, mark string) bool {
	_, ok := WinningLine(board, mark)
	return ok
}

// WinningLine returns the first completed line for the mark, if any.
func WinningLine(board entity.Board, mark string) ([3]int, bool) {
	for _, line := range WinLines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return line, true
		}
	}

	return [3]int{}, false
}

// IsDraw reports a full board with no winner. Callers checking a move's
// result must test the win first: a full winning board is a win, not a
// draw.
func IsDraw(board entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	return !HasWon(board, entity.PlayerX) && !HasWon(board, entity.PlayerO)
}

// GapCell finds the first line holding two of the mark's cells and one
// empty cell, and returns the empty cell. That cell is an immediate win
// for the mark, or the cell the opponent must block.
func GapCell(board entity.Board, mark string) (int, bool) {
	for _, line := range WinLines {
		gap := -1
		count := 0

		for _, cell := range line {
			switch board[cell] {
			case mark:
				count++
			case entity.EmptyCell:
				gap = cell
			}
		}

		if count == 2 && gap != -1 {
			return gap, true
		}
	}

	return -1, false
}
