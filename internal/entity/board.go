package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Board is a 3x3 grid stored row-major, cells 0-8.
// It is a value type: assigning a Board copies it, so search code can
// branch on private copies without touching the caller's board.
type Board [BoardSize]string

// Place writes the mark into the cell if it is empty.
// An occupied cell or an out-of-range index is not an error, just a
// refused move: the board is left untouched and false is returned.
func (that *Board) Place(cell int, mark string) bool {
	if cell < 0 || cell >= BoardSize {
		return false
	}

	if that[cell] != EmptyCell {
		return false
	}

	that[cell] = mark

	return true
}

// EmptyCells returns the indexes of all empty cells in ascending order.
// The slice is rebuilt on every call.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// OpposingMark - returns the other player's mark.
func OpposingMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
