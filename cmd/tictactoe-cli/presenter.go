package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/service"
)

// termPresenter renders the board and game messages with ANSI colors.
type termPresenter struct {
	out     io.Writer
	profile termenv.Profile
}

func newTermPresenter(out io.Writer) service.Presenter {
	return &termPresenter{
		out:     out,
		profile: termenv.ColorProfile(),
	}
}

func (that *termPresenter) RenderBoard(board entity.Board) {
	fmt.Fprintln(that.out)

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = that.cell(board, row*3+col)
		}

		fmt.Fprintf(that.out, " %s | %s | %s\n", cells[0], cells[1], cells[2])
		if row < 2 {
			fmt.Fprintln(that.out, "---+---+---")
		}
	}

	fmt.Fprintln(that.out)
}

func (that *termPresenter) cell(board entity.Board, idx int) string {
	mark := board[idx]
	if mark == entity.EmptyCell {
		return that.style(fmt.Sprintf("%d", idx), termenv.ANSIBrightBlack)
	}

	if mark == entity.PlayerX {
		return that.style(mark, termenv.ANSIRed)
	}

	return that.style(mark, termenv.ANSIBlue)
}

func (that *termPresenter) style(s string, color termenv.Color) string {
	return termenv.String(s).Foreground(that.profile.Convert(color)).String()
}

func (that *termPresenter) Announce(message, activeMark string) {
	fmt.Fprintln(that.out, message)
}

func (that *termPresenter) ShowOutcome(message, winnerMark string, line *[3]int) {
	styled := termenv.String(message).Bold()
	fmt.Fprintln(that.out, styled.String())
}

func (that *termPresenter) SetInteractivity(enabled bool) {}

func (that *termPresenter) ReflectSettings(mode, difficulty string) {
	if difficulty != "" {
		fmt.Fprintf(that.out, "new game, difficulty %s\n", difficulty)
	}
}

func (that *termPresenter) PromptResume(saved *entity.Game) {}
