package service

import (
	"log/slog"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

// Presenter is the presentation side of the system. The session drives it
// on every state change; it never reads anything back. The server wires a
// logging presenter, the CLI client wires a terminal one.
type Presenter interface {
	RenderBoard(board entity.Board)
	Announce(message, activeMark string)
	ShowOutcome(message, winnerMark string, line *[3]int)
	SetInteractivity(enabled bool)
	ReflectSettings(mode, difficulty string)
	PromptResume(saved *entity.Game)
}

type slogPresenter struct {
	logger *slog.Logger
}

// NewSlogPresenter returns a presenter that mirrors every callback into
// structured logs. It stands in for a display surface on the server.
func NewSlogPresenter(logger *slog.Logger) Presenter {
	return &slogPresenter{
		logger: logger.With("component", "presenter"),
	}
}

func (that *slogPresenter) RenderBoard(board entity.Board) {
	that.logger.Debug("render board", "board", board)
}

func (that *slogPresenter) Announce(message, activeMark string) {
	that.logger.Info("announce", "message", message, "active_mark", activeMark)
}

func (that *slogPresenter) ShowOutcome(message, winnerMark string, line *[3]int) {
	if line != nil {
		that.logger.Info("outcome", "message", message, "winner", winnerMark, "line", *line)
		return
	}

	that.logger.Info("outcome", "message", message, "winner", winnerMark)
}

func (that *slogPresenter) SetInteractivity(enabled bool) {
	that.logger.Debug("set interactivity", "enabled", enabled)
}

func (that *slogPresenter) ReflectSettings(mode, difficulty string) {
	that.logger.Info("settings", "mode", mode, "difficulty", difficulty)
}

func (that *slogPresenter) PromptResume(saved *entity.Game) {
	that.logger.Info("saved game available", "gameID", saved.ID, "status", saved.Status)
}
