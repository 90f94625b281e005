package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

type gameSession interface {
	StartNewGame(ctx context.Context, mode, difficulty string) (*entity.Game, error)
	ApplyMove(ctx context.Context, cell int) bool
	ResumeGame(ctx context.Context) (*entity.Game, error)
	CurrentGame() *entity.Game
	CurrentSettings() (entity.Settings, error)
}

type statsService interface {
	Aggregate(ctx context.Context) (*entity.Stats, error)
}

type preferencesRepo interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	Mute(ctx context.Context) (string, error)
	SetMute(ctx context.Context, mute string) error
}

type handlers struct {
	logger  *slog.Logger
	session gameSession
	stats   statsService
	prefs   preferencesRepo
}

type newGameRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty,omitempty"`
}

type moveRequest struct {
	Cell int `json:"cell"`
}

type moveResponse struct {
	Applied bool         `json:"applied"`
	Game    *entity.Game `json:"game,omitempty"`
}

type gameStateResponse struct {
	Game     *entity.Game    `json:"game,omitempty"`
	Settings entity.Settings `json:"settings"`
}

type preferencesPayload struct {
	Theme string `json:"theme,omitempty"`
	Mute  string `json:"mute,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) newGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := that.session.StartNewGame(r.Context(), req.Mode, req.Difficulty)
	if err != nil {
		if errors.Is(err, apperror.ErrUnknownMode) || errors.Is(err, apperror.ErrUnknownTier) {
			that.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		that.logger.Error("failed to start game", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to start game")

		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

// move applies a cell for the current mark. A refused move (occupied
// cell, stale click, finished game) is not an error: the response just
// carries applied=false and the unchanged state.
func (that *handlers) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	applied := that.session.ApplyMove(r.Context(), req.Cell)

	that.writeJSON(w, http.StatusOK, moveResponse{
		Applied: applied,
		Game:    that.session.CurrentGame(),
	})
}

func (that *handlers) resume(w http.ResponseWriter, r *http.Request) {
	game, err := that.session.ResumeGame(r.Context())
	if err != nil {
		if errors.Is(err, apperror.ErrNoSavedGame) {
			that.writeError(w, http.StatusNotFound, "no saved game")
			return
		}

		that.logger.Error("failed to resume game", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to resume game")

		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) gameState(w http.ResponseWriter, r *http.Request) {
	settings, err := that.session.CurrentSettings()
	if err != nil {
		that.writeError(w, http.StatusNotFound, "no active game")
		return
	}

	that.writeJSON(w, http.StatusOK, gameStateResponse{
		Game:     that.session.CurrentGame(),
		Settings: settings,
	})
}

func (that *handlers) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := that.stats.Aggregate(r.Context())
	if err != nil {
		that.logger.Error("failed to load stats", "error", err)
		that.writeError(w, http.StatusInternalServerError, "failed to load stats")

		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *handlers) getPreferences(w http.ResponseWriter, r *http.Request) {
	theme, err := that.prefs.Theme(r.Context())
	if err != nil {
		that.logger.Error("failed to load theme", "error", err)
	}

	mute, err := that.prefs.Mute(r.Context())
	if err != nil {
		that.logger.Error("failed to load mute", "error", err)
	}

	that.writeJSON(w, http.StatusOK, preferencesPayload{Theme: theme, Mute: mute})
}

func (that *handlers) putPreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Theme != "" {
		if err := that.prefs.SetTheme(r.Context(), req.Theme); err != nil {
			that.logger.Error("failed to save theme", "error", err)
			that.writeError(w, http.StatusInternalServerError, "failed to save preferences")

			return
		}
	}

	if req.Mute != "" {
		if err := that.prefs.SetMute(r.Context(), req.Mute); err != nil {
			that.logger.Error("failed to save mute", "error", err)
			that.writeError(w, http.StatusInternalServerError, "failed to save preferences")

			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}
