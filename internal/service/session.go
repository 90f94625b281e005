package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/engine"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

type gameStateRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Load(ctx context.Context) (*entity.Game, error)
	Clear(ctx context.Context) error
}

type botChooser interface {
	ChooseCell(game *entity.Game) (int, error)
}

type outcomeRecorder interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
}

// GameSession is the turn controller: it owns the one active game, applies
// moves, checks terminal conditions after each move, schedules the bot's
// reply and keeps the saved-game slot and the scoreboard up to date.
// All collaborators are injected at construction; the session is the single
// composition point between the input side and the presentation side.
type GameSession struct {
	logger    *slog.Logger
	bot       botChooser
	stats     outcomeRecorder
	saved     gameStateRepo
	presenter Presenter

	// pause before the bot commits its move, purely for pacing; zero
	// applies the bot's reply synchronously
	botDelay time.Duration

	mu         sync.Mutex
	game       *entity.Game
	generation uint64
	botTimer   *time.Timer
}

func NewGameSession(logger *slog.Logger, bot botChooser, stats outcomeRecorder, saved gameStateRepo, presenter Presenter, botDelay time.Duration) *GameSession {
	return &GameSession{
		logger:    logger.With("component", "session"),
		bot:       bot,
		stats:     stats,
		saved:     saved,
		presenter: presenter,
		botDelay:  botDelay,
	}
}

// StartNewGame resets to a fresh board with X to move. In bot mode mark
// ownership is dealt at random, so the bot opens roughly half the games
// and moves immediately when it does. Any pending bot move from a
// previous game is discarded.
func (that *GameSession) StartNewGame(ctx context.Context, mode, difficulty string) (*entity.Game, error) {
	if mode != entity.ModeWithBot && mode != entity.ModePvP {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownMode, mode)
	}

	if mode == entity.ModeWithBot {
		switch difficulty {
		case entity.EasyDifficulty, entity.MediumDifficulty, entity.HardDifficulty:
		default:
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownTier, difficulty)
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.discardPendingBotMove()
	that.game = entity.NewGame(uuid.NewString(), mode, difficulty)

	that.presenter.ReflectSettings(mode, difficulty)
	that.presenter.RenderBoard(that.game.Board)
	that.presenter.Announce(fmt.Sprintf("%s to move", that.game.Turn), that.game.Turn)

	that.persist(ctx)

	if that.game.BotToMove() {
		that.scheduleBotMove(ctx)
	}

	return that.snapshot(), nil
}

// ApplyMove plays the current mark at the cell. It reports false without
// touching anything when there is no active game, the cell is occupied or
// out of range, or the click lands while the bot's reply is pending -
// stale UI events are expected and harmless.
func (that *GameSession) ApplyMove(ctx context.Context, cell int) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil || !that.game.IsOngoing() {
		return false
	}

	if that.game.BotToMove() {
		return false
	}

	return that.applyMark(ctx, cell, that.game.Turn)
}

// ResumeGame restores the saved game and re-activates the session. A
// missing, corrupt or already finished save yields ErrNoSavedGame. If the
// restored mover is the bot, its move is scheduled exactly as on a fresh
// start.
func (that *GameSession) ResumeGame(ctx context.Context) (*entity.Game, error) {
	savedGame, err := that.saved.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	if savedGame == nil || !savedGame.IsOngoing() {
		return nil, apperror.ErrNoSavedGame
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.discardPendingBotMove()
	that.game = savedGame

	that.presenter.ReflectSettings(savedGame.Mode, savedGame.Difficulty)
	that.presenter.RenderBoard(savedGame.Board)
	that.presenter.Announce(fmt.Sprintf("%s to move", savedGame.Turn), savedGame.Turn)

	if that.game.BotToMove() {
		that.scheduleBotMove(ctx)
	}

	return that.snapshot(), nil
}

// CheckSavedGame peeks at the saved-game slot without activating it and
// lets the presenter offer a resume to the user.
func (that *GameSession) CheckSavedGame(ctx context.Context) (*entity.Game, error) {
	savedGame, err := that.saved.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	if savedGame == nil || !savedGame.IsOngoing() {
		return nil, apperror.ErrNoSavedGame
	}

	that.presenter.PromptResume(savedGame)

	return savedGame, nil
}

// CurrentGame returns a copy of the active game, or nil.
func (that *GameSession) CurrentGame() *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *GameSession) CurrentSettings() (entity.Settings, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.Settings{}, apperror.ErrNoActiveGame
	}

	return that.game.Settings(), nil
}

// Stop discards any pending bot move. Safe to call more than once.
func (that *GameSession) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.discardPendingBotMove()
}

// applyMark is the single mutation path for human and bot moves alike.
// Caller holds the lock.
func (that *GameSession) applyMark(ctx context.Context, cell int, mark string) bool {
	if !that.game.Board.Place(cell, mark) {
		return false
	}

	if line, ok := engine.WinningLine(that.game.Board, mark); ok {
		that.game.FinishWon(mark, line)
		that.finishGame(ctx, fmt.Sprintf("%s wins", mark))

		return true
	}

	if engine.IsDraw(that.game.Board) {
		that.game.FinishDrawn()
		that.finishGame(ctx, "it's a draw")

		return true
	}

	that.game.ToggleTurn()

	that.presenter.RenderBoard(that.game.Board)
	that.presenter.Announce(fmt.Sprintf("%s to move", that.game.Turn), that.game.Turn)

	that.persist(ctx)

	if that.game.BotToMove() {
		that.scheduleBotMove(ctx)
	}

	return true
}

func (that *GameSession) finishGame(ctx context.Context, message string) {
	that.presenter.RenderBoard(that.game.Board)
	that.presenter.ShowOutcome(message, that.game.Winner, that.game.WinningLine)

	if err := that.stats.RecordOutcome(ctx, that.game); err != nil {
		that.logger.Error("failed to record outcome", "error", err)
	}

	if err := that.saved.Clear(ctx); err != nil {
		that.logger.Error("failed to clear saved game", "error", err)
	}
}

// scheduleBotMove arms the pacing timer. The generation counter makes a
// fired timer a no-op when a new game started or the session was resumed
// in the meantime: the pending move must never land on a stale board.
// Caller holds the lock.
func (that *GameSession) scheduleBotMove(ctx context.Context) {
	if that.botDelay == 0 {
		that.playBotMove(ctx)
		return
	}

	that.presenter.SetInteractivity(false)

	generation := that.generation
	timerCtx := context.WithoutCancel(ctx)

	that.botTimer = time.AfterFunc(that.botDelay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if generation != that.generation {
			return
		}

		that.playBotMove(timerCtx)
		that.presenter.SetInteractivity(true)
	})
}

// playBotMove asks the policy for a cell and applies it through the same
// path as a human move. Caller holds the lock.
func (that *GameSession) playBotMove(ctx context.Context) {
	if that.game == nil || !that.game.BotToMove() {
		return
	}

	cell, err := that.bot.ChooseCell(that.game)
	if err != nil {
		that.logger.Error("bot failed to choose a cell", "error", err)
		return
	}

	if !that.applyMark(ctx, cell, that.game.BotMark) {
		that.logger.Error("bot move was refused", "cell", cell)
	}
}

// discardPendingBotMove bumps the generation and stops the timer if it is
// still waiting. Caller holds the lock.
func (that *GameSession) discardPendingBotMove() {
	that.generation++

	if that.botTimer != nil {
		that.botTimer.Stop()
		that.botTimer = nil
	}
}

func (that *GameSession) persist(ctx context.Context) {
	if err := that.saved.Save(ctx, that.game); err != nil {
		that.logger.Error("failed to save game", "error", err)
	}
}

func (that *GameSession) snapshot() *entity.Game {
	if that.game == nil {
		return nil
	}

	snapshot := *that.game

	return &snapshot
}
