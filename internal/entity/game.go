package entity

import "math/rand"

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	ModeWithBot = "bot"
	ModePvP     = "pvp"

	EasyDifficulty   = "easy"
	MediumDifficulty = "medium"
	HardDifficulty   = "hard"

	PlayerTie = "-"
)

// Game represents one match: the board, whose turn it is, how far the
// state machine has progressed and which settings the match was started
// with. X always makes the first move of a fresh game.
type Game struct {
	ID          string  `json:"id"`
	Board       Board   `json:"board"`
	Turn        string  `json:"player_turn"`
	Winner      string  `json:"winner,omitempty"`
	Status      string  `json:"status"`
	Mode        string  `json:"mode"`
	Difficulty  string  `json:"difficulty,omitempty"`
	HumanMark   string  `json:"human_mark,omitempty"`
	BotMark     string  `json:"bot_mark,omitempty"`
	WinningLine *[3]int `json:"winning_line,omitempty"`
}

func NewGame(id, mode, difficulty string) *Game {
	game := &Game{
		ID:     id,
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
		Mode:   mode,
	}

	if mode == ModeWithBot {
		game.Difficulty = difficulty
		game.HumanMark, game.BotMark = randomMarks()
	}

	return game
}

// randomMarks deals out X and O between the human and the bot, so the
// bot opens the game about half the time.
func randomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDrawn() bool {
	return that.Status == StatusDrawn
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDrawn()
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeWithBot
}

// BotToMove reports whether the bot owns the mark that moves next.
func (that *Game) BotToMove() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ToggleTurn() {
	that.Turn = OpposingMark(that.Turn)
}

// FinishWon moves the state machine to won and freezes the turn.
func (that *Game) FinishWon(winner string, line [3]int) {
	that.Status = StatusWon
	that.Winner = winner
	that.WinningLine = &line
	that.Turn = EmptyCell
}

// FinishDrawn moves the state machine to drawn.
func (that *Game) FinishDrawn() {
	that.Status = StatusDrawn
	that.Winner = PlayerTie
	that.Turn = EmptyCell
}

// Settings is the read-only snapshot handed to external callers.
type Settings struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty,omitempty"`
	Turn       string `json:"player_turn,omitempty"`
}

func (that *Game) Settings() Settings {
	return Settings{
		Mode:       that.Mode,
		Difficulty: that.Difficulty,
		Turn:       that.Turn,
	}
}
