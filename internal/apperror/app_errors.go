package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveGame     = errors.New("no active game")
	ErrNoSavedGame      = errors.New("no saved game")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownTier      = errors.New("unknown difficulty tier")
)
