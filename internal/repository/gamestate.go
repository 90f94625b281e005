package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

// currentGameKey is the single saved-game slot: only one session is ever
// active, so the save contract is one key, last write wins.
const currentGameKey = "game:current"

type GameStateRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Load(ctx context.Context) (*entity.Game, error)
	Clear(ctx context.Context) error
}

type dbGameState struct {
	client *redis.Client
}

func NewGameStateRepository(client *redis.Client) GameStateRepository {
	return &dbGameState{
		client: client,
	}
}

func (that *dbGameState) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, currentGameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

// Load returns the saved game, or nil when there is none. A payload that
// no longer parses counts as "none": a corrupt save must degrade to a
// fresh game, never block the app.
func (that *dbGameState) Load(ctx context.Context) (*entity.Game, error) {
	response, err := that.client.Get(ctx, currentGameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get saved game: %w", err)
	}

	var savedGame entity.Game
	if err = json.Unmarshal([]byte(response), &savedGame); err != nil {
		return nil, nil
	}

	return &savedGame, nil
}

func (that *dbGameState) Clear(ctx context.Context) error {
	if err := that.client.Del(ctx, currentGameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete saved game: %w", err)
	}

	return nil
}
