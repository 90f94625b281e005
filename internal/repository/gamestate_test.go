package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
	"github.com/oarisur/TicTacToe-PerfectPlay/testing/suite"
)

func TestGameStateRepository_SaveAndLoad(t *testing.T) {
	t.Run("Saved game round-trips", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameStateRepo := NewGameStateRepository(st.Storage)

		// Given: a mid-match bot game
		game := entity.NewGame("g1", entity.ModeWithBot, entity.HardDifficulty)
		game.HumanMark, game.BotMark = entity.PlayerX, entity.PlayerO
		game.Board[0] = entity.PlayerX
		game.Board[4] = entity.PlayerO
		game.Turn = entity.PlayerX

		// When: saving and loading it back
		require.NoError(t, gameStateRepo.Save(ctx, game))
		loaded, err := gameStateRepo.Load(ctx)

		// Then: board, turn and settings are reconstructed exactly
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, game, loaded)
	})

	t.Run("Load without a save returns nil", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameStateRepo := NewGameStateRepository(st.Storage)

		// When: loading from an empty slot
		loaded, err := gameStateRepo.Load(ctx)

		// Then: no game and no error
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Malformed payload degrades to no saved game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameStateRepo := NewGameStateRepository(st.Storage)

		// Given: garbage under the saved-game key
		require.NoError(t, st.Storage.Set(ctx, "game:current", "{not json", 0).Err())

		// When: loading
		loaded, err := gameStateRepo.Load(ctx)

		// Then: treated as missing, never an error
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Saving twice keeps only the last game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameStateRepo := NewGameStateRepository(st.Storage)

		first := entity.NewGame("g1", entity.ModePvP, "")
		second := entity.NewGame("g2", entity.ModePvP, "")

		// When: saving two games into the single slot
		require.NoError(t, gameStateRepo.Save(ctx, first))
		require.NoError(t, gameStateRepo.Save(ctx, second))

		loaded, err := gameStateRepo.Load(ctx)

		// Then: last write wins
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "g2", loaded.ID)
	})
}

func TestGameStateRepository_Clear(t *testing.T) {
	ctx, st := suite.New(t)

	gameStateRepo := NewGameStateRepository(st.Storage)

	// Given: a saved game
	game := entity.NewGame("g1", entity.ModePvP, "")
	require.NoError(t, gameStateRepo.Save(ctx, game))

	// When: clearing the slot
	require.NoError(t, gameStateRepo.Clear(ctx))

	// Then: nothing is left to load
	loaded, err := gameStateRepo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPreferencesRepository(t *testing.T) {
	t.Run("Defaults come back before anything is set", func(t *testing.T) {
		ctx, st := suite.New(t)

		prefsRepo := NewPreferencesRepository(st.Storage)

		theme, err := prefsRepo.Theme(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultTheme, theme)

		mute, err := prefsRepo.Mute(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultMute, mute)
	})

	t.Run("Set values round-trip as bare strings", func(t *testing.T) {
		ctx, st := suite.New(t)

		prefsRepo := NewPreferencesRepository(st.Storage)

		// When: storing both preferences
		require.NoError(t, prefsRepo.SetTheme(ctx, "dark"))
		require.NoError(t, prefsRepo.SetMute(ctx, "on"))

		// Then: they come back verbatim, stored as plain strings
		theme, err := prefsRepo.Theme(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)

		raw, err := st.Storage.Get(ctx, "pref:theme").Result()
		require.NoError(t, err)
		assert.Equal(t, "dark", raw)

		mute, err := prefsRepo.Mute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "on", mute)
	})
}
