package main

import (
	"context"
	"sync"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
)

// memorySavedSlot holds the saved game in memory; a CLI run has nothing
// to resume across processes.
type memorySavedSlot struct {
	mu   sync.Mutex
	game *entity.Game
}

func newMemorySavedSlot() *memorySavedSlot {
	return &memorySavedSlot{}
}

func (that *memorySavedSlot) Save(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	saved := *game
	that.game = &saved

	return nil
}

func (that *memorySavedSlot) Load(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, nil
	}

	saved := *that.game

	return &saved, nil
}

func (that *memorySavedSlot) Clear(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = nil

	return nil
}

// memoryStatsRepo keeps the run's score in memory.
type memoryStatsRepo struct {
	mu       sync.Mutex
	counters map[string]map[string]entity.Counter
}

func newMemoryStatsRepo() *memoryStatsRepo {
	return &memoryStatsRepo{
		counters: map[string]map[string]entity.Counter{},
	}
}

func (that *memoryStatsRepo) AddOutcome(_ context.Context, mode, bucket, outcome string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.counters[mode] == nil {
		that.counters[mode] = map[string]entity.Counter{}
	}

	counter := that.counters[mode][bucket]
	counter.Add(outcome)
	that.counters[mode][bucket] = counter

	return nil
}

func (that *memoryStatsRepo) Aggregate(_ context.Context) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := entity.NewStats()

	for bucket, counter := range that.counters[entity.ModeWithBot] {
		stats.Bot[bucket] = counter
		stats.BotTotal.Wins += counter.Wins
		stats.BotTotal.Losses += counter.Losses
		stats.BotTotal.Draws += counter.Draws
	}

	for bucket, counter := range that.counters[entity.ModePvP] {
		stats.PvP[bucket] = counter
	}

	return stats, nil
}
