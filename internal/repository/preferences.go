package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Preferences are the two UI flags the rest of the system round-trips as
// bare strings, not JSON: the theme name and the mute switch.
const (
	themeKey = "pref:theme"
	muteKey  = "pref:mute"

	DefaultTheme = "light"
	DefaultMute  = "off"
)

type PreferencesRepository interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error

	Mute(ctx context.Context) (string, error)
	SetMute(ctx context.Context, mute string) error
}

type dbPreferences struct {
	client *redis.Client
}

func NewPreferencesRepository(client *redis.Client) PreferencesRepository {
	return &dbPreferences{
		client: client,
	}
}

func (that *dbPreferences) Theme(ctx context.Context) (string, error) {
	return that.get(ctx, themeKey, DefaultTheme)
}

func (that *dbPreferences) SetTheme(ctx context.Context, theme string) error {
	return that.set(ctx, themeKey, theme)
}

func (that *dbPreferences) Mute(ctx context.Context) (string, error) {
	return that.get(ctx, muteKey, DefaultMute)
}

func (that *dbPreferences) SetMute(ctx context.Context, mute string) error {
	return that.set(ctx, muteKey, mute)
}

func (that *dbPreferences) get(ctx context.Context, key, fallback string) (string, error) {
	value, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return fallback, nil
	}

	if err != nil {
		return fallback, fmt.Errorf("failed to get preference %s: %w", key, err)
	}

	return value, nil
}

func (that *dbPreferences) set(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}

	return nil
}
