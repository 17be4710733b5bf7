package codec

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/storage"
)

const (
	MoodsKey       = "moods"
	LegacyMoodsKey = "moods_list"
)

// LoadMoods reads the mood history, moving it from the legacy key first when
// only the legacy key holds data. Once the current key is populated the
// legacy branch is never taken again, so repeated calls are harmless.
//
// An undecodable legacy value is left in place rather than replaced by an
// empty history.
func LoadMoods(ctx context.Context, store storage.Store) ([]model.MoodEntry, error) {
	current, _, err := store.Get(ctx, MoodsKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(current) != "" {
		return DecodeMoods(current), nil
	}

	legacy, ok, err := store.Get(ctx, LegacyMoodsKey)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(legacy) == "" || !decode(legacy, &[]model.MoodEntry{}) {
		return []model.MoodEntry{}, nil
	}

	moods := DecodeMoods(legacy)
	encoded, err := Encode(moods)
	if err != nil {
		return nil, fmt.Errorf("encode migrated moods: %w", err)
	}
	if err := store.Set(ctx, MoodsKey, encoded); err != nil {
		return nil, fmt.Errorf("write migrated moods: %w", err)
	}
	if err := store.Delete(ctx, LegacyMoodsKey); err != nil {
		return nil, fmt.Errorf("drop legacy moods: %w", err)
	}
	return moods, nil
}
