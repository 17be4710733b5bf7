package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/levelup/internal/codec"
	"github.com/sandeepkv93/levelup/internal/model"
)

var ErrInvalidSnapshot = errors.New("repository: invalid snapshot")

func (r *Repository) State(ctx context.Context) (model.AppState, error) {
	quests, err := r.Quests(ctx)
	if err != nil {
		return model.AppState{}, err
	}
	moods, err := r.Moods(ctx)
	if err != nil {
		return model.AppState{}, err
	}
	prog, err := r.Progression(ctx)
	if err != nil {
		return model.AppState{}, err
	}
	reminder, err := r.Reminder(ctx)
	if err != nil {
		return model.AppState{}, err
	}
	state := model.AppState{
		Quests:      quests,
		Level:       prog.Level,
		XP:          prog.XP,
		Moods:       moods,
		ReminderOn:  reminder.Enabled,
		ReminderMin: reminder.IntervalMinutes,
		Streak:      prog.Streak,
		Badges:      prog.Badges,
	}
	if prog.LastActiveDate != "" {
		day := prog.LastActiveDate
		state.LastActiveDate = &day
	}
	return state, nil
}

// Export serialises the main namespace as one JSON document. The focus
// counter is not part of the snapshot.
func (r *Repository) Export(ctx context.Context) (string, error) {
	state, err := r.State(ctx)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	out, err := codec.EncodeAppState(state)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return out, nil
}

// Import replaces every main key from blob in one batch. Nothing is written
// when the blob is malformed or fails validation. A missing or null
// lastActiveDate keeps the stored date.
func (r *Repository) Import(ctx context.Context, blob string) error {
	state, err := codec.DecodeAppState(blob)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	values := map[string]any{
		KeyQuests:      state.Quests,
		KeyMoods:       state.Moods,
		KeyLevel:       state.Level,
		KeyXP:          state.XP,
		KeyReminderOn:  state.ReminderOn,
		KeyReminderMin: state.ReminderMin,
		KeyStreak:      state.Streak,
		KeyBadges:      state.Badges,
	}
	if state.LastActiveDate != nil {
		values[KeyLastActiveDate] = *state.LastActiveDate
	}
	entries, err := encodeEntries(values)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.main.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	r.log.Info().Int("quests", len(state.Quests)).Int("moods", len(state.Moods)).Msg("state imported")
	return nil
}
