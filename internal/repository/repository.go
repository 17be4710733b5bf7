// Package repository is the typed façade over the state store. Collections are
// always read whole and written whole; there are no per-id updates here.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/codec"
	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/storage"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type Repository struct {
	main  storage.Store
	timer storage.Store
	clock Clock
	log   zerolog.Logger
	mu    sync.Mutex
}

func New(main, timer storage.Store, clock Clock, logger zerolog.Logger) *Repository {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	return &Repository{main: main, timer: timer, clock: clock, log: logger}
}

func FromBackend(b storage.Backend, clock Clock, logger zerolog.Logger) *Repository {
	return New(b.Namespace(storage.NamespaceMain), b.Namespace(storage.NamespaceTimer), clock, logger)
}

func (r *Repository) Today() string {
	return model.DateString(r.clock.Now())
}

func (r *Repository) read(ctx context.Context, store storage.Store, key string) (string, error) {
	raw, _, err := store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return raw, nil
}

func (r *Repository) write(ctx context.Context, store storage.Store, key string, v any) error {
	encoded, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, encoded); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *Repository) Quests(ctx context.Context) ([]model.Quest, error) {
	raw, err := r.read(ctx, r.main, KeyQuests)
	if err != nil {
		return nil, err
	}
	return codec.DecodeQuests(raw), nil
}

func (r *Repository) SaveQuests(ctx context.Context, quests []model.Quest) error {
	if quests == nil {
		quests = []model.Quest{}
	}
	return r.write(ctx, r.main, KeyQuests, quests)
}

func (r *Repository) Moods(ctx context.Context) ([]model.MoodEntry, error) {
	moods, err := codec.LoadMoods(ctx, r.main)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyMoods, err)
	}
	return moods, nil
}

func (r *Repository) SaveMoods(ctx context.Context, moods []model.MoodEntry) error {
	if moods == nil {
		moods = []model.MoodEntry{}
	}
	return r.write(ctx, r.main, KeyMoods, moods)
}

func (r *Repository) Level(ctx context.Context) (int, error) {
	raw, err := r.read(ctx, r.main, KeyLevel)
	if err != nil {
		return DefaultLevel, err
	}
	return codec.DecodeInt(raw, DefaultLevel), nil
}

func (r *Repository) SaveLevel(ctx context.Context, level int) error {
	return r.write(ctx, r.main, KeyLevel, level)
}

func (r *Repository) XP(ctx context.Context) (int, error) {
	raw, err := r.read(ctx, r.main, KeyXP)
	if err != nil {
		return DefaultXP, err
	}
	return codec.DecodeInt(raw, DefaultXP), nil
}

func (r *Repository) SaveXP(ctx context.Context, xp int) error {
	return r.write(ctx, r.main, KeyXP, xp)
}

// SaveLevelAndXP writes both values in one batch.
func (r *Repository) SaveLevelAndXP(ctx context.Context, level, xp int) error {
	entries, err := encodeEntries(map[string]any{KeyLevel: level, KeyXP: xp})
	if err != nil {
		return err
	}
	if err := r.main.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("write level/xp: %w", err)
	}
	return nil
}

func (r *Repository) ReminderEnabled(ctx context.Context) (bool, error) {
	raw, err := r.read(ctx, r.main, KeyReminderOn)
	if err != nil {
		return false, err
	}
	return codec.DecodeBool(raw, false), nil
}

func (r *Repository) SetReminderEnabled(ctx context.Context, on bool) error {
	return r.write(ctx, r.main, KeyReminderOn, on)
}

func (r *Repository) ReminderInterval(ctx context.Context) (int, error) {
	raw, err := r.read(ctx, r.main, KeyReminderMin)
	if err != nil {
		return model.DefaultReminderMinutes, err
	}
	return codec.DecodeInt(raw, model.DefaultReminderMinutes), nil
}

func (r *Repository) SetReminderInterval(ctx context.Context, minutes int) error {
	return r.write(ctx, r.main, KeyReminderMin, minutes)
}

func (r *Repository) Reminder(ctx context.Context) (model.ReminderConfig, error) {
	on, err := r.ReminderEnabled(ctx)
	if err != nil {
		return model.DefaultReminderConfig(), err
	}
	minutes, err := r.ReminderInterval(ctx)
	if err != nil {
		return model.DefaultReminderConfig(), err
	}
	return model.ReminderConfig{Enabled: on, IntervalMinutes: minutes}, nil
}

func (r *Repository) SaveReminder(ctx context.Context, cfg model.ReminderConfig) error {
	entries, err := encodeEntries(map[string]any{KeyReminderOn: cfg.Enabled, KeyReminderMin: cfg.IntervalMinutes})
	if err != nil {
		return err
	}
	if err := r.main.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("write reminder: %w", err)
	}
	return nil
}

func (r *Repository) Streak(ctx context.Context) (int, error) {
	raw, err := r.read(ctx, r.main, KeyStreak)
	if err != nil {
		return 0, err
	}
	return codec.DecodeInt(raw, 0), nil
}

func (r *Repository) SaveStreak(ctx context.Context, streak int) error {
	return r.write(ctx, r.main, KeyStreak, streak)
}

// LastActiveDate returns "" when no day has been evaluated.
func (r *Repository) LastActiveDate(ctx context.Context) (string, error) {
	raw, err := r.read(ctx, r.main, KeyLastActiveDate)
	if err != nil {
		return "", err
	}
	day, _ := codec.DecodeString(raw)
	return day, nil
}

func (r *Repository) SaveLastActiveDate(ctx context.Context, day string) error {
	return r.write(ctx, r.main, KeyLastActiveDate, day)
}

func (r *Repository) Badges(ctx context.Context) ([]string, error) {
	raw, err := r.read(ctx, r.main, KeyBadges)
	if err != nil {
		return nil, err
	}
	return codec.DecodeStrings(raw), nil
}

func (r *Repository) SaveBadges(ctx context.Context, badges []string) error {
	if badges == nil {
		badges = []string{}
	}
	return r.write(ctx, r.main, KeyBadges, badges)
}

// UnlockBadge appends name unless it is already present. It reports whether
// the badge was newly added.
func (r *Repository) UnlockBadge(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	badges, err := r.Badges(ctx)
	if err != nil {
		return false, err
	}
	if model.HasBadge(badges, name) {
		return false, nil
	}
	if err := r.SaveBadges(ctx, append(badges, name)); err != nil {
		return false, err
	}
	r.log.Info().Str("badge", name).Msg("badge unlocked")
	return true, nil
}

func (r *Repository) Progression(ctx context.Context) (model.ProgressionState, error) {
	var (
		state model.ProgressionState
		err   error
	)
	if state.Level, err = r.Level(ctx); err != nil {
		return state, err
	}
	if state.XP, err = r.XP(ctx); err != nil {
		return state, err
	}
	if state.Streak, err = r.Streak(ctx); err != nil {
		return state, err
	}
	if state.LastActiveDate, err = r.LastActiveDate(ctx); err != nil {
		return state, err
	}
	if state.Badges, err = r.Badges(ctx); err != nil {
		return state, err
	}
	return state, nil
}

func encodeEntries(values map[string]any) ([]storage.Entry, error) {
	out := make([]storage.Entry, 0, len(values))
	for key, v := range values {
		encoded, err := codec.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		out = append(out, storage.Entry{Key: key, Value: encoded})
	}
	return out, nil
}

// SaveProgression writes level, xp, streak, last active date and badges in
// one batch. An empty LastActiveDate leaves the stored date alone.
func (r *Repository) SaveProgression(ctx context.Context, state model.ProgressionState) error {
	values := map[string]any{
		KeyLevel:  state.Level,
		KeyXP:     state.XP,
		KeyStreak: state.Streak,
		KeyBadges: nonNilStrings(state.Badges),
	}
	if state.LastActiveDate != "" {
		values[KeyLastActiveDate] = state.LastActiveDate
	}
	entries, err := encodeEntries(values)
	if err != nil {
		return err
	}
	if err := r.main.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("write progression: %w", err)
	}
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
