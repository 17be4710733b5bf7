package tracker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/progression"
)

const (
	DefaultMoodEmoji = "🙂"
	DefaultMoodLabel = "Neutral"
)

type MoodStat struct {
	Mood  string
	Count int
}

// Moods returns history in insertion order, newest first.
func (s *Service) Moods(ctx context.Context) ([]model.MoodEntry, error) {
	return s.repo.Moods(ctx)
}

// MoodsSorted returns history ordered by timestamp, newest first.
func (s *Service) MoodsSorted(ctx context.Context) ([]model.MoodEntry, error) {
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].Timestamp > moods[j].Timestamp
	})
	return moods, nil
}

// LogMood prepends an entry and grants the fixed mood XP.
func (s *Service) LogMood(ctx context.Context, mood, emoji, note string, tags []string) (model.MoodEntry, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return model.MoodEntry{}, ErrEmptyMood
	}
	if tags == nil {
		tags = []string{}
	}
	entry := model.MoodEntry{
		ID:        s.newID(),
		Emoji:     emoji,
		Mood:      mood,
		Note:      model.NoteOrNil(note),
		Tags:      append([]string{}, tags...),
		Timestamp: s.clock.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return model.MoodEntry{}, err
	}
	if err := s.repo.SaveMoods(ctx, append([]model.MoodEntry{entry}, moods...)); err != nil {
		return model.MoodEntry{}, err
	}
	if _, err := s.grantXPLocked(ctx, progression.XPForLoggingMood); err != nil {
		return entry, err
	}
	s.log.Debug().Str("mood", mood).Msg("mood logged")
	return entry, nil
}

// LogFromChipLabel logs a picker label such as "🙂 Calm".
func (s *Service) LogFromChipLabel(ctx context.Context, label, note string, tags []string) (model.MoodEntry, error) {
	emoji, mood := SplitChipLabel(label)
	return s.LogMood(ctx, mood, emoji, note, tags)
}

func SplitChipLabel(label string) (emoji, mood string) {
	parts := strings.Fields(label)
	emoji, mood = DefaultMoodEmoji, DefaultMoodLabel
	if len(parts) > 0 {
		emoji = parts[0]
	}
	if len(parts) > 1 {
		mood = parts[1]
	}
	return emoji, mood
}

// UndoLastMood drops the newest entry. XP is only taken back when adjustXP
// is set. It reports false when the history is empty.
func (s *Service) UndoLastMood(ctx context.Context, adjustXP bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return false, err
	}
	if len(moods) == 0 {
		return false, nil
	}
	if err := s.repo.SaveMoods(ctx, moods[1:]); err != nil {
		return false, err
	}
	if adjustXP {
		if _, err := s.grantXPLocked(ctx, -progression.XPForLoggingMood); err != nil {
			return true, err
		}
	}
	return true, nil
}

// ClearMoods empties the history and hands back what was removed so the
// caller can offer an undo through RestoreMoods.
func (s *Service) ClearMoods(ctx context.Context) ([]model.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveMoods(ctx, []model.MoodEntry{}); err != nil {
		return nil, err
	}
	return moods, nil
}

// RestoreMoods puts backed-up entries back behind anything logged since the
// clear. Entries keep their ids and timestamps and grant no XP, so clearing
// and restoring leaves XP where it was.
func (s *Service) RestoreMoods(ctx context.Context, backup []model.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(moods))
	for _, m := range moods {
		seen[m.ID] = struct{}{}
	}
	for _, m := range backup {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		moods = append(moods, m)
	}
	return s.repo.SaveMoods(ctx, moods)
}

// TodayMoodCount counts entries stamped since local midnight.
func (s *Service) TodayMoodCount(ctx context.Context) (int, error) {
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return 0, err
	}
	start := startOfDay(s.clock.Now()).UnixMilli()
	n := 0
	for _, m := range moods {
		if m.Timestamp >= start {
			n++
		}
	}
	return n, nil
}

// Last7DaysStats counts entries per mood label from the start of the day six
// days ago, most frequent first and ties by label.
func (s *Service) Last7DaysStats(ctx context.Context) ([]MoodStat, error) {
	moods, err := s.repo.Moods(ctx)
	if err != nil {
		return nil, err
	}
	since := startOfDay(s.clock.Now().AddDate(0, 0, -6)).UnixMilli()
	counts := make(map[string]int)
	for _, m := range moods {
		if m.Timestamp >= since {
			counts[m.Mood]++
		}
	}
	out := make([]MoodStat, 0, len(counts))
	for mood, n := range counts {
		out = append(out, MoodStat{Mood: mood, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Mood < out[j].Mood
	})
	return out, nil
}

// ShareMessage builds the share text for the most recent mood.
func (s *Service) ShareMessage(ctx context.Context) (string, bool, error) {
	moods, err := s.MoodsSorted(ctx)
	if err != nil {
		return "", false, err
	}
	if len(moods) == 0 {
		return "", false, nil
	}
	latest := moods[0]
	return "Feeling " + latest.Mood + " " + latest.Emoji + " today on my LevelUp Life journey! #LevelUpLife", true, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
