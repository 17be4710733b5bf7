package tracker

import (
	"context"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/progression"
)

// Dashboard is everything the home screen shows in one read.
type Dashboard struct {
	Level         int
	XP            int
	XPRequired    int
	LevelProgress float64
	Streak        int
	Badges        []string
	FocusToday    int
	Quests        QuestProgress
	MoodsToday    int
	Reminder      model.ReminderConfig
	Quote         string
}

func (s *Service) Snapshot(ctx context.Context) (Dashboard, error) {
	prog, err := s.repo.Progression(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	focus, err := s.repo.FocusSessionsToday(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	quests, err := s.QuestProgress(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	moods, err := s.TodayMoodCount(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	reminder, err := s.repo.Reminder(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Level:         prog.Level,
		XP:            prog.XP,
		XPRequired:    progression.XPRequired(prog.Level),
		LevelProgress: progression.Progress(prog.Level, prog.XP),
		Streak:        prog.Streak,
		Badges:        prog.Badges,
		FocusToday:    focus,
		Quests:        quests,
		MoodsToday:    moods,
		Reminder:      reminder,
		Quote:         s.catalog.QuoteFor(s.clock.Now()),
	}, nil
}
