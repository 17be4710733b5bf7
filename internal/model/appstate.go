package model

import (
	"errors"
	"fmt"
)

var ErrInvalidAppState = errors.New("model: invalid app state")

// AppState is the export/import wire format. It is assembled on demand and
// never persisted as one value.
type AppState struct {
	Quests         []Quest     `json:"quests"`
	Level          int         `json:"level"`
	XP             int         `json:"xp"`
	Moods          []MoodEntry `json:"moods"`
	ReminderOn     bool        `json:"reminderOn"`
	ReminderMin    int         `json:"reminderMin"`
	Streak         int         `json:"streak"`
	LastActiveDate *string     `json:"lastActiveDate"`
	Badges         []string    `json:"badges"`
}

func (s AppState) Validate() error {
	if s.Level < 1 {
		return fmt.Errorf("%w: level %d", ErrInvalidAppState, s.Level)
	}
	if s.XP < 0 {
		return fmt.Errorf("%w: xp %d", ErrInvalidAppState, s.XP)
	}
	if s.Streak < 0 {
		return fmt.Errorf("%w: streak %d", ErrInvalidAppState, s.Streak)
	}
	if s.ReminderMin <= 0 {
		return fmt.Errorf("%w: reminder interval %d", ErrInvalidAppState, s.ReminderMin)
	}
	if s.LastActiveDate != nil && !ValidDate(*s.LastActiveDate) {
		return fmt.Errorf("%w: last active date %q", ErrInvalidAppState, *s.LastActiveDate)
	}
	for i, q := range s.Quests {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: quest %d: %v", ErrInvalidAppState, i, err)
		}
	}
	for i, m := range s.Moods {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: mood %d: %v", ErrInvalidAppState, i, err)
		}
	}
	return nil
}
