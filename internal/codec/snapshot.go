package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
)

var ErrMalformedSnapshot = errors.New("codec: malformed snapshot")

// wireState mirrors model.AppState with pointers so missing fields can be
// told apart from zero values.
type wireState struct {
	Quests         *[]model.Quest     `json:"quests"`
	Level          *int               `json:"level"`
	XP             *int               `json:"xp"`
	Moods          *[]model.MoodEntry `json:"moods"`
	ReminderOn     *bool              `json:"reminderOn"`
	ReminderMin    *int               `json:"reminderMin"`
	Streak         *int               `json:"streak"`
	LastActiveDate *string            `json:"lastActiveDate"`
	Badges         *[]string          `json:"badges"`
}

func EncodeAppState(s model.AppState) (string, error) {
	if s.Quests == nil {
		s.Quests = []model.Quest{}
	}
	if s.Moods == nil {
		s.Moods = []model.MoodEntry{}
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	return Encode(s)
}

// DecodeAppState is strict: any malformed JSON or missing required field
// fails the whole snapshot. lastActiveDate is the only optional field.
func DecodeAppState(raw string) (model.AppState, error) {
	if strings.TrimSpace(raw) == "" {
		return model.AppState{}, fmt.Errorf("%w: empty input", ErrMalformedSnapshot)
	}
	var w wireState
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	missing := make([]string, 0)
	if w.Quests == nil {
		missing = append(missing, "quests")
	}
	if w.Level == nil {
		missing = append(missing, "level")
	}
	if w.XP == nil {
		missing = append(missing, "xp")
	}
	if w.Moods == nil {
		missing = append(missing, "moods")
	}
	if w.ReminderOn == nil {
		missing = append(missing, "reminderOn")
	}
	if w.ReminderMin == nil {
		missing = append(missing, "reminderMin")
	}
	if w.Streak == nil {
		missing = append(missing, "streak")
	}
	if w.Badges == nil {
		missing = append(missing, "badges")
	}
	if len(missing) > 0 {
		return model.AppState{}, fmt.Errorf("%w: missing %s", ErrMalformedSnapshot, strings.Join(missing, ", "))
	}

	quests := *w.Quests
	for i := range quests {
		if quests[i].TargetPerDay < 1 {
			quests[i].TargetPerDay = 1
		}
	}
	moods := *w.Moods
	for i := range moods {
		if moods[i].Tags == nil {
			moods[i].Tags = []string{}
		}
	}
	return model.AppState{
		Quests:         quests,
		Level:          *w.Level,
		XP:             *w.XP,
		Moods:          moods,
		ReminderOn:     *w.ReminderOn,
		ReminderMin:    *w.ReminderMin,
		Streak:         *w.Streak,
		LastActiveDate: w.LastActiveDate,
		Badges:         *w.Badges,
	}, nil
}
