package model

import (
	"errors"
	"strings"
	"time"
)

// MoodEntry is one journal line. History is kept newest-first by insertion,
// not by comparing timestamps.
type MoodEntry struct {
	ID        string   `json:"id"`
	Emoji     string   `json:"emoji"`
	Mood      string   `json:"mood"`
	Note      *string  `json:"note"`
	Tags      []string `json:"tags"`
	Timestamp int64    `json:"timestamp"`
}

func (e MoodEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: mood id is required")
	}
	if strings.TrimSpace(e.Mood) == "" {
		return errors.New("model: mood label is required")
	}
	return nil
}

func (e MoodEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

func (e MoodEntry) NoteText() string {
	if e.Note == nil {
		return ""
	}
	return *e.Note
}

// NoteOrNil keeps blank notes out of storage.
func NoteOrNil(note string) *string {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
