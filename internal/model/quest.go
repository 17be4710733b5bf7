package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("model: quest title is required")
	ErrInvalidTarget = errors.New("model: quest target per day must be at least 1")
)

type Quest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	IsCompleted  bool   `json:"isCompleted"`
	TargetPerDay int    `json:"targetPerDay"`
}

func NewQuest(id, title string) Quest {
	return Quest{ID: id, Title: title, TargetPerDay: 1}
}

func ValidateQuestTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (q Quest) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return errors.New("model: quest id is required")
	}
	if err := ValidateQuestTitle(q.Title); err != nil {
		return err
	}
	if q.TargetPerDay < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, q.TargetPerDay)
	}
	return nil
}

// CountCompleted returns how many quests are done and the total.
func CountCompleted(quests []Quest) (completed, total int) {
	for _, q := range quests {
		if q.IsCompleted {
			completed++
		}
	}
	return completed, len(quests)
}

func FindQuest(quests []Quest, id string) (int, bool) {
	for i, q := range quests {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}
