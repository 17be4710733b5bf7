package model

import (
	"errors"
	"testing"
)

func TestNewQuestDefaults(t *testing.T) {
	q := NewQuest("q-1", "Walk 5,000 steps")
	if q.IsCompleted || q.TargetPerDay != 1 {
		t.Fatalf("unexpected quest defaults: %+v", q)
	}
	if err := q.Validate(); err != nil {
		t.Fatalf("expected valid quest, got %v", err)
	}
}

func TestQuestValidate(t *testing.T) {
	q := NewQuest("q-1", "   ")
	if err := q.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	q.Title = "Read"
	q.TargetPerDay = 0
	if err := q.Validate(); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	q.TargetPerDay = 1
	q.ID = ""
	if err := q.Validate(); err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestCountCompletedAndFind(t *testing.T) {
	quests := []Quest{
		{ID: "a", Title: "A", IsCompleted: true, TargetPerDay: 1},
		{ID: "b", Title: "B", TargetPerDay: 1},
		{ID: "c", Title: "C", IsCompleted: true, TargetPerDay: 1},
	}
	done, total := CountCompleted(quests)
	if done != 2 || total != 3 {
		t.Fatalf("unexpected counts: done=%d total=%d", done, total)
	}
	if i, ok := FindQuest(quests, "b"); !ok || i != 1 {
		t.Fatalf("expected b at 1, got %d ok=%v", i, ok)
	}
	if _, ok := FindQuest(quests, "zzz"); ok {
		t.Fatal("expected missing id")
	}
}
