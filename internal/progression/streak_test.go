package progression

import (
	"reflect"
	"testing"

	"github.com/sandeepkv93/levelup/internal/model"
)

func quests(done, total int) []model.Quest {
	out := make([]model.Quest, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, model.Quest{ID: string(rune('a' + i)), Title: "q", IsCompleted: i < done, TargetPerDay: 1})
	}
	return out
}

func TestIsSuccessfulDay(t *testing.T) {
	cases := []struct {
		done, total int
		want        bool
	}{
		{0, 0, false},
		{0, 3, false},
		{1, 2, false},
		{3, 5, true},
		{2, 3, true},
		{5, 9, false},
		{6, 10, true},
		{4, 4, true},
	}
	for _, tc := range cases {
		if got := IsSuccessfulDay(quests(tc.done, tc.total)); got != tc.want {
			t.Fatalf("%d/%d: got %v want %v", tc.done, tc.total, got, tc.want)
		}
	}
	if got := CompletionRatio(nil); got != 0 {
		t.Fatalf("ratio with no quests = %v", got)
	}
}

func TestEvaluateStreakNewDay(t *testing.T) {
	state := model.ProgressionState{Level: 1, Streak: 2, LastActiveDate: "2026-10-17"}
	next, changed := EvaluateStreak(state, true, "2026-10-18")
	if !changed || next.Streak != 3 || next.LastActiveDate != "2026-10-18" {
		t.Fatalf("unexpected next state: %+v changed=%v", next, changed)
	}
	if !reflect.DeepEqual(next.Badges, []string{"3-day streak"}) {
		t.Fatalf("expected 3-day badge, got %v", next.Badges)
	}

	reset, _ := EvaluateStreak(next, false, "2026-10-19")
	if reset.Streak != 0 {
		t.Fatalf("failed day must reset streak, got %d", reset.Streak)
	}
	if !reflect.DeepEqual(reset.Badges, []string{"3-day streak"}) {
		t.Fatalf("badges must not be re-locked, got %v", reset.Badges)
	}
}

func TestEvaluateStreakIdempotentWithinDay(t *testing.T) {
	state := model.ProgressionState{Level: 1, Streak: 6, LastActiveDate: "2026-10-17"}
	first, changed := EvaluateStreak(state, true, "2026-10-18")
	if !changed || first.Streak != 7 {
		t.Fatalf("first evaluation: %+v", first)
	}
	second, changed := EvaluateStreak(first, true, "2026-10-18")
	if changed || second.Streak != 7 {
		t.Fatalf("second evaluation must be a no-op: %+v changed=%v", second, changed)
	}
	if !reflect.DeepEqual(first.Badges, second.Badges) {
		t.Fatalf("badges changed on repeat: %v vs %v", first.Badges, second.Badges)
	}
}

func TestUnlockBadgesAllQualifying(t *testing.T) {
	badges, added := UnlockBadges([]string{"7-day streak"}, 30)
	want := []string{"7-day streak", "3-day streak", "14-day streak", "30-day streak"}
	if !reflect.DeepEqual(badges, want) {
		t.Fatalf("got %v want %v", badges, want)
	}
	if len(added) != 3 {
		t.Fatalf("expected 3 new badges, got %v", added)
	}
	again, added := UnlockBadges(badges, 30)
	if !reflect.DeepEqual(again, want) || len(added) != 0 {
		t.Fatalf("unlock must be idempotent: %v %v", again, added)
	}
}
