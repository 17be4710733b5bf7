package progression

import "github.com/sandeepkv93/levelup/internal/model"

// SuccessThresholdPercent is the share of quests that must be complete for a
// day to extend the streak.
const SuccessThresholdPercent = 60

type Milestone struct {
	Days  int
	Badge string
}

var Milestones = []Milestone{
	{Days: 3, Badge: "3-day streak"},
	{Days: 7, Badge: "7-day streak"},
	{Days: 14, Badge: "14-day streak"},
	{Days: 30, Badge: "30-day streak"},
}

func CompletionRatio(quests []model.Quest) float64 {
	completed, total := model.CountCompleted(quests)
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

func IsSuccessfulDay(quests []model.Quest) bool {
	completed, total := model.CountCompleted(quests)
	return total > 0 && completed*100 >= SuccessThresholdPercent*total
}

// EvaluateStreak runs the once-per-day streak check. A second call on the same
// date returns the state unchanged and changed=false.
func EvaluateStreak(state model.ProgressionState, success bool, today string) (model.ProgressionState, bool) {
	next := state
	next.Badges = append([]string{}, state.Badges...)
	if state.LastActiveDate == today {
		return next, false
	}
	if success {
		next.Streak = state.Streak + 1
	} else {
		next.Streak = 0
	}
	next.LastActiveDate = today
	next.Badges, _ = UnlockBadges(next.Badges, next.Streak)
	return next, true
}

// UnlockBadges appends every milestone badge the streak qualifies for and
// reports the newly added ones. Existing badges are never removed.
func UnlockBadges(badges []string, streak int) ([]string, []string) {
	out := append([]string{}, badges...)
	added := make([]string, 0)
	for _, m := range Milestones {
		if streak < m.Days || model.HasBadge(out, m.Badge) {
			continue
		}
		out = append(out, m.Badge)
		added = append(added, m.Badge)
	}
	return out, added
}
