package model

import "time"

const DateLayout = "2006-01-02"

// ProgressionState is the player's level, xp, streak and earned badges.
// LastActiveDate is empty when no day has been evaluated yet.
type ProgressionState struct {
	Level          int
	XP             int
	Streak         int
	LastActiveDate string
	Badges         []string
}

func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func HasBadge(badges []string, name string) bool {
	for _, b := range badges {
		if b == name {
			return true
		}
	}
	return false
}
