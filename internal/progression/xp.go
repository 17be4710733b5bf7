// Package progression holds the XP, level, streak and badge rules. It does no
// I/O: callers read state from the repository, pass it in and persist what
// comes back.
package progression

const (
	// BaseXP is the requirement for leaving level 1.
	BaseXP = 100
	// XPPerLevel is added to the requirement for every level above 1.
	XPPerLevel = 50

	XPForLoggingMood = 10
)

// XPRequired returns the XP needed to go from level to level+1.
func XPRequired(level int) int {
	steps := level - 1
	if steps < 0 {
		steps = 0
	}
	return BaseXP + steps*XPPerLevel
}

// GrantXP adds delta to xp and rolls over as many levels as it covers.
// Negative deltas never borrow from the level: xp is floored at zero at the
// current level.
func GrantXP(level, xp, delta int) (int, int) {
	newLevel := level
	if newLevel < 1 {
		newLevel = 1
	}
	newXP := xp + delta
	for newXP >= XPRequired(newLevel) {
		newXP -= XPRequired(newLevel)
		newLevel++
	}
	if newXP < 0 {
		newXP = 0
	}
	return newLevel, newXP
}

// EffectiveXP is the total XP represented by a (level, xp) pair.
func EffectiveXP(level, xp int) int {
	total := xp
	for l := 1; l < level; l++ {
		total += XPRequired(l)
	}
	return total
}

// Progress is the fraction of the current level already earned, in [0,1].
func Progress(level, xp int) float64 {
	need := XPRequired(level)
	if xp <= 0 {
		return 0
	}
	if xp >= need {
		return 1
	}
	return float64(xp) / float64(need)
}
