package progression

import "testing"

func TestXPRequired(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{-3, 100},
		{0, 100},
		{1, 100},
		{2, 150},
		{3, 200},
		{10, 550},
	}
	for _, tc := range cases {
		if got := XPRequired(tc.level); got != tc.want {
			t.Fatalf("XPRequired(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
	for level := 1; level < 200; level++ {
		if XPRequired(level+1) <= XPRequired(level) {
			t.Fatalf("XPRequired not strictly increasing at %d", level)
		}
		if XPRequired(level) != 100+50*(level-1) {
			t.Fatalf("XPRequired(%d) off formula", level)
		}
	}
}

func TestGrantXPExactRequirementLevelsUpOnce(t *testing.T) {
	for level := 1; level <= 20; level++ {
		gotLevel, gotXP := GrantXP(level, 0, XPRequired(level))
		if gotLevel != level+1 || gotXP != 0 {
			t.Fatalf("level %d: got (%d,%d), want (%d,0)", level, gotLevel, gotXP, level+1)
		}
	}
}

func TestGrantXPMultiLevel(t *testing.T) {
	// 100 + 150 + 200 = 450 covers three levels, 5 left over.
	level, xp := GrantXP(1, 0, 455)
	if level != 4 || xp != 5 {
		t.Fatalf("got (%d,%d), want (4,5)", level, xp)
	}
}

func TestGrantXPPositiveDeltasPreserveInvariants(t *testing.T) {
	deltas := []int{0, 1, 10, 49, 99, 100, 101, 250, 999, 5000}
	starts := [][2]int{{1, 0}, {1, 90}, {3, 199}, {7, 0}, {12, 300}}
	for _, s := range starts {
		for _, d := range deltas {
			level, xp := GrantXP(s[0], s[1], d)
			if xp < 0 || xp >= XPRequired(level) {
				t.Fatalf("start %v delta %d: xp %d out of range for level %d", s, d, xp, level)
			}
			if got, want := EffectiveXP(level, xp), EffectiveXP(s[0], s[1])+d; got != want {
				t.Fatalf("start %v delta %d: effective xp %d, want %d", s, d, got, want)
			}
		}
	}
}

func TestGrantXPNegativeNeverBorrowsLevel(t *testing.T) {
	level, xp := GrantXP(3, 5, -10)
	if level != 3 || xp != 0 {
		t.Fatalf("got (%d,%d), want (3,0)", level, xp)
	}
	level, xp = GrantXP(0, 0, -1)
	if level != 1 || xp != 0 {
		t.Fatalf("floor: got (%d,%d), want (1,0)", level, xp)
	}
}

func TestGrantXPMoodUndoRestores(t *testing.T) {
	level, xp := GrantXP(2, 145, XPForLoggingMood)
	if level != 3 || xp != 5 {
		t.Fatalf("grant crossed level: got (%d,%d)", level, xp)
	}
	// Undo right after a level-up floors at the new level.
	level, xp = GrantXP(level, xp, -XPForLoggingMood)
	if level != 3 || xp != 0 {
		t.Fatalf("undo across level: got (%d,%d)", level, xp)
	}

	level, xp = GrantXP(1, 30, XPForLoggingMood)
	level, xp = GrantXP(level, xp, -XPForLoggingMood)
	if level != 1 || xp != 30 {
		t.Fatalf("undo within level: got (%d,%d)", level, xp)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(1, 50); got != 0.5 {
		t.Fatalf("Progress(1,50) = %v", got)
	}
	if got := Progress(2, 0); got != 0 {
		t.Fatalf("Progress(2,0) = %v", got)
	}
	if got := Progress(1, 500); got != 1 {
		t.Fatalf("Progress clamps at 1, got %v", got)
	}
}
