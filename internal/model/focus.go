package model

// FocusSessionCounter is a tagged daily counter: the count only applies to
// Day and reads as zero on any other date.
type FocusSessionCounter struct {
	Day   string
	Count int
}

func (c FocusSessionCounter) CountOn(today string) int {
	if c.Day != today || c.Count < 0 {
		return 0
	}
	return c.Count
}

func (c FocusSessionCounter) Bump(today string) FocusSessionCounter {
	return FocusSessionCounter{Day: today, Count: c.CountOn(today) + 1}
}
