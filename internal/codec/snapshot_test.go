package codec

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeAppStateRoundTrip(t *testing.T) {
	raw := `{"quests":[{"id":"q1","title":"Read","isCompleted":false,"targetPerDay":1}],"level":3,"xp":20,` +
		`"moods":[{"id":"m1","emoji":"😄","mood":"Happy","note":null,"tags":["work"],"timestamp":42}],` +
		`"reminderOn":true,"reminderMin":30,"streak":2,"lastActiveDate":"2026-10-17","badges":["3-day streak"]}`
	state, err := DecodeAppState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Level != 3 || state.XP != 20 || state.Streak != 2 || !state.ReminderOn || state.ReminderMin != 30 {
		t.Fatalf("unexpected scalars: %+v", state)
	}
	if state.LastActiveDate == nil || *state.LastActiveDate != "2026-10-17" {
		t.Fatalf("unexpected last active date: %v", state.LastActiveDate)
	}
	out, err := EncodeAppState(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != raw {
		t.Fatalf("snapshot did not round-trip\n got: %s\nwant: %s", out, raw)
	}
}

func TestDecodeAppStateOptionalLastActiveDate(t *testing.T) {
	raw := `{"quests":[],"level":1,"xp":0,"moods":[],"reminderOn":false,"reminderMin":60,"streak":0,"badges":[]}`
	state, err := DecodeAppState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.LastActiveDate != nil {
		t.Fatalf("expected nil last active date, got %q", *state.LastActiveDate)
	}
}

func TestDecodeAppStateRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"garbage":   "definitely not json",
		"array":     `[1,2,3]`,
		"wrongType": `{"quests":"nope","level":1,"xp":0,"moods":[],"reminderOn":false,"reminderMin":60,"streak":0,"badges":[]}`,
		"missing":   `{"quests":[],"level":1}`,
	}
	for name, raw := range cases {
		_, err := DecodeAppState(raw)
		if !errors.Is(err, ErrMalformedSnapshot) {
			t.Fatalf("%s: expected ErrMalformedSnapshot, got %v", name, err)
		}
	}

	_, err := DecodeAppState(`{"quests":[],"level":1}`)
	if err == nil || !strings.Contains(err.Error(), "badges") {
		t.Fatalf("expected missing field names in error, got %v", err)
	}
}
