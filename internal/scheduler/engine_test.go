package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(ReminderEvent{ID: "later", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(ReminderEvent{ID: "sooner", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(ReminderEvent{
			ID:        "evt",
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(ReminderEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan ReminderEvent, timeout time.Duration) ReminderEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return ReminderEvent{}
	}
}

func TestRepeatingEventRearmsUntilCancelled(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	err := engine.Schedule(ReminderEvent{
		ID:        "hydration",
		Kind:      KindHydration,
		Title:     "Hydration Quest!",
		TriggerAt: time.Now().UTC().Add(10 * time.Millisecond),
		Every:     200 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "hydration" || second.ID != "hydration" {
		t.Fatalf("unexpected events: %s %s", first.ID, second.ID)
	}
	if !second.TriggerAt.After(first.TriggerAt) {
		t.Fatalf("repeat should move forward: %v then %v", first.TriggerAt, second.TriggerAt)
	}

	if removed := engine.Cancel("hydration"); removed != 1 {
		t.Fatalf("expected one pending event removed, got %d", removed)
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", engine.Pending())
	}
	select {
	case ev, ok := <-engine.C():
		if ok && ev.ID == "hydration" && ev.TriggerAt.After(second.TriggerAt) {
			t.Fatalf("event fired after cancel: %+v", ev)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCancelLeavesOtherEvents(t *testing.T) {
	engine := NewEngine(4)
	at := time.Now().UTC().Add(time.Hour)
	for _, id := range []string{"a", "b", "a"} {
		if err := engine.Schedule(ReminderEvent{ID: id, TriggerAt: at}); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	if removed := engine.Cancel("a"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected 1 pending, got %d", engine.Pending())
	}
	if removed := engine.Cancel("missing"); removed != 0 {
		t.Fatalf("expected nothing removed, got %d", removed)
	}
}

func TestScheduleRejectsNegativeInterval(t *testing.T) {
	engine := NewEngine(1)
	err := engine.Schedule(ReminderEvent{ID: "x", TriggerAt: time.Now(), Every: -time.Second})
	if err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}
