package update

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/repository"
	"github.com/sandeepkv93/levelup/internal/scheduler"
	"github.com/sandeepkv93/levelup/internal/storage"
	"github.com/sandeepkv93/levelup/internal/tracker"
)

type recordingNotifier struct {
	sent []Notification
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

func newTestModel(t *testing.T) (Model, *scheduler.Engine) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	repo := repository.FromBackend(backend, nil, zerolog.Nop())
	engine := scheduler.NewEngine(8)
	svc := tracker.New(repo, tracker.Options{Scheduler: engine, Logger: zerolog.Nop()})
	m := NewModel(context.Background(), svc, Options{
		Scheduler: engine,
		Config:    config.RuntimeConfig{FocusWorkMinutes: 25, FocusBreakMinutes: 5},
		Logger:    zerolog.Nop(),
	})
	return m, engine
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func space() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeySpace} }

func palette(t *testing.T, m Model, command string) Model {
	t.Helper()
	return send(t, m, runes("/"), runes(command), enter())
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.CurrentView != ViewDashboard {
		t.Fatalf("expected default view %q, got %q", ViewDashboard, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Dashboard.Level != 1 || m.Dashboard.XP != 0 {
		t.Fatalf("expected fresh progression, got level=%d xp=%d", m.Dashboard.Level, m.Dashboard.XP)
	}
	if m.Focus.RemainingSec != 25*60 {
		t.Fatalf("expected 25 minute focus block, got %d", m.Focus.RemainingSec)
	}
	if len(m.Mood.Chips) == 0 {
		t.Fatalf("expected mood chips from catalog")
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m, _ := newTestModel(t)
	next := send(t, m, runes("2"))
	if next.CurrentView != ViewQuests {
		t.Fatalf("expected quests view, got %q", next.CurrentView)
	}
	next = send(t, next, runes("4"))
	if next.CurrentView != ViewFocus {
		t.Fatalf("expected focus view, got %q", next.CurrentView)
	}
	if !strings.Contains(next.View(), "view: Focus") {
		t.Fatalf("expected header to name the focus view")
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m, _ := newTestModel(t)
	next := send(t, m, SwitchViewMsg{View: ViewMood})
	if next.CurrentView != ViewMood {
		t.Fatalf("expected mood view, got %q", next.CurrentView)
	}
	next = send(t, next, SwitchViewMsg{View: View("Unknown")})
	if next.CurrentView != ViewMood {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := newTestModel(t)
	next := send(t, m, SetStatusMsg{Text: "ready"})
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	next = send(t, next, AppErrorMsg{Err: errors.New("boom")})
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	next = send(t, next, ClearStatusMsg{})
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestQuestLifecycleThroughKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("2"), runes("a"), runes("Drink water"), enter())
	if len(m.Quests.Items) != 1 || m.Quests.Items[0].Title != "Drink water" {
		t.Fatalf("expected added quest, got %+v", m.Quests.Items)
	}
	id := m.Quests.Items[0].ID

	m = send(t, m, space())
	if !m.Quests.Items[0].IsCompleted {
		t.Fatalf("expected quest completed after space")
	}
	if m.Dashboard.Streak != 1 {
		t.Fatalf("expected streak 1 after completing the only quest, got %d", m.Dashboard.Streak)
	}

	m = send(t, m, runes("x"))
	if len(m.Quests.Items) != 0 || m.Quests.LastDeleted == nil {
		t.Fatalf("expected quest deleted with undo available")
	}
	m = send(t, m, runes("u"))
	if len(m.Quests.Items) != 1 || m.Quests.Items[0].ID != id {
		t.Fatalf("expected undo to restore quest %s, got %+v", id, m.Quests.Items)
	}
	if !m.Quests.Items[0].IsCompleted {
		t.Fatalf("expected restored quest to keep its completion")
	}
}

func TestQuestSearchFiltersList(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("2"),
		runes("a"), runes("Stretch"), enter(),
		runes("a"), runes("Read a chapter"), enter(),
	)
	m = send(t, m, runes("f"), runes("READ"), enter())
	if len(m.Quests.Items) != 1 || m.Quests.Items[0].Title != "Read a chapter" {
		t.Fatalf("expected case-insensitive filter, got %+v", m.Quests.Items)
	}
	m = send(t, m, runes("f"), tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Quests.Items) != 2 {
		t.Fatalf("expected esc to clear filter, got %d items", len(m.Quests.Items))
	}
}

func TestMoodLogGrantsXPAndUndoTakesItBack(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("3"), runes("t"), enter(), runes("good day"), enter())
	if len(m.Mood.History) != 1 {
		t.Fatalf("expected one mood, got %d", len(m.Mood.History))
	}
	entry := m.Mood.History[0]
	if entry.Note == nil || *entry.Note != "good day" {
		t.Fatalf("expected note saved, got %v", entry.Note)
	}
	if len(entry.Tags) != 1 {
		t.Fatalf("expected selected tag saved, got %v", entry.Tags)
	}
	if m.Dashboard.XP != 10 {
		t.Fatalf("expected 10 xp, got %d", m.Dashboard.XP)
	}

	m = send(t, m, runes("u"))
	if len(m.Mood.History) != 0 || m.Dashboard.XP != 0 {
		t.Fatalf("expected undo to remove mood and xp, got moods=%d xp=%d", len(m.Mood.History), m.Dashboard.XP)
	}
}

func TestDashboardProgressTracksLevelProgress(t *testing.T) {
	m, _ := newTestModel(t)
	empty := m.xpProgress.ViewAs(0)
	m = send(t, m, runes("3"), enter(), enter(), runes("1"))
	if m.Dashboard.LevelProgress != 0.1 {
		t.Fatalf("expected 10%% level progress, got %v", m.Dashboard.LevelProgress)
	}
	view := m.renderDashboardView()
	if !strings.Contains(view, m.xpProgress.ViewAs(0.1)) || strings.Contains(view, empty) {
		t.Fatalf("dashboard bar does not reflect xp:\n%s", view)
	}
}

func TestMoodClearAndRestoreKeepsXP(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("3"), enter(), enter(), runes("l"), enter(), enter())
	if len(m.Mood.History) != 2 || m.Dashboard.XP != 20 {
		t.Fatalf("expected two moods and 20 xp, got %d/%d", len(m.Mood.History), m.Dashboard.XP)
	}
	m = send(t, m, runes("C"))
	if len(m.Mood.History) != 0 || len(m.Mood.Backup) != 2 {
		t.Fatalf("expected cleared history with backup")
	}
	m = send(t, m, runes("U"))
	if len(m.Mood.History) != 2 || m.Dashboard.XP != 20 {
		t.Fatalf("expected restore without xp, got moods=%d xp=%d", len(m.Mood.History), m.Dashboard.XP)
	}
}

func TestPaletteAddAndReminder(t *testing.T) {
	m, engine := newTestModel(t)
	m = palette(t, m, "add Read book")
	if m.CurrentView != ViewQuests || len(m.Quests.Items) != 1 {
		t.Fatalf("expected quest added through palette, view=%q items=%d", m.CurrentView, len(m.Quests.Items))
	}
	if m.Palette.Active {
		t.Fatalf("expected palette closed after command")
	}

	m = palette(t, m, "remind on 30")
	if engine.Pending() != 1 {
		t.Fatalf("expected hydration reminder armed, pending=%d", engine.Pending())
	}
	if !m.Dashboard.Reminder.Enabled || m.Dashboard.Reminder.IntervalMinutes != 30 {
		t.Fatalf("unexpected reminder config: %+v", m.Dashboard.Reminder)
	}
	m = palette(t, m, "remind off")
	if engine.Pending() != 0 {
		t.Fatalf("expected reminder cancelled, pending=%d", engine.Pending())
	}

	m = palette(t, m, "frobnicate")
	if !m.Status.IsError {
		t.Fatalf("expected error status for unknown command")
	}
}

func TestPaletteExportImport(t *testing.T) {
	m, _ := newTestModel(t)
	path := filepath.Join(t.TempDir(), "levelup.json")
	m = palette(t, m, "add Walk")
	m = palette(t, m, "export "+path)
	if m.Status.IsError {
		t.Fatalf("export failed: %s", m.Status.Text)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"reminderMin"`) {
		t.Fatalf("expected snapshot json, got %s", data)
	}

	other, _ := newTestModel(t)
	other = palette(t, other, "import "+path)
	if other.Status.IsError {
		t.Fatalf("import failed: %s", other.Status.Text)
	}
	if len(other.Quests.Items) != 1 || other.Quests.Items[0].Title != "Walk" {
		t.Fatalf("expected imported quest, got %+v", other.Quests.Items)
	}
}

func TestFocusTimerSchedulesAndCounts(t *testing.T) {
	m, engine := newTestModel(t)
	m = send(t, m, runes("4"), space())
	if !m.Focus.Running || engine.Pending() != 1 {
		t.Fatalf("expected running timer with pending event, running=%v pending=%d", m.Focus.Running, engine.Pending())
	}
	m = send(t, m, space())
	if m.Focus.Running || engine.Pending() != 0 {
		t.Fatalf("expected paused timer without pending event")
	}

	m = send(t, m, space())
	m.Focus.RemainingSec = 1
	m = send(t, m, FocusTickMsg{})
	if m.Focus.Running || m.Focus.SessionsToday != 1 {
		t.Fatalf("expected finished session counted, running=%v sessions=%d", m.Focus.Running, m.Focus.SessionsToday)
	}
	if m.Dashboard.XP != 0 {
		t.Fatalf("focus sessions grant no xp, got %d", m.Dashboard.XP)
	}

	m = send(t, m, runes("n"))
	if m.Focus.Phase != FocusPhaseBreak || m.Focus.RemainingSec != 5*60 {
		t.Fatalf("expected break phase, got %q %d", m.Focus.Phase, m.Focus.RemainingSec)
	}
}

func TestReminderDueNotifiesAndRearms(t *testing.T) {
	m, _ := newTestModel(t)
	notifier := &recordingNotifier{}
	m.notifier = notifier
	m.DesktopEnabled = true

	updated, cmd := m.Update(ReminderDueMsg{Event: scheduler.ReminderEvent{
		ID:        tracker.HydrationReminderID,
		Kind:      scheduler.KindHydration,
		Title:     tracker.HydrationTitle,
		Body:      tracker.HydrationBody,
		TriggerAt: time.Now(),
	}})
	next := updated.(Model)
	if cmd == nil {
		t.Fatalf("expected wait command to keep listening for reminders")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != tracker.HydrationTitle {
		t.Fatalf("expected hydration desktop notification, got %+v", notifier.sent)
	}
	if len(next.ReminderLog) != 1 {
		t.Fatalf("expected reminder logged, got %d", len(next.ReminderLog))
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	next := send(t, m, runes("2"), runes("?"))
	if !next.HelpVisible {
		t.Fatalf("expected help visible")
	}
	if !strings.Contains(next.View(), "undo delete") {
		t.Fatalf("expected quests bindings in help panel")
	}
}
