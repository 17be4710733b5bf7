package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/levelup/internal/scheduler"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Focus.Running {
			m.Focus.Running = false
			m.cancelFocusEvent()
			m.Status = StatusBar{Text: "focus paused", IsError: false}
			return m, nil
		}
		if m.Focus.RemainingSec <= 0 {
			m.Focus.RemainingSec = m.currentFocusTotal()
		}
		m.Focus.Running = true
		m.scheduleFocusEvent()
		m.Status = StatusBar{Text: "focus running", IsError: false}
		return m, focusTickCmd()
	case "r":
		m.Focus.Running = false
		m.cancelFocusEvent()
		m.Focus.RemainingSec = m.currentFocusTotal()
		m.Status = StatusBar{Text: "focus reset", IsError: false}
		return m, nil
	case "n":
		m.completeFocusPhase()
		return m, nil
	}
	return m, nil
}

func (m Model) onFocusTick() (Model, tea.Cmd) {
	if !m.Focus.Running {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		m.Focus.Running = false
		if m.Focus.Phase == FocusPhaseWork {
			m.recordFocusSession()
			m.Status = StatusBar{Text: "work session complete; press n to start break", IsError: false}
		} else {
			m.Status = StatusBar{Text: "break complete; press n for next focus block", IsError: false}
		}
		return m, nil
	}
	return m, focusTickCmd()
}

// completeFocusPhase skips to the next phase. Skipping a work block early
// does not count as a session.
func (m *Model) completeFocusPhase() {
	m.cancelFocusEvent()
	if m.Focus.Phase == FocusPhaseWork {
		m.Focus.Phase = FocusPhaseBreak
		m.Focus.RemainingSec = m.Focus.BreakDurationSec
		m.Focus.Running = false
		m.Status = StatusBar{Text: "break ready", IsError: false}
		return
	}
	m.Focus.Phase = FocusPhaseWork
	m.Focus.RemainingSec = m.Focus.WorkDurationSec
	m.Focus.Running = false
	m.Status = StatusBar{Text: "focus block ready", IsError: false}
}

func (m *Model) recordFocusSession() {
	n, err := m.Service.CompleteFocusSession(m.ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.Focus.SessionsToday = n
	m.Dashboard.FocusToday = n
}

// scheduleFocusEvent arms a one-shot reminder for the end of the running
// phase so the desktop notification fires even if ticks fall behind.
func (m *Model) scheduleFocusEvent() {
	if m.Scheduler == nil {
		return
	}
	m.Scheduler.Cancel(focusEventID)
	title := "Focus block done"
	body := "Nice work. Take a short break."
	if m.Focus.Phase == FocusPhaseBreak {
		title = "Break over"
		body = "Ready for the next focus block?"
	}
	err := m.Scheduler.Schedule(scheduler.ReminderEvent{
		ID:        focusEventID,
		Kind:      scheduler.KindFocus,
		Title:     title,
		Body:      body,
		TriggerAt: time.Now().Add(time.Duration(m.Focus.RemainingSec) * time.Second).UTC(),
	})
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("focus reminder failed: %v", err), IsError: true}
	}
}

func (m *Model) cancelFocusEvent() {
	if m.Scheduler == nil {
		return
	}
	m.Scheduler.Cancel(focusEventID)
}

func (m Model) currentFocusTotal() int {
	if m.Focus.Phase == FocusPhaseBreak {
		return m.Focus.BreakDurationSec
	}
	return m.Focus.WorkDurationSec
}

func (m Model) focusFraction() float64 {
	total := m.currentFocusTotal()
	if total <= 0 {
		return 0
	}
	done := float64(total-m.Focus.RemainingSec) / float64(total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

func focusTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{} })
}
