package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/levelup/internal/model"
)

func (m Model) handleQuestsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		if m.Quests.Cursor < len(m.Quests.Items)-1 {
			m.Quests.Cursor++
		}
	case "k", "up":
		if m.Quests.Cursor > 0 {
			m.Quests.Cursor--
		}
	case " ":
		m.toggleCurrentQuest()
	case "a":
		m.beginInput(InputAddQuest, "new quest: ", "")
	case "e":
		if q, ok := m.currentQuest(); ok {
			m.beginInput(InputRenameQuest, "rename: ", q.Title)
		}
	case "f":
		m.beginInput(InputSearch, "find: ", m.Quests.Query)
	case "x":
		m.deleteCurrentQuest()
	case "u":
		m.undoDeleteQuest()
	case "R":
		if err := m.Service.ResetDailyQuests(m.ctx); err != nil {
			m.fail(err)
			return m
		}
		m.Status = StatusBar{Text: "new day: all quests reset"}
		m.refresh()
	}
	return m
}

func (m *Model) toggleCurrentQuest() {
	q, ok := m.currentQuest()
	if !ok {
		return
	}
	before := m.Dashboard.Badges
	updated, found, err := m.Service.ToggleQuest(m.ctx, q.ID)
	if err != nil {
		m.fail(err)
		return
	}
	if !found {
		m.Status = StatusBar{Text: "quest no longer exists", IsError: true}
		m.refresh()
		return
	}
	state := "reopened"
	if updated.IsCompleted {
		state = "completed"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", state, updated.Title)}
	m.refresh()
	m.announceNewBadges(before)
}

// announceNewBadges notifies for every badge that was not in before.
func (m *Model) announceNewBadges(before []string) {
	seen := make(map[string]bool, len(before))
	for _, b := range before {
		seen[b] = true
	}
	for _, b := range m.Dashboard.Badges {
		if !seen[b] {
			m.notify("Badge unlocked", b, "info")
		}
	}
}

func (m *Model) deleteCurrentQuest() {
	q, ok := m.currentQuest()
	if !ok {
		return
	}
	if err := m.deleteQuest(q); err != nil {
		m.fail(err)
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s (u to undo)", q.Title)}
}

// deleteQuest removes q and remembers its position in the full list for undo.
func (m *Model) deleteQuest(q model.Quest) error {
	all, err := m.Service.Quests(m.ctx)
	if err != nil {
		return err
	}
	index, _ := model.FindQuest(all, q.ID)
	removed, err := m.Service.DeleteQuest(m.ctx, q.ID)
	if err != nil {
		return err
	}
	if removed {
		m.Quests.LastDeleted = &deletedQuest{Quest: q, Index: index}
	}
	m.refresh()
	return nil
}

func (m *Model) undoDeleteQuest() {
	last := m.Quests.LastDeleted
	if last == nil {
		m.Status = StatusBar{Text: "nothing to undo"}
		return
	}
	if err := m.Service.RestoreQuest(m.ctx, last.Quest, last.Index); err != nil {
		m.fail(err)
		return
	}
	m.Quests.LastDeleted = nil
	m.Status = StatusBar{Text: fmt.Sprintf("restored: %s", last.Quest.Title)}
	m.refresh()
}

func (m *Model) beginInput(mode InputMode, prompt, value string) {
	m.Input.Mode = mode
	m.textInput.Prompt = prompt
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
}

func (m *Model) endInput() {
	m.Input.Mode = InputNone
	m.textInput.SetValue("")
	m.textInput.Blur()
}

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		if m.Input.Mode == InputSearch {
			m.Quests.Query = ""
			m.refresh()
		}
		m.endInput()
		m.Status = StatusBar{Text: "input cancelled"}
		return m
	case "enter":
		value := m.textInput.Value()
		mode := m.Input.Mode
		m.endInput()
		m.submitInput(mode, value)
		return m
	}
	if msg.Type == tea.KeyRunes {
		m.textInput.SetValue(m.textInput.Value() + string(msg.Runes))
		m.textInput.CursorEnd()
	} else {
		m.textInput, _ = m.textInput.Update(msg)
	}
	if m.Input.Mode == InputSearch {
		m.Quests.Query = m.textInput.Value()
		m.Quests.Cursor = 0
		m.refresh()
	}
	return m
}

func (m *Model) submitInput(mode InputMode, value string) {
	switch mode {
	case InputAddQuest:
		q, err := m.Service.AddQuest(m.ctx, value)
		if err != nil {
			m.fail(err)
			return
		}
		m.Quests.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("added quest: %s", q.Title)}
	case InputRenameQuest:
		q, ok := m.currentQuest()
		if !ok {
			return
		}
		if _, err := m.Service.RenameQuest(m.ctx, q.ID, value); err != nil {
			m.fail(err)
			return
		}
		m.Status = StatusBar{Text: fmt.Sprintf("renamed to: %s", strings.TrimSpace(value))}
	case InputSearch:
		m.Quests.Query = strings.TrimSpace(value)
		if m.Quests.Query == "" {
			m.Status = StatusBar{Text: "filter cleared"}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.Quests.Query)}
		}
	case InputMoodNote:
		m.logSelectedMood(value)
		return
	}
	m.refresh()
}
