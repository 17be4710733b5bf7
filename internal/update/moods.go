package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleMoodKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		if m.Mood.ChipCursor > 0 {
			m.Mood.ChipCursor--
		}
	case "l", "right":
		if m.Mood.ChipCursor < len(m.Mood.Chips)-1 {
			m.Mood.ChipCursor++
		}
	case "tab":
		if len(m.Mood.Tags) > 0 {
			m.Mood.TagCursor = (m.Mood.TagCursor + 1) % len(m.Mood.Tags)
		}
	case "t":
		if m.Mood.TagCursor >= 0 && m.Mood.TagCursor < len(m.Mood.Tags) {
			tag := m.Mood.Tags[m.Mood.TagCursor]
			m.Mood.SelectedTags[tag] = !m.Mood.SelectedTags[tag]
		}
	case "enter":
		if chip, ok := m.currentChip(); ok {
			m.beginInput(InputMoodNote, fmt.Sprintf("%s note: ", chip.Chip()), "")
		}
	case "u":
		undone, err := m.Service.UndoLastMood(m.ctx, true)
		if err != nil {
			m.fail(err)
			return m
		}
		if undone {
			m.Status = StatusBar{Text: "last mood removed"}
		} else {
			m.Status = StatusBar{Text: "no moods to undo"}
		}
		m.refresh()
	case "C":
		backup, err := m.Service.ClearMoods(m.ctx)
		if err != nil {
			m.fail(err)
			return m
		}
		if len(backup) > 0 {
			m.Mood.Backup = backup
		}
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d mood(s), U to restore", len(backup))}
		m.refresh()
	case "U":
		if len(m.Mood.Backup) == 0 {
			m.Status = StatusBar{Text: "nothing to restore"}
			return m
		}
		if err := m.Service.RestoreMoods(m.ctx, m.Mood.Backup); err != nil {
			m.fail(err)
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("restored %d mood(s)", len(m.Mood.Backup))}
		m.Mood.Backup = nil
		m.refresh()
	case "s":
		chip, ok := m.currentChip()
		if !ok {
			return m
		}
		m.suggestFor(chip.Label)
	case "S":
		text, ok, err := m.Service.ShareMessage(m.ctx)
		if err != nil {
			m.fail(err)
			return m
		}
		if !ok {
			m.Status = StatusBar{Text: "log a mood before sharing"}
			return m
		}
		m.Status = StatusBar{Text: text}
		m.notify("Share", text, "info")
	}
	return m
}

func (m *Model) suggestFor(mood string) string {
	q, added, err := m.Service.SuggestQuestForMood(m.ctx, mood)
	if err != nil {
		m.fail(err)
		return ""
	}
	var text string
	switch {
	case added:
		text = fmt.Sprintf("suggested quest added: %s", q.Title)
	case q.Title != "":
		text = fmt.Sprintf("already on your list: %s", q.Title)
	default:
		text = fmt.Sprintf("no suggestion for %s", mood)
	}
	m.Status = StatusBar{Text: text}
	m.refresh()
	return text
}

func (m *Model) selectedTags() []string {
	tags := make([]string, 0, len(m.Mood.SelectedTags))
	for _, t := range m.Mood.Tags {
		if m.Mood.SelectedTags[t] {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m *Model) logSelectedMood(note string) {
	chip, ok := m.currentChip()
	if !ok {
		return
	}
	level := m.Dashboard.Level
	entry, err := m.Service.LogFromChipLabel(m.ctx, chip.Chip(), note, m.selectedTags())
	if err != nil {
		m.fail(err)
		return
	}
	m.Mood.SelectedTags = make(map[string]bool)
	m.Status = StatusBar{Text: fmt.Sprintf("logged %s %s (+10 XP)", entry.Emoji, entry.Mood)}
	m.refresh()
	if m.Dashboard.Level > level {
		m.notify("Level up", fmt.Sprintf("You reached level %d!", m.Dashboard.Level), "info")
	}
}
