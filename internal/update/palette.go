package update

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/levelup/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, m.paletteHandlers())
	m.refresh()
	if err != nil {
		m.fail(err)
		m.notify("Command Failed", err.Error(), levelFromError(true))
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, levelFromError(false))
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m *Model) paletteHandlers() commands.Handlers {
	ctx := m.ctx
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			q, err := m.Service.AddQuest(ctx, a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewQuests
			m.Quests.Cursor = 0
			return commands.Result{Message: fmt.Sprintf("added quest: %s", q.Title)}, nil
		},
		Done: func(t commands.TargetArgs) (commands.Result, error) {
			q, err := m.Service.ResolveQuest(ctx, t.Target)
			if err != nil {
				return commands.Result{}, err
			}
			before := m.Dashboard.Badges
			updated, _, err := m.Service.ToggleQuest(ctx, q.ID)
			if err != nil {
				return commands.Result{}, err
			}
			m.refresh()
			m.announceNewBadges(before)
			if updated.IsCompleted {
				return commands.Result{Message: fmt.Sprintf("completed: %s", updated.Title)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("reopened: %s", updated.Title)}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			q, err := m.Service.ResolveQuest(ctx, r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := m.Service.RenameQuest(ctx, q.ID, r.Title); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("renamed %s to %s", q.Title, strings.TrimSpace(r.Title))}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			q, err := m.Service.ResolveQuest(ctx, t.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewQuests
			if err := m.deleteQuest(q); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted: %s (u to undo)", q.Title)}, nil
		},
		Mood: func(a commands.MoodArgs) (commands.Result, error) {
			entry, err := m.Service.LogMood(ctx, a.Mood, a.Emoji, a.Note, a.Tags)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("logged %s %s (+10 XP)", entry.Emoji, entry.Mood)}, nil
		},
		Undo: func() (commands.Result, error) {
			undone, err := m.Service.UndoLastMood(ctx, true)
			if err != nil {
				return commands.Result{}, err
			}
			if !undone {
				return commands.Result{Message: "no moods to undo"}, nil
			}
			return commands.Result{Message: "last mood removed"}, nil
		},
		Focus: func() (commands.Result, error) {
			m.CurrentView = ViewFocus
			return commands.Result{Message: "focus view opened, space to start"}, nil
		},
		Remind: func(r commands.RemindArgs) (commands.Result, error) {
			cfg, err := m.Service.ConfigureReminder(ctx, r.Enabled, r.Minutes)
			if err != nil {
				return commands.Result{}, err
			}
			if !cfg.Enabled {
				return commands.Result{Message: "hydration reminder off"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("hydration reminder every %d min", cfg.IntervalMinutes)}, nil
		},
		Suggest: func(s commands.SuggestArgs) (commands.Result, error) {
			return commands.Result{Message: m.suggestFor(s.Mood)}, nil
		},
		Export: func(p commands.PathArgs) (commands.Result, error) {
			blob, err := m.Service.Export(ctx)
			if err != nil {
				return commands.Result{}, err
			}
			if err := os.WriteFile(p.Path, []byte(blob), 0o600); err != nil {
				return commands.Result{}, fmt.Errorf("write export: %w", err)
			}
			return commands.Result{Message: fmt.Sprintf("exported to %s", p.Path)}, nil
		},
		Import: func(p commands.PathArgs) (commands.Result, error) {
			data, err := os.ReadFile(p.Path)
			if err != nil {
				return commands.Result{}, fmt.Errorf("read import: %w", err)
			}
			if err := m.Service.Import(ctx, string(data)); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("imported from %s", p.Path)}, nil
		},
	}
}
