package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderDashboardView() string {
	d := m.Dashboard
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Level:          d.Level,
		XP:             d.XP,
		XPRequired:     d.XPRequired,
		XPProgressView: m.xpProgress.ViewAs(d.LevelProgress),
		Streak:         d.Streak,
		QuestsDone:     d.Quests.Completed,
		QuestsTotal:    d.Quests.Total,
		QuestsPercent:  d.Quests.Percent,
		MoodsToday:     d.MoodsToday,
		FocusToday:     d.FocusToday,
		ReminderOn:     d.Reminder.Enabled,
		ReminderMin:    d.Reminder.IntervalMinutes,
		Quote:          d.Quote,
	})
}

func (m Model) renderBadgesView() string {
	return views.RenderBadgesPanel(m.Dashboard.Badges)
}

func (m Model) renderQuestsView() string {
	items := make([]views.QuestItemData, 0, len(m.Quests.Items))
	for _, q := range m.Quests.Items {
		items = append(items, views.QuestItemData{ID: q.ID, Title: q.Title, Completed: q.IsCompleted})
	}
	return views.RenderQuestsPanel(views.QuestsPanelData{
		ListView: m.questList.View(),
		Items:    items,
		Query:    m.Quests.Query,
		CanUndo:  m.Quests.LastDeleted != nil,
	})
}

func (m Model) renderSuggestionsView() string {
	return views.RenderSuggestionsPanel(m.Service.QuestSuggestions())
}

func (m Model) renderMoodView() string {
	chips := make([]views.MoodChipData, 0, len(m.Mood.Chips))
	for i, c := range m.Mood.Chips {
		chips = append(chips, views.MoodChipData{Label: c.Chip(), Selected: i == m.Mood.ChipCursor})
	}
	tags := make([]views.MoodTagData, 0, len(m.Mood.Tags))
	for i, t := range m.Mood.Tags {
		tags = append(tags, views.MoodTagData{Label: t, Selected: m.Mood.SelectedTags[t], Cursor: i == m.Mood.TagCursor})
	}
	return views.RenderMoodPanel(views.MoodPanelData{
		Chips:      chips,
		Tags:       tags,
		StatsView:  m.statsTable.View(),
		TodayCount: m.Dashboard.MoodsToday,
		CanRestore: len(m.Mood.Backup) > 0,
	})
}

func (m Model) renderMoodHistoryView() string {
	if len(m.Mood.History) == 0 {
		return views.RenderMoodHistoryPanel("")
	}
	return views.RenderMoodHistoryPanel(m.historyViewport.View())
}

func (m Model) renderFocusView() string {
	fraction := m.focusFraction()
	return views.RenderFocusPanel(views.FocusPanelData{
		Phase:         string(m.Focus.Phase),
		Timer:         formatDuration(m.Focus.RemainingSec),
		ProgressView:  m.focusProgress.ViewAs(fraction),
		ProgressPct:   int(fraction * 100),
		SessionsToday: m.Focus.SessionsToday,
		Running:       m.Focus.Running,
		ShowEndPrompt: m.Focus.RemainingSec == 0,
	})
}

// moodHistoryMarkdown renders the newest limit entries as a markdown list.
func moodHistoryMarkdown(history []model.MoodEntry, limit int) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range history {
		if i >= limit {
			b.WriteString(fmt.Sprintf("\n_and %d more_\n", len(history)-limit))
			break
		}
		at := time.UnixMilli(e.Timestamp).Local().Format("Jan 2 15:04")
		b.WriteString(fmt.Sprintf("- %s **%s** _%s_", e.Emoji, e.Mood, at))
		if e.Note != nil && strings.TrimSpace(*e.Note) != "" {
			b.WriteString(": " + strings.TrimSpace(*e.Note))
		}
		if len(e.Tags) > 0 {
			b.WriteString(" `#" + strings.Join(e.Tags, "` `#") + "`")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.log.Warn().Err(err).Str("title", title).Msg("desktop notification failed")
		}
	}
}
