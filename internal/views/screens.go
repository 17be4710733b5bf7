package views

import (
	"fmt"
	"strings"
)

type DashboardPanelData struct {
	Level          int
	XP             int
	XPRequired     int
	XPProgressView string
	Streak         int
	QuestsDone     int
	QuestsTotal    int
	QuestsPercent  int
	MoodsToday     int
	FocusToday     int
	ReminderOn     bool
	ReminderMin    int
	Quote          string
}

type QuestItemData struct {
	ID        string
	Title     string
	Completed bool
}

type QuestsPanelData struct {
	ListView string
	Items    []QuestItemData
	Query    string
	CanUndo  bool
}

type MoodChipData struct {
	Label    string
	Selected bool
}

type MoodTagData struct {
	Label    string
	Selected bool
	Cursor   bool
}

type MoodPanelData struct {
	Chips      []MoodChipData
	Tags       []MoodTagData
	StatsView  string
	TodayCount int
	CanRestore bool
}

type FocusPanelData struct {
	Phase         string
	Timer         string
	ProgressView  string
	ProgressPct   int
	SessionsToday int
	Running       bool
	ShowEndPrompt bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("level: %d\n", data.Level))
	b.WriteString(fmt.Sprintf("xp: %d/%d %s\n", data.XP, data.XPRequired, data.XPProgressView))
	b.WriteString(fmt.Sprintf("streak: %d day(s)\n", data.Streak))
	b.WriteString(fmt.Sprintf("quests: %d/%d (%d%%)\n", data.QuestsDone, data.QuestsTotal, data.QuestsPercent))
	b.WriteString(fmt.Sprintf("moods today: %d\n", data.MoodsToday))
	b.WriteString(fmt.Sprintf("focus sessions today: %d\n", data.FocusToday))
	if data.ReminderOn {
		b.WriteString(fmt.Sprintf("hydration reminder: every %d min\n", data.ReminderMin))
	} else {
		b.WriteString("hydration reminder: off\n")
	}
	if data.Quote != "" {
		b.WriteString("\n\"" + data.Quote + "\"")
	}
	return strings.TrimSpace(b.String())
}

func RenderBadgesPanel(badges []string) string {
	var b strings.Builder
	b.WriteString("badges:\n")
	if len(badges) == 0 {
		b.WriteString("(none yet, keep the streak going)")
		return b.String()
	}
	for _, badge := range badges {
		b.WriteString("* " + badge + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderQuestsPanel(data QuestsPanelData) string {
	var b strings.Builder
	b.WriteString("quests:\n")
	if data.Query != "" {
		b.WriteString(fmt.Sprintf("filter: %q\n", data.Query))
	}
	b.WriteString("actions: [j/k]move [space]toggle [a]add [e]rename [x]delete [f]find [R]reset\n")
	if data.CanUndo {
		b.WriteString("deleted a quest: [u]undo\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no quests)")
		return b.String()
	}
	done := 0
	for _, item := range data.Items {
		if item.Completed {
			done++
		}
	}
	b.WriteString(fmt.Sprintf("done: %d/%d\n", done, len(data.Items)))
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderSuggestionsPanel(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("suggestions:\n")
	for _, s := range suggestions {
		b.WriteString("- " + s + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderMoodPanel(data MoodPanelData) string {
	var b strings.Builder
	b.WriteString("mood:\n")
	chips := make([]string, 0, len(data.Chips))
	for _, c := range data.Chips {
		if c.Selected {
			chips = append(chips, "["+c.Label+"]")
			continue
		}
		chips = append(chips, " "+c.Label+" ")
	}
	b.WriteString(strings.Join(chips, " ") + "\n")
	tags := make([]string, 0, len(data.Tags))
	for _, t := range data.Tags {
		label := "#" + t.Label
		if t.Selected {
			label += "*"
		}
		if t.Cursor {
			label = ">" + label
		}
		tags = append(tags, label)
	}
	if len(tags) > 0 {
		b.WriteString("tags: " + strings.Join(tags, " ") + "\n")
	}
	b.WriteString(fmt.Sprintf("logged today: %d\n", data.TodayCount))
	b.WriteString("actions: [h/l]mood [tab]tag [t]toggle tag [enter]log [u]undo [C]clear [s]suggest [S]share\n")
	if data.CanRestore {
		b.WriteString("history cleared: [U]restore\n")
	}
	b.WriteString("\nlast 7 days:\n")
	b.WriteString(data.StatsView)
	return strings.TrimSpace(b.String())
}

func RenderMoodHistoryPanel(viewportView string) string {
	if strings.TrimSpace(viewportView) == "" {
		return "history:\n(no moods logged)"
	}
	return "history:\n" + viewportView
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	state := "paused"
	if data.Running {
		state = "running"
	}
	b.WriteString(fmt.Sprintf("timer: %s (%s)\n", data.Timer, state))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("sessions today: %d\n", data.SessionsToday))
	b.WriteString("actions: [space]start/pause [r]reset [n]next-phase\n")
	if data.ShowEndPrompt {
		b.WriteString("prompt: session ended, press [n] to continue")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
