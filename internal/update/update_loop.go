package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/levelup/internal/scheduler"
	"github.com/sandeepkv93/levelup/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForReminderCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) handle(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.Input.Mode != InputNone {
			return m.handleInputKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			m.refresh()
			return m, nil
		case m.Keys.Quests:
			m.CurrentView = ViewQuests
			m.refresh()
			return m, nil
		case m.Keys.Mood:
			m.CurrentView = ViewMood
			m.refresh()
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			m.refresh()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewQuests:
			return m.handleQuestsKey(typed), nil
		case ViewMood:
			return m.handleMoodKey(typed), nil
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.refresh()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case FocusTickMsg:
		return m.onFocusTick()
	case ReminderDueMsg:
		m.ReminderLog = append(m.ReminderLog, typed.Event)
		if len(m.ReminderLog) > 20 {
			m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
		}
		m.applyReminderBehavior(typed.Event)
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderBadgesView() + m.renderHelpIfVisible()
	case ViewQuests:
		leftPane = m.renderQuestsView()
		rightPane = m.renderSuggestionsView() + m.renderHelpIfVisible()
	case ViewMood:
		leftPane = m.renderMoodView()
		rightPane = m.renderMoodHistoryView() + m.renderHelpIfVisible()
	case ViewFocus:
		leftPane = m.renderFocusView()
		rightPane = m.renderHelpIfVisible()
	}
	if m.Input.Mode != InputNone {
		leftPane = strings.TrimSpace(leftPane + "\n\n" + m.textInput.View())
	}
	if m.Palette.Active {
		rightPane = strings.TrimSpace(m.renderCommandPalette() + "\n" + rightPane)
	}

	notificationView := ""
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		notificationView = fmt.Sprintf("last-reminder: %s @ %s", last.Title, last.TriggerAt.Local().Format("15:04:05"))
	}
	notificationView = strings.TrimSpace(strings.Join([]string{
		notificationView,
		strings.TrimSpace(m.renderNotificationsView()),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("levelup | view: %s | LVL %d | streak: %dd", m.CurrentView, m.Dashboard.Level, m.Dashboard.Streak),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s home | %s quests | %s mood | %s focus | / cmd | %s help | %s quit", m.Keys.Dashboard, m.Keys.Quests, m.Keys.Mood, m.Keys.Focus, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewQuests, ViewMood, ViewFocus:
		return true
	default:
		return false
	}
}

func (m *Model) initBubbleComponents() {
	m.questList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.questList.Title = "Quests"
	m.questList.SetShowHelp(false)
	m.questList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Mood", Width: 14},
		{Title: "Count", Width: 6},
	}
	m.statsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(6))

	m.historyViewport = viewport.New(54, 12)

	m.textInput = textinput.New()
	m.textInput.CharLimit = 256
	m.textInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.xpProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.focusProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	items := make([]list.Item, 0, len(m.Quests.Items))
	for _, q := range m.Quests.Items {
		check := "[ ]"
		if q.IsCompleted {
			check = "[x]"
		}
		items = append(items, listItem{title: check + " " + q.Title, description: shortID(q.ID)})
	}
	m.questList.SetItems(items)
	if len(items) > 0 {
		m.questList.Select(m.Quests.Cursor)
	}

	rows := make([]table.Row, 0, len(m.Mood.Stats))
	for _, s := range m.Mood.Stats {
		rows = append(rows, table.Row{s.Mood, fmt.Sprintf("%d", s.Count)})
	}
	m.statsTable.SetRows(rows)

	m.historyViewport.SetContent(views.RenderMarkdown(moodHistoryMarkdown(m.Mood.History, 10)))

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Input.Mode != InputNone {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func waitForReminderCmd(ch <-chan scheduler.ReminderEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}
