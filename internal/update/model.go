package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/catalog"
	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/scheduler"
	"github.com/sandeepkv93/levelup/internal/tracker"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewQuests    View = "Quests"
	ViewMood      View = "Mood"
	ViewFocus     View = "Focus"
)

// InputMode says what the shared text input is collecting.
type InputMode string

const (
	InputNone        InputMode = ""
	InputAddQuest    InputMode = "add"
	InputRenameQuest InputMode = "rename"
	InputSearch      InputMode = "search"
	InputMoodNote    InputMode = "note"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Quests    string
	Mood      string
	Focus     string
	Help      string
	Quit      string
}

type deletedQuest struct {
	Quest model.Quest
	Index int
}

type QuestsState struct {
	Items       []model.Quest
	Cursor      int
	Query       string
	LastDeleted *deletedQuest
}

type MoodState struct {
	Chips        []catalog.Mood
	ChipCursor   int
	Tags         []string
	TagCursor    int
	SelectedTags map[string]bool
	History      []model.MoodEntry
	Stats        []tracker.MoodStat
	Backup       []model.MoodEntry
}

type FocusPhase string

const (
	FocusPhaseWork  FocusPhase = "work"
	FocusPhaseBreak FocusPhase = "break"
)

const focusEventID = "focus-timer"

type FocusState struct {
	WorkDurationSec  int
	BreakDurationSec int
	RemainingSec     int
	Running          bool
	Phase            FocusPhase
	SessionsToday    int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type InputState struct {
	Mode InputMode
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	CurrentView    View
	Service        *tracker.Service
	Scheduler      *scheduler.Engine
	Dashboard      tracker.Dashboard
	Quests         QuestsState
	Mood           MoodState
	Focus          FocusState
	Input          InputState
	ReminderLog    []scheduler.ReminderEvent
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	ctx context.Context
	log zerolog.Logger

	questList       list.Model
	statsTable      table.Model
	historyViewport viewport.Model
	textInput       textinput.Model
	commandInput    textinput.Model
	xpProgress      progress.Model
	focusProgress   progress.Model
	helpModel       help.Model
}

type Options struct {
	Scheduler *scheduler.Engine
	Notifier  DesktopNotifier
	Config    config.RuntimeConfig
	Logger    zerolog.Logger
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type FocusTickMsg struct{}

type ReminderDueMsg struct {
	Event scheduler.ReminderEvent
}

func NewModel(ctx context.Context, svc *tracker.Service, opts Options) Model {
	cat := svc.Catalog()
	m := Model{
		CurrentView: ViewDashboard,
		Service:     svc,
		Scheduler:   opts.Scheduler,
		Mood: MoodState{
			Chips:        cat.Moods,
			Tags:         cat.Tags,
			SelectedTags: make(map[string]bool),
		},
		Focus: FocusState{
			WorkDurationSec:  25 * 60,
			BreakDurationSec: 5 * 60,
			Phase:            FocusPhaseWork,
		},
		DesktopEnabled: opts.Config.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Quests:    "2",
			Mood:      "3",
			Focus:     "4",
			Help:      "?",
			Quit:      "q",
		},
		ctx: ctx,
		log: opts.Logger,
	}
	if opts.Notifier != nil {
		m.notifier = opts.Notifier
	}
	if opts.Config.FocusWorkMinutes > 0 {
		m.Focus.WorkDurationSec = opts.Config.FocusWorkMinutes * 60
	}
	if opts.Config.FocusBreakMinutes > 0 {
		m.Focus.BreakDurationSec = opts.Config.FocusBreakMinutes * 60
	}
	m.Focus.RemainingSec = m.Focus.WorkDurationSec
	m.initBubbleComponents()
	m.refresh()
	m.syncBubbleData()
	return m
}

// refresh re-reads everything the screens show. Errors land in the status
// bar; the previous data stays on screen.
func (m *Model) refresh() {
	ctx := m.ctx
	dash, err := m.Service.Snapshot(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.Dashboard = dash
	m.Focus.SessionsToday = dash.FocusToday

	quests, err := m.Service.SearchQuests(ctx, m.Quests.Query)
	if err != nil {
		m.fail(err)
		return
	}
	m.Quests.Items = quests
	m.clampQuestCursor()

	history, err := m.Service.Moods(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.Mood.History = history
	stats, err := m.Service.Last7DaysStats(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.Mood.Stats = stats
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.log.Error().Err(err).Msg("tui action failed")
}

func (m *Model) clampQuestCursor() {
	if m.Quests.Cursor >= len(m.Quests.Items) {
		m.Quests.Cursor = len(m.Quests.Items) - 1
	}
	if m.Quests.Cursor < 0 {
		m.Quests.Cursor = 0
	}
}

func (m Model) currentQuest() (model.Quest, bool) {
	if m.Quests.Cursor < 0 || m.Quests.Cursor >= len(m.Quests.Items) {
		return model.Quest{}, false
	}
	return m.Quests.Items[m.Quests.Cursor], true
}

func (m Model) currentChip() (catalog.Mood, bool) {
	if m.Mood.ChipCursor < 0 || m.Mood.ChipCursor >= len(m.Mood.Chips) {
		return catalog.Mood{}, false
	}
	return m.Mood.Chips[m.Mood.ChipCursor], true
}
