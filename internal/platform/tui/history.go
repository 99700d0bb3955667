package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyTab is one selectable filter. An empty ID shows every game.
type historyTab struct {
	ID    string
	Title string
}

// HistoryModel is the Bubble Tea model for browsing the run journal.
type HistoryModel struct {
	tabs     []historyTab
	cursor   int
	top      bool // Best runs instead of latest
	limit    int
	store    *storage.Store
	runs     []storage.Run
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates the history browser.
func NewHistoryModel(store *storage.Store, limit, width, height int) HistoryModel {
	tabs := []historyTab{{ID: "", Title: "All"}}
	for _, g := range registry.List() {
		tabs = append(tabs, historyTab{ID: g.ID, Title: g.Title})
	}
	if limit <= 0 {
		limit = 50
	}

	m := HistoryModel{
		tabs:   tabs,
		limit:  limit,
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Best", Width: 5},
		{Title: "Speed", Width: 6},
		{Title: "Spawn", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Hit", Width: 7},
		{Title: "Game", Width: 13},
		{Title: "When", Width: 12},
	}
	if m.width >= 110 {
		columns = append(columns, table.Column{Title: "Player", Width: 12})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load queries the journal for the selected tab and mode.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		id := m.tabs[m.cursor].ID
		switch {
		case m.top && id != "":
			m.runs, m.loadErr = m.store.TopRuns(id, m.limit)
		default:
			m.runs, m.loadErr = m.store.RecentRuns(id, m.limit)
		}
		if id != "" && m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(id)
		}
	}
	m.updateRows()
}

func (m *HistoryModel) updateRows() {
	wide := len(m.table.Columns()) > 9
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Best),
			fmt.Sprintf("%.0f", r.Speed),
			fmt.Sprintf("%dms", r.SpawnMs),
			formatDuration(r.Duration),
			r.Hit,
			r.GameID,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if wide {
			row = append(row, r.Player)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.cursor = (m.cursor + len(m.tabs) - 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.top = !m.top
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	mode := "RECENT RUNS"
	if m.top && m.tabs[m.cursor].ID != "" {
		mode = "BEST RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(mode, m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(t.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("%d runs · high %d · avg %.1f · played %s",
		m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, formatDuration(m.stats.TotalTime)))
}

func (m HistoryModel) tableContent() string {
	switch {
	case m.store == nil:
		return dimStyle.Padding(1, 2).Render("Run journal unavailable.")
	case m.loadErr != nil:
		return dimStyle.Padding(1, 2).Render("Could not read runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return dimStyle.Padding(1, 2).Render("No runs recorded yet.\nPlay a game to fill the journal!")
	}
	return m.table.View()
}

// centerText pads text to be centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory shows the run journal until the user quits.
func RunHistory(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
