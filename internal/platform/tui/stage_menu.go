package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// StageEntry describes one selectable stage.
type StageEntry struct {
	Name   string
	Bricks int
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// StageMenuModel lets users pick a built-in stage before playing.
type StageMenuModel struct {
	table     table.Model
	keyMapper *KeyMapper
	width     int
	height    int
	selected  string
	quitting  bool
}

// NewStageMenuModel creates a stage picker over entries.
func NewStageMenuModel(entries []StageEntry, width, height int) StageMenuModel {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{e.Name, strconv.Itoa(e.Bricks)}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stage", Width: 16},
			{Title: "Bricks", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, min(len(rows)+1, height-8))),
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

	return StageMenuModel{
		table:     t,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the model.
func (m StageMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StageMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.table.MoveUp(1)
			return m, nil
		case MenuActionDown:
			m.table.MoveDown(1)
			return m, nil
		case MenuActionSelect:
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stage list.
func (m StageMenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen stage name, or "" if none was chosen.
func (m StageMenuModel) Selected() string {
	return m.selected
}

// centerText pads text so it sits centred in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunStageMenu shows the stage picker and returns the chosen stage name.
// An empty name means the user left without choosing.
func RunStageMenu(entries []StageEntry, cfg core.RuntimeConfig) (string, error) {
	model := NewStageMenuModel(entries, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(StageMenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
