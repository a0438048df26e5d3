package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// MenuItem is an entry on the title screen.
type MenuItem int

const (
	MenuItemPlay MenuItem = iota
	MenuItemControls
	MenuItemQuit
)

func (i MenuItem) String() string {
	switch i {
	case MenuItemPlay:
		return "Play"
	case MenuItemControls:
		return "Controls"
	case MenuItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	title        string
	items        []MenuItem
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	help         help.Model
	showControls bool
	quitting     bool
	started      bool
}

// NewMenuModel creates a title screen for a game named title.
func NewMenuModel(title string, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.ShowAll = true

	return MenuModel{
		title:     title,
		items:     []MenuItem{MenuItemPlay, MenuItemControls, MenuItemQuit},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionBack:
		m.showControls = false

	case MenuActionSelect:
		switch m.items[m.cursor] {
		case MenuItemPlay:
			m.started = true
		case MenuItemControls:
			m.showControls = !m.showControls
		case MenuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(spaced(m.title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find the way out. Grab the coins.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.showControls {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			controlsStyle.Render(m.help.View(m.keyMapper.Keys()))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Started returns true once the player chose to play.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced turns "Maze Runner" into "M A Z E   R U N N E R".
func spaced(title string) string {
	upper := []rune(strings.ToUpper(title))
	parts := make([]string, len(upper))
	for i, r := range upper {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
