package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// SessionModel manages the full session flow: title -> game -> title.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	newGame   Factory
	title     string
	config    core.RuntimeConfig
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	finished  bool // Game over already logged for the current game
	quitting  bool
}

// NewSessionModel creates a new session model. A nil logger discards output.
func NewSessionModel(newGame Factory, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	title := newGame().Title()

	return SessionModel{
		newGame: newGame,
		title:   title,
		config:  cfg,
		logger:  logger,
		menu:    NewMenuModel(title, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when on the title screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Started() {
		m.config = m.menu.Config()
		// A zero seed gives each game a fresh maze
		gameModel := NewGameModel(m.newGame(), m.config)
		m.gameModel = &gameModel
		m.inGame = true
		m.finished = false

		m.logger.Info("game started", "game", gameModel.game.ID(), "seed", gameModel.config.Seed)
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	state := m.gameModel.State()
	switch {
	case state.GameOver && !m.finished:
		m.finished = true
		m.logger.Info("game over", "won", state.Won, "score", state.Score)
	case !state.GameOver && m.finished:
		// Restarted with a new maze
		m.finished = false
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.title, m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// Run starts a local session on the current terminal.
func Run(newGame Factory, cfg core.RuntimeConfig) error {
	model := NewSessionModel(newGame, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
