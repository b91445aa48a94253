package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// prompt is a pending yes/no question shown under the board.
type prompt int

const (
	promptNone prompt = iota
	promptRestart
	promptLobby
)

func (p prompt) question() string {
	switch p {
	case promptRestart:
		return "Restart this game?"
	case promptLobby:
		return "Quit to the lobby?"
	default:
		return ""
	}
}

// Options configures a Model.
type Options struct {
	Presets    config.TetrisConfig
	Runtime    core.RuntimeConfig
	PlayerName string // Prefills the lobby name field
	Difficulty string // Preselects a preset in the lobby
	Logger     *log.Logger

	EngineOptions []tetris.Option
}

// Model is the Bubble Tea model that hosts one tetris engine.
type Model struct {
	engine  *tetris.Engine
	screen  *core.Screen
	config  core.RuntimeConfig
	lobby   lobbyModel
	keys    KeyMap
	confirm ConfirmKeyMap
	help    help.Model
	logger  *log.Logger

	prompt     prompt
	autoPaused bool // The prompt paused the game and has to resume it

	frameGen int
	flashSeq int
	flashing bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a model that starts in the lobby.
func NewModel(opts Options) Model {
	cfg := opts.Runtime.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", uuid.New().String())

	engineOpts := append([]tetris.Option{
		tetris.WithSeed(cfg.Seed),
		tetris.WithLogger(logger),
	}, opts.EngineOptions...)

	return Model{
		engine:  tetris.New(opts.Presets, engineOpts...),
		screen:  core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config:  cfg,
		lobby:   newLobby(opts.Presets, opts.PlayerName, opts.Difficulty),
		keys:    DefaultKeyMap(),
		confirm: DefaultConfirmKeyMap(),
		help:    help.New(),
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// boardHeight leaves the last terminal line for the help bar.
func boardHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the countdown driver. The frame driver starts with a session.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, secondCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.engine.Mode() == tetris.ModeLobby {
			return m.handleLobbyKey(msg)
		}
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleGameKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case SecondMsg:
		m.engine.OnSecondElapsed()
		cmd := tea.Batch(secondCmd(), m.drainEvents())
		return m, cmd

	case flashDoneMsg:
		if int(msg) == m.flashSeq {
			m.flashing = false
		}
		return m, nil
	}

	if m.engine.Mode() == tetris.ModeLobby {
		var cmd tea.Cmd
		m.lobby, cmd = m.lobby.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLobbyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.lobby.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.lobby.keys.Start):
		if err := m.engine.Start(m.lobby.playerName(), m.lobby.selected()); err != nil {
			m.logger.Debug("start rejected", "err", err)
			m.lobby.err = err
			return m, nil
		}
		m.lobby.err = nil
		return m.sessionStarted()
	}

	var cmd tea.Cmd
	m.lobby, cmd = m.lobby.update(msg)
	return m, cmd
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart, core.ActionBack:
		// A running session asks first; game over acts at once.
		if m.engine.Mode() == tetris.ModePlaying {
			return m.openPrompt(action)
		}
		if action == core.ActionRestart {
			return m.restart()
		}
		m.engine.ReturnToLobby()
		return m, textinput.Blink
	}

	if action.Gameplay() && m.engine.Mode() != tetris.ModePlaying {
		return m, nil
	}

	rearm, err := m.engine.Apply(action)
	if err != nil {
		m.logger.Warn("command failed", "action", action, "err", err)
	}
	cmd := m.drainEvents()
	if rearm {
		cmd = tea.Batch(m.armFrame(), cmd)
	}
	return m, cmd
}

// openPrompt asks for confirmation, pausing a running game meanwhile.
func (m Model) openPrompt(action core.Action) (tea.Model, tea.Cmd) {
	m.prompt = promptLobby
	if action == core.ActionRestart {
		m.prompt = promptRestart
	}
	if !m.engine.Paused() {
		m.engine.TogglePause()
		m.autoPaused = true
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.confirm.Yes):
		p := m.prompt
		m.prompt = promptNone
		m.autoPaused = false
		if p == promptRestart {
			return m.restart()
		}
		m.engine.ReturnToLobby()
		return m, textinput.Blink

	case key.Matches(msg, m.confirm.No):
		m.prompt = promptNone
		if m.autoPaused {
			m.autoPaused = false
			if m.engine.TogglePause() {
				cmd := m.armFrame()
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.engine.Restart(); err != nil {
		m.logger.Warn("restart failed", "err", err)
		return m, nil
	}
	return m.sessionStarted()
}

// sessionStarted arms a fresh frame chain for a new session.
func (m Model) sessionStarted() (tea.Model, tea.Cmd) {
	m.flashing = false
	m.prompt = promptNone
	cmd := tea.Batch(m.armFrame(), m.drainEvents())
	return m, cmd
}

// armFrame starts a new frame chain. Frames still in flight from an older
// chain carry a stale generation and are ignored.
func (m *Model) armFrame() tea.Cmd {
	m.frameGen++
	return frameCmd(m.config.TickRate, m.frameGen)
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.frameGen {
		return m, nil
	}
	rearm := m.engine.Tick(msg.At)
	cmd := m.drainEvents()
	if !rearm {
		return m, cmd
	}
	return m, tea.Batch(frameCmd(m.config.TickRate, m.frameGen), cmd)
}

// drainEvents turns engine events into presentation effects.
func (m *Model) drainEvents() tea.Cmd {
	cleared := 0
	for _, ev := range m.engine.Events() {
		switch ev.Type {
		case tetris.EventLineClear:
			cleared++
		case tetris.EventTopOut, tetris.EventTimeUp:
			m.logger.Debug("session over", "reason", ev.Type, "score", ev.Score)
		}
	}
	if cleared == 0 {
		return nil
	}
	m.flashSeq++
	m.flashing = true
	return flashCmd(m.flashSeq)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.engine.Mode() == tetris.ModeLobby {
		return m.lobby.view(m.width)
	}

	m.engine.Render(m.screen)
	if m.flashing {
		m.screen.Tint(tetris.BoardRect(m.screen.Width(), m.screen.Height()), flashColor)
	}
	return RenderScreen(m.screen) + "\n" + centerText(m.footer(), m.width)
}

// footer shows the pending prompt or the keys that apply right now.
func (m Model) footer() string {
	switch {
	case m.prompt != promptNone:
		return promptStyle.Render(m.prompt.question()) + " " + m.help.ShortHelpView(m.confirm.ShortHelp())
	case m.engine.Mode() == tetris.ModeGameOver:
		return helpStyle.Render(m.help.ShortHelpView(m.keys.gameOverHelp()))
	default:
		return helpStyle.Render(m.help.View(m.keys))
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
