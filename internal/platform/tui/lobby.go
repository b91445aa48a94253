package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const nameCharLimit = 16

// lobbyModel collects the player name and the difficulty before a session.
type lobbyModel struct {
	presets []config.Difficulty
	bonus   int
	name    textinput.Model
	table   table.Model
	help    help.Model
	keys    LobbyKeyMap
	err     error
}

func newLobby(cfg config.TetrisConfig, playerName, difficulty string) lobbyModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = nameCharLimit
	ti.Width = nameCharLimit + 1
	ti.SetValue(playerName)
	ti.Focus()

	l := lobbyModel{
		presets: cfg.Difficulties,
		bonus:   cfg.Timer.ClearBonusSeconds,
		name:    ti,
		help:    help.New(),
		keys:    DefaultLobbyKeyMap(),
	}
	l.table = l.createTable()
	l.selectDifficulty(difficulty)
	return l
}

// createTable builds the difficulty picker, one row per preset.
func (l *lobbyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 10},
		{Title: "Drop", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Points", Width: 7},
	}

	rows := make([]table.Row, len(l.presets))
	for i, d := range l.presets {
		rows[i] = table.Row{
			d.Title(),
			fmt.Sprintf("%dms", d.DropIntervalMs),
			presetTime(d),
			fmt.Sprintf("%d", d.ScorePerLine),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
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

func presetTime(d config.Difficulty) string {
	if !d.Timed() {
		return "∞"
	}
	return tetris.FormatSeconds(d.TimeLimitSeconds)
}

// selectDifficulty moves the cursor to the preset with the given key.
// Unknown keys leave the cursor where it is.
func (l *lobbyModel) selectDifficulty(key string) {
	for i, d := range l.presets {
		if d.Key == key {
			l.table.SetCursor(i)
			return
		}
	}
}

// selected returns the key of the highlighted preset, or "" if there is none.
func (l lobbyModel) selected() string {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.presets) {
		return ""
	}
	return l.presets[i].Key
}

// playerName returns the name as typed.
func (l lobbyModel) playerName() string {
	return l.name.Value()
}

// update handles lobby keys other than Start and Quit.
func (l lobbyModel) update(msg tea.Msg) (lobbyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, l.keys.Up):
			l.table.MoveUp(1)
			return l, nil
		case key.Matches(msg, l.keys.Down):
			l.table.MoveDown(1)
			return l, nil
		}
		l.err = nil
	}

	var cmd tea.Cmd
	l.name, cmd = l.name.Update(msg)
	return l, cmd
}

func (l lobbyModel) view(width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("T E T R I S", width)))
	b.WriteString("\n\n")

	var form strings.Builder
	form.WriteString("Player name\n")
	form.WriteString(l.name.View())
	form.WriteString("\n\nDifficulty\n")
	form.WriteString(l.table.View())
	form.WriteString("\n\n")
	form.WriteString(l.describe())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panelStyle.Render(form.String())))
	b.WriteString("\n\n")

	if l.err != nil {
		b.WriteString(centerText(errorStyle.Render(startErrorText(l.err)), width))
		b.WriteString("\n")
	}

	b.WriteString(centerText(helpStyle.Render(l.help.View(l.keys)), width))
	return b.String()
}

// describe summarizes the highlighted preset in its accent color.
func (l lobbyModel) describe() string {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.presets) {
		return ""
	}
	d := l.presets[i]
	limit := "no time limit"
	if d.Timed() {
		limit = fmt.Sprintf("%s limit, +%ds per line", presetTime(d), l.bonus)
	}
	return difficultyStyle(d).Render(d.Title()) + "  " + helpStyle.Render(limit)
}

// startErrorText phrases a rejected start for the player.
func startErrorText(err error) string {
	switch {
	case errors.Is(err, tetris.ErrEmptyName):
		return "Please enter your name"
	case errors.Is(err, tetris.ErrNoDifficulty), errors.Is(err, tetris.ErrUnknownDifficulty):
		return "Please choose a difficulty"
	default:
		return err.Error()
	}
}
