package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newTestModel(t *testing.T, name, difficulty string) Model {
	t.Helper()
	return NewModel(Options{
		Presets:    config.DefaultTetrisConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7},
		PlayerName: name,
		Difficulty: difficulty,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// startedModel returns a model with a session already running.
func startedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, "ayu", "hard")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Mode() != tetris.ModePlaying {
		t.Fatalf("Mode() = %v, expected playing (err: %v)", m.engine.Mode(), m.lobby.err)
	}
	if cmd == nil {
		t.Fatal("starting a session should arm the frame driver")
	}
	return m
}

func TestLobbyPrefill(t *testing.T) {
	m := newTestModel(t, "ayu", "hard")

	if got := m.lobby.playerName(); got != "ayu" {
		t.Errorf("playerName() = %q, expected %q", got, "ayu")
	}
	if got := m.lobby.selected(); got != "hard" {
		t.Errorf("selected() = %q, expected %q", got, "hard")
	}

	unknown := newTestModel(t, "", "nightmare")
	if got := unknown.lobby.selected(); got != "easy" {
		t.Errorf("unknown preset should keep the first row, got %q", got)
	}
}

func TestLobbyDifficultyPicker(t *testing.T) {
	m := newTestModel(t, "ayu", "hard")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.lobby.selected(); got != "extreme" {
		t.Errorf("after down selected() = %q, expected extreme", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.lobby.selected(); got != "normal" {
		t.Errorf("after up selected() = %q, expected normal", got)
	}
}

func TestLobbyLettersGoToName(t *testing.T) {
	m := newTestModel(t, "ay", "normal")

	m, _ = send(t, m, runeKey('q'))
	if m.quitting {
		t.Error("q in the lobby should be typed, not quit")
	}
	if got := m.lobby.playerName(); got != "ayq" {
		t.Errorf("playerName() = %q, expected %q", got, "ayq")
	}
}

func TestLobbyRejectsEmptyName(t *testing.T) {
	m := newTestModel(t, "   ", "normal")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Mode() != tetris.ModeLobby {
		t.Errorf("Mode() = %v, expected lobby", m.engine.Mode())
	}
	if !errors.Is(m.lobby.err, tetris.ErrEmptyName) {
		t.Errorf("lobby error = %v, expected ErrEmptyName", m.lobby.err)
	}
	if cmd != nil {
		t.Error("a rejected start must not arm the frame driver")
	}
	if !strings.Contains(m.View(), "Please enter your name") {
		t.Error("lobby should show the validation message")
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	m := startedModel(t)
	first := m.frameGen

	// Pause and resume: the resume starts a new chain.
	m, _ = send(t, m, runeKey('p'))
	m, cmd := send(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("resume should re-arm the frame driver")
	}
	if m.frameGen == first {
		t.Fatal("resume should start a new frame generation")
	}

	if _, cmd := send(t, m, FrameMsg{Gen: first, At: time.Now()}); cmd != nil {
		t.Error("frame from an abandoned chain should not re-arm")
	}
	if _, cmd := send(t, m, FrameMsg{Gen: m.frameGen, At: time.Now()}); cmd == nil {
		t.Error("current frame should re-arm")
	}
}

func TestFrameChainStopsWhilePaused(t *testing.T) {
	m := startedModel(t)
	m, cmd := send(t, m, runeKey('p'))
	if cmd != nil {
		t.Error("pausing should not arm anything")
	}
	if !m.engine.Paused() {
		t.Fatal("engine should be paused")
	}

	if _, cmd := send(t, m, FrameMsg{Gen: m.frameGen, At: time.Now()}); cmd != nil {
		t.Error("frames while paused should end the chain")
	}
}

func TestSecondDriverAlwaysRearms(t *testing.T) {
	m := newTestModel(t, "ayu", "normal")
	if _, cmd := send(t, m, SecondMsg(time.Now())); cmd == nil {
		t.Error("second driver should re-arm in the lobby")
	}

	m = startedModel(t)
	left, _ := m.engine.TimeRemaining()
	m, cmd := send(t, m, SecondMsg(time.Now()))
	if cmd == nil {
		t.Error("second driver should re-arm while playing")
	}
	if got, _ := m.engine.TimeRemaining(); got != left-1 {
		t.Errorf("TimeRemaining() = %d, expected %d", got, left-1)
	}
}

func TestRestartPrompt(t *testing.T) {
	m := startedModel(t)
	gen := m.frameGen

	m, _ = send(t, m, runeKey('r'))
	if m.prompt != promptRestart {
		t.Fatalf("prompt = %v, expected restart prompt", m.prompt)
	}
	if !m.engine.Paused() {
		t.Error("prompt should pause the game")
	}
	if !strings.Contains(m.View(), "Restart this game?") {
		t.Error("view should show the prompt")
	}

	// Declining resumes with a fresh frame chain.
	m, cmd := send(t, m, runeKey('n'))
	if m.prompt != promptNone || m.engine.Paused() {
		t.Errorf("after n: prompt = %v, paused = %v", m.prompt, m.engine.Paused())
	}
	if cmd == nil || m.frameGen == gen {
		t.Error("declining should re-arm the frame driver")
	}

	m, _ = send(t, m, runeKey('r'))
	m, cmd = send(t, m, runeKey('y'))
	if m.engine.Mode() != tetris.ModePlaying || m.engine.Paused() {
		t.Errorf("after y: mode = %v, paused = %v", m.engine.Mode(), m.engine.Paused())
	}
	if cmd == nil {
		t.Error("restart should arm the frame driver")
	}
}

func TestPromptKeepsManualPause(t *testing.T) {
	m := startedModel(t)
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, runeKey('b'))
	m, cmd := send(t, m, runeKey('n'))

	if !m.engine.Paused() {
		t.Error("declining should leave a manual pause in place")
	}
	if cmd != nil {
		t.Error("nothing should be armed while paused")
	}
}

func TestBackPromptReturnsToLobby(t *testing.T) {
	m := startedModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompt != promptLobby {
		t.Fatalf("prompt = %v, expected lobby prompt", m.prompt)
	}
	m, _ = send(t, m, runeKey('y'))
	if m.engine.Mode() != tetris.ModeLobby {
		t.Errorf("Mode() = %v, expected lobby", m.engine.Mode())
	}
	if !strings.Contains(m.View(), "T E T R I S") {
		t.Error("lobby view expected after leaving the game")
	}
}

func TestGameOverKeysSkipPrompt(t *testing.T) {
	m := startedModel(t)
	m.engine.EndGame()

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay expected")
	}

	m, cmd := send(t, m, runeKey('r'))
	if m.prompt != promptNone {
		t.Error("restart after game over should not ask")
	}
	if m.engine.Mode() != tetris.ModePlaying || cmd == nil {
		t.Errorf("Mode() = %v, expected a new running session", m.engine.Mode())
	}

	m.engine.EndGame()
	m, _ = send(t, m, runeKey('b'))
	if m.engine.Mode() != tetris.ModeLobby {
		t.Errorf("Mode() = %v, expected lobby", m.engine.Mode())
	}
}

func TestFlashSequence(t *testing.T) {
	m := startedModel(t)
	m.flashing = true
	m.flashSeq = 2

	m, _ = send(t, m, flashDoneMsg(1))
	if !m.flashing {
		t.Error("an older flash must not end the current one")
	}
	m, _ = send(t, m, flashDoneMsg(2))
	if m.flashing {
		t.Error("flash should end")
	}
}

func TestGameViewAndQuit(t *testing.T) {
	m := startedModel(t)

	view := m.View()
	for _, want := range []string{"ayu", "HARD", "2:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("game view missing %q", want)
		}
	}

	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit during a game")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsHelpLine(t *testing.T) {
	m := newTestModel(t, "ayu", "normal")
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}
