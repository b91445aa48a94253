// Package tetris implements the falling-block puzzle engine: the grid, the
// piece catalog, the spawner and the session state machine driven by a frame
// clock and a one-second countdown. It has no terminal dependencies; the
// platform layer reads Snapshots and forwards commands.
package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Mode is the top-level session state. Pause is a flag inside ModePlaying.
type Mode int

const (
	ModeLobby Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLobby:
		return "lobby"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Clock returns the current time. It must be monotonic; time.Now is.
type Clock func() time.Time

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for the pause/start clock reference.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithSeed makes the piece sequence deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.spawner = NewSpawner(rand.New(rand.NewSource(seed)))
	}
}

// Engine owns one game session. It is not safe for concurrent use: every
// method must be called from the single goroutine that drives the game.
type Engine struct {
	cfg     config.TetrisConfig
	grid    *Grid
	spawner *Spawner
	active  ActivePiece
	clock   Clock
	logger  *log.Logger

	player string
	preset config.Difficulty
	mode   Mode
	paused bool
	score  int
	lines  int

	timeLeft int // Seconds; only meaningful when preset.Timed()

	dropAcc  time.Duration
	lastTime time.Time

	events []Event
}

// New creates an engine in the lobby.
func New(cfg config.TetrisConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		grid:    NewGrid(),
		spawner: NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano()))),
		clock:   time.Now,
		logger:  log.New(io.Discard),
		mode:    ModeLobby,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start validates the inputs and begins a fresh session. On a validation
// error nothing changes.
func (e *Engine) Start(playerName, difficultyKey string) error {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return ErrEmptyName
	}
	if difficultyKey == "" {
		return ErrNoDifficulty
	}
	preset, ok := e.cfg.Lookup(difficultyKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficultyKey)
	}

	e.player = name
	e.preset = preset
	e.score = 0
	e.lines = 0
	e.timeLeft = preset.TimeLimitSeconds
	e.grid.Reset()
	e.paused = false
	e.mode = ModePlaying
	e.events = e.events[:0]

	e.dropAcc = 0
	e.lastTime = e.clock()

	e.logger.Info("session started", "player", name, "difficulty", preset.Key,
		"interval", preset.DropInterval(), "time_limit", preset.TimeLimitSeconds)
	e.emit(EventStarted)

	// The lookahead is filled first so a "next" piece is always displayable.
	e.spawner.Refill()
	e.spawn()
	return nil
}

// Restart starts a new session with the current player and difficulty.
func (e *Engine) Restart() error {
	if e.player == "" {
		return ErrNoSession
	}
	return e.Start(e.player, e.preset.Key)
}

// ReturnToLobby leaves the current session. Score and grid stay readable
// until the next Start.
func (e *Engine) ReturnToLobby() {
	if e.mode == ModeLobby {
		return
	}
	e.logger.Debug("back to lobby", "from", e.mode, "score", e.score)
	e.mode = ModeLobby
	e.paused = false
}

// Tick advances the gravity accumulator to now and performs at most one soft
// drop when it exceeds the drop interval. It returns false, without touching
// any state, unless a session is playing and unpaused; the frame driver must
// re-arm itself only when Tick returns true.
func (e *Engine) Tick(now time.Time) bool {
	if !e.running() {
		return false
	}

	elapsed := now.Sub(e.lastTime)
	if elapsed < 0 {
		elapsed = 0
	}
	e.lastTime = now
	e.dropAcc += elapsed

	// The accumulator is reset, not decremented, so a slow frame never
	// produces catch-up drops.
	if e.dropAcc > e.preset.DropInterval() {
		e.softDrop()
	}
	return true
}

// SoftDrop moves the active piece one row down, locking it when it cannot move.
func (e *Engine) SoftDrop() {
	if !e.running() {
		return
	}
	e.softDrop()
}

func (e *Engine) softDrop() {
	e.active.Pos.Y++
	if e.grid.Collides(e.active.Shape, e.active.Pos) {
		e.active.Pos.Y--
		e.lock()
	}
	e.dropAcc = 0
}

// lock merges the active piece, sweeps full rows, awards score and time, and
// spawns the next piece.
func (e *Engine) lock() {
	e.grid.Merge(e.active.Shape, e.active.Pos)
	e.emit(EventPieceLocked)

	cleared := e.grid.SweepFullRows()
	if cleared > 0 {
		e.lines += cleared
		e.score += cleared * e.preset.ScorePerLine
		if e.preset.Timed() {
			e.timeLeft += cleared * e.cfg.Timer.ClearBonusSeconds
		}
		for range cleared {
			e.emit(EventLineClear)
		}
		e.logger.Debug("rows cleared", "rows", cleared, "score", e.score, "time_left", e.timeLeft)
	}

	e.spawn()
}

// spawn brings in the next piece and ends the game if it has no room.
func (e *Engine) spawn() {
	e.active = e.spawner.Spawn()
	if e.grid.Collides(e.active.Shape, e.active.Pos) {
		e.logger.Info("top out", "player", e.player, "score", e.score)
		e.emit(EventTopOut)
		e.EndGame()
	}
}

// MoveLeft shifts the active piece one column left if there is room.
func (e *Engine) MoveLeft() bool {
	return e.MoveHorizontal(-1)
}

// MoveRight shifts the active piece one column right if there is room.
func (e *Engine) MoveRight() bool {
	return e.MoveHorizontal(1)
}

// MoveHorizontal shifts the active piece by dir (-1 or +1) and reverts the
// move on collision. Reports whether the piece moved.
func (e *Engine) MoveHorizontal(dir int) bool {
	if !e.running() || (dir != -1 && dir != 1) {
		return false
	}
	e.active.Pos.X += dir
	if e.grid.Collides(e.active.Shape, e.active.Pos) {
		e.active.Pos.X -= dir
		return false
	}
	return true
}

// Rotate turns the active piece clockwise in place. There are no wall kicks:
// a rotation that collides is discarded. Reports whether the piece rotated.
func (e *Engine) Rotate() bool {
	if !e.running() {
		return false
	}
	rotated := RotateClockwise(e.active.Shape)
	if e.grid.Collides(rotated, e.active.Pos) {
		return false
	}
	e.active.Shape = rotated
	return true
}

// TogglePause flips the pause flag while playing. Resuming resets the clock
// reference so the next Tick sees a near-zero delta. Returns true when the
// game resumed and the frame driver has to be re-armed.
func (e *Engine) TogglePause() bool {
	if e.mode != ModePlaying {
		return false
	}
	e.paused = !e.paused
	e.logger.Debug("pause toggled", "paused", e.paused)
	if e.paused {
		return false
	}
	e.lastTime = e.clock()
	return true
}

// OnSecondElapsed runs the countdown. It is driven by a free-running one
// second interval and does nothing unless a timed session is playing.
func (e *Engine) OnSecondElapsed() {
	if !e.running() || !e.preset.Timed() {
		return
	}
	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.logger.Info("time up", "player", e.player, "score", e.score)
		e.emit(EventTimeUp)
		e.EndGame()
	}
}

// EndGame moves a playing session to game over and freezes the score.
func (e *Engine) EndGame() {
	if e.mode != ModePlaying {
		return
	}
	e.mode = ModeGameOver
	e.paused = false
	e.logger.Info("game over", "player", e.player, "difficulty", e.preset.Key,
		"score", e.score, "lines", e.lines)
}

// Events drains the pending presentation signals.
func (e *Engine) Events() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}

func (e *Engine) emit(t EventType) {
	e.events = append(e.events, Event{Type: t, Score: e.score})
}

func (e *Engine) running() bool {
	return e.mode == ModePlaying && !e.paused
}

// Mode returns the current session mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Paused reports whether a playing session is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// TimeRemaining returns the countdown in seconds and whether the session is timed.
func (e *Engine) TimeRemaining() (int, bool) {
	return e.timeLeft, e.preset.Timed()
}

// Player returns the name the current session was started with.
func (e *Engine) Player() string {
	return e.player
}

// Difficulty returns the preset of the current session.
func (e *Engine) Difficulty() config.Difficulty {
	return e.preset
}

// Config returns the presets the engine was created with.
func (e *Engine) Config() config.TetrisConfig {
	return e.cfg
}
