// Package session runs the game session: the countdown, the rounds on the
// board, hit resolution and scoring.
package session

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
	"github.com/abhisek/molemath/internal/scheduler"
)

// Presenter places a round's values on the board.
type Presenter interface {
	Present(b *round.Board, answer int, d problemgen.Difficulty) []round.Placement
}

// Options configures a Controller. Generator, Presenter and Scheduler are
// required; every other field has a working default.
type Options struct {
	Generator problemgen.Generator
	Presenter Presenter
	Scheduler scheduler.Scheduler

	Display  Display
	Audio    AudioPlayer
	Listener Listener
	Logger   *log.Logger

	// Config is the initial session configuration. Zero means DefaultConfig.
	Config Config

	// Music is the initial music preference.
	Music bool

	// Slots is the board size. Zero means round.NumSlots.
	Slots int

	// NewSessionID generates session ids. Defaults to uuid.NewString.
	NewSessionID func() string
}

// Controller owns the session and round state. All methods, and every task
// it schedules, must run on one goroutine.
type Controller struct {
	gen       problemgen.Generator
	presenter Presenter
	sched     scheduler.Scheduler
	display   Display
	audio     AudioPlayer
	listener  Listener
	logger    *log.Logger
	newID     func() string

	cfg   Config
	state State
	round *round.State
	board *round.Board

	// epoch changes on every start so callbacks of an older session can
	// recognise themselves as stale.
	epoch int

	music   bool
	playing bool

	// sessionTasks live until the session ends: the countdown and start delay.
	sessionTasks []scheduler.Handle

	// roundTasks reference the current round: the refresh cadence, error
	// display timers and the celebration delay.
	roundTasks []scheduler.Handle
}

// New creates an idle Controller.
func New(opts Options) *Controller {
	c := &Controller{
		gen:       opts.Generator,
		presenter: opts.Presenter,
		sched:     opts.Scheduler,
		display:   opts.Display,
		audio:     opts.Audio,
		listener:  opts.Listener,
		logger:    opts.Logger,
		newID:     opts.NewSessionID,
		cfg:       opts.Config,
		music:     opts.Music,
	}
	if c.display == nil {
		c.display = nopDisplay{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	if c.cfg == (Config{}) {
		c.cfg = DefaultConfig()
	}
	slots := opts.Slots
	if slots <= 0 {
		slots = round.NumSlots
	}
	c.board = round.NewBoard(slots)
	c.state = State{
		DurationSeconds: c.cfg.DurationSeconds,
		TimeRemaining:   c.cfg.DurationSeconds,
		Difficulty:      c.cfg.Difficulty,
		Phase:           PhaseIdle,
	}
	return c
}

// Bind registers Select as the handler for slot activations from src.
func (c *Controller) Bind(src InputSource) {
	src.OnSlotActivated(c.Select)
}

// State returns a copy of the session counters.
func (c *Controller) State() State {
	return c.state
}

// Round returns the round in progress. ok is false between rounds and
// outside a running session.
func (c *Controller) Round() (r round.State, ok bool) {
	if c.round == nil {
		return round.State{}, false
	}
	r = *c.round
	r.Values = append([]int(nil), c.round.Values...)
	return r, true
}

// Board returns a copy of the board slots.
func (c *Controller) Board() []round.Slot {
	return c.board.Slots()
}

// Config returns the configuration the next session will start with.
func (c *Controller) Config() Config {
	return c.cfg
}

// MusicEnabled reports the music preference.
func (c *Controller) MusicEnabled() bool {
	return c.music
}

// MusicPlaying reports whether background music is currently playing.
func (c *Controller) MusicPlaying() bool {
	return c.playing
}

// Configure replaces the session configuration. It fails while a session is
// running or when cfg is invalid.
func (c *Controller) Configure(cfg Config) error {
	if c.state.Phase == PhaseRunning {
		return ErrSessionRunning
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configure session: %w", err)
	}
	c.cfg = cfg
	if c.state.Phase == PhaseIdle {
		c.state.DurationSeconds = cfg.DurationSeconds
		c.state.TimeRemaining = cfg.DurationSeconds
		c.state.Difficulty = cfg.Difficulty
		c.emit(TimeChanged{TimeRemaining: cfg.DurationSeconds})
	}
	return nil
}

// SetDuration changes the session length in seconds.
func (c *Controller) SetDuration(seconds int) error {
	cfg := c.cfg
	cfg.DurationSeconds = seconds
	return c.Configure(cfg)
}

// SetDifficulty changes the difficulty of the next session.
func (c *Controller) SetDifficulty(d problemgen.Difficulty) error {
	cfg := c.cfg
	cfg.Difficulty = d
	return c.Configure(cfg)
}

// Start begins a new session. The countdown starts immediately; the first
// round and the music follow after StartDelay.
func (c *Controller) Start() error {
	if c.state.Phase == PhaseRunning {
		return ErrSessionRunning
	}
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	c.cancelTasks()
	c.epoch++
	epoch := c.epoch

	c.state = State{
		SessionID:       c.newID(),
		DurationSeconds: c.cfg.DurationSeconds,
		TimeRemaining:   c.cfg.DurationSeconds,
		Difficulty:      c.cfg.Difficulty,
		Phase:           PhaseRunning,
	}
	c.round = nil

	c.emit(ScoreChanged{Score: 0})
	c.emit(ComboChanged{})
	c.emit(CorrectCountChanged{})
	c.emit(TimeChanged{TimeRemaining: c.state.TimeRemaining})

	c.display.SetControlsEnabled(false)
	c.display.ShowMessage(MessageReady, "Get ready...")
	c.clearBoard()

	c.sessionTasks = append(c.sessionTasks,
		c.sched.Every(TickInterval, func() {
			if c.stale(epoch) {
				return
			}
			c.tick()
		}),
		c.sched.After(StartDelay, func() {
			if c.stale(epoch) {
				return
			}
			c.startRound()
			c.startMusic()
		}),
	)

	c.logger.Printf("session %s started: difficulty=%s duration=%ds",
		c.state.SessionID, c.state.Difficulty, c.state.DurationSeconds)
	return nil
}

// Select resolves a hit on slot. Hits outside a running round, on a solved
// round, or on an empty or locked slot are ignored.
func (c *Controller) Select(slot int) {
	if c.state.Phase != PhaseRunning || c.round == nil || c.round.Solved {
		return
	}
	s, ok := c.board.Slot(slot)
	if !ok || !s.Occupied || !s.Selectable {
		return
	}

	if s.Value == c.round.Problem.Answer {
		c.hit(slot)
		return
	}
	c.miss(slot, s.Value)
}

// End finishes a running session early. It is a no-op otherwise.
func (c *Controller) End() {
	c.end(true)
}

// ToggleMusic flips the music preference and returns the new value. Turning
// music on during a session starts playback; turning it off stops it.
func (c *Controller) ToggleMusic() bool {
	c.music = !c.music
	if c.music {
		if c.state.Phase == PhaseRunning {
			c.startMusic()
		}
	} else {
		c.stopMusic()
	}
	c.emit(MusicChanged{Enabled: c.music, Playing: c.playing})
	return c.music
}

// AudioFailed records an asynchronous playback failure. The session keeps
// running; playback is marked as stopped unless a newer loop has already
// replaced the one that failed.
func (c *Controller) AudioFailed(err error) {
	if err == nil {
		return
	}
	c.logger.Printf("warning: background music failed: %v", err)
	if c.playing && c.audio.Playing() {
		return
	}
	if c.playing {
		c.playing = false
		c.emit(MusicChanged{Enabled: c.music, Playing: false})
	}
}

func (c *Controller) tick() {
	c.state.TimeRemaining--
	c.emit(TimeChanged{TimeRemaining: c.state.TimeRemaining})
	if c.state.TimeRemaining <= 0 {
		c.end(false)
	}
}

func (c *Controller) startRound() {
	c.cancelRoundTasks()
	epoch := c.epoch

	seq := 1
	if c.round != nil {
		seq = c.round.Seq + 1
	}
	p := c.gen.Generate(c.state.Difficulty)
	if err := problemgen.Validate(p, c.state.Difficulty); err != nil {
		c.logger.Printf("warning: session %s: problem %s: %v", c.state.SessionID, p, err)
	}
	if p.Fallback {
		c.logger.Printf("session %s: fallback problem %s", c.state.SessionID, p)
	}

	c.round = &round.State{Problem: p, Seq: seq}
	placements := c.present()
	c.display.ShowMessage(MessagePrompt, "Find the correct answer!")
	c.emit(RoundStarted{Seq: seq, Problem: p, Placements: placements})

	c.roundTasks = append(c.roundTasks, c.sched.Every(round.RefreshInterval, func() {
		if c.stale(epoch) || c.round == nil || c.round.Seq != seq || c.round.Solved {
			return
		}
		c.emit(SlotsRefreshed{Seq: seq, Placements: c.present()})
	}))
}

// present re-populates the board for the current round and renders it.
func (c *Controller) present() []round.Placement {
	placements := c.presenter.Present(c.board, c.round.Problem.Answer, c.state.Difficulty)
	c.round.Values = round.Values(placements)
	c.render()
	return placements
}

func (c *Controller) hit(slot int) {
	profile := c.state.Difficulty.Profile()
	answer := c.round.Problem.Answer

	c.round.Solved = true
	c.state.Score += profile.CorrectPoints
	c.state.Combo++
	c.state.CorrectCount++
	c.state.MaxCombo = max(c.state.MaxCombo, c.state.Combo)

	c.cancelRoundTasks()
	for i := 0; i < c.board.Len(); i++ {
		if i != slot {
			c.board.Empty(i)
		}
	}
	c.board.SetSelectable(slot, false)
	c.board.SetError(slot, false)
	c.round.Values = []int{answer}
	c.render()

	c.display.PlayCelebration(slot)
	c.display.ShowMessage(MessageCorrect, "Correct! Great job!")
	c.emit(ScoreChanged{Score: c.state.Score})
	c.emit(ComboChanged{Combo: c.state.Combo, MaxCombo: c.state.MaxCombo})
	c.emit(CorrectCountChanged{CorrectCount: c.state.CorrectCount})
	c.emit(AnswerResult{Correct: true, CorrectAnswer: answer, Slot: slot, Value: answer})

	epoch := c.epoch
	c.roundTasks = append(c.roundTasks, c.sched.After(CelebrationDelay, func() {
		if c.stale(epoch) {
			return
		}
		c.clearBoard()
		c.startRound()
	}))
}

func (c *Controller) miss(slot, value int) {
	profile := c.state.Difficulty.Profile()
	answer := c.round.Problem.Answer

	c.state.Score = max(0, c.state.Score-profile.WrongPenalty)
	c.state.Combo = 0
	c.state.WrongCount++

	c.board.SetSelectable(slot, false)
	c.board.SetError(slot, true)
	c.display.SetSlotSelectable(slot, false)
	c.display.MarkSlotError(slot, true)
	c.display.ShowMessage(MessageWrong, fmt.Sprintf("Wrong! The answer is %d. Try again!", answer))
	c.emit(ScoreChanged{Score: c.state.Score})
	c.emit(ComboChanged{Combo: 0, MaxCombo: c.state.MaxCombo})
	c.emit(AnswerResult{Correct: false, CorrectAnswer: answer, Slot: slot, Value: value})

	epoch, seq, gen := c.epoch, c.round.Seq, c.board.Generation()
	c.roundTasks = append(c.roundTasks, c.sched.After(ErrorDisplayDelay, func() {
		if c.stale(epoch) || c.round == nil || c.round.Seq != seq || c.round.Solved {
			return
		}
		// A refresh since the miss already replaced the slot.
		if c.board.Generation() == gen {
			c.board.SetError(slot, false)
			c.board.SetSelectable(slot, true)
			c.display.MarkSlotError(slot, false)
			c.display.SetSlotSelectable(slot, true)
		}
		c.display.ShowMessage(MessageKeepLooking, "Keep looking for the correct answer!")
	}))
}

func (c *Controller) end(early bool) {
	if c.state.Phase != PhaseRunning {
		return
	}
	c.state.Phase = PhaseEnded
	c.cancelTasks()
	c.round = nil
	c.clearBoard()
	c.stopMusic()

	c.display.SetControlsEnabled(true)
	c.display.ShowMessage(MessageGameOver, fmt.Sprintf("Game over! You answered %d correctly, best combo %d!",
		c.state.CorrectCount, c.state.MaxCombo))

	summary := BuildSummary(c.state, early)
	c.logger.Printf("session %s ended: score=%d correct=%d wrong=%d max_combo=%d early=%t",
		summary.SessionID, summary.Score, summary.CorrectCount, summary.WrongCount, summary.MaxCombo, early)
	c.emit(SessionEnded{Summary: summary})
}

func (c *Controller) startMusic() {
	if !c.music || c.audio == nil || c.playing {
		return
	}
	if err := c.audio.PlayLoop(); err != nil {
		c.logger.Printf("warning: background music failed to start: %v", err)
		return
	}
	c.playing = true
	c.emit(MusicChanged{Enabled: c.music, Playing: true})
}

func (c *Controller) stopMusic() {
	if !c.playing {
		return
	}
	c.audio.Stop()
	c.playing = false
	c.emit(MusicChanged{Enabled: c.music, Playing: false})
}

func (c *Controller) clearBoard() {
	c.board.Clear()
	c.render()
}

func (c *Controller) render() {
	for i, s := range c.board.Slots() {
		c.display.RenderSlot(i, s.Value, s.Occupied)
		c.display.SetSlotSelectable(i, s.Selectable)
		c.display.MarkSlotError(i, s.Error)
	}
}

// stale reports whether a callback scheduled in epoch should do nothing.
func (c *Controller) stale(epoch int) bool {
	return epoch != c.epoch || c.state.Phase != PhaseRunning
}

func (c *Controller) cancelRoundTasks() {
	for _, h := range c.roundTasks {
		h.Cancel()
	}
	c.roundTasks = nil
}

func (c *Controller) cancelTasks() {
	c.cancelRoundTasks()
	for _, h := range c.sessionTasks {
		h.Cancel()
	}
	c.sessionTasks = nil
}

func (c *Controller) emit(e Event) {
	if c.listener != nil {
		c.listener(e)
	}
}

type nopDisplay struct{}

func (nopDisplay) RenderSlot(int, int, bool)       {}
func (nopDisplay) SetSlotSelectable(int, bool)     {}
func (nopDisplay) MarkSlotError(int, bool)         {}
func (nopDisplay) ShowMessage(MessageKind, string) {}
func (nopDisplay) PlayCelebration(int)             {}
func (nopDisplay) SetControlsEnabled(bool)         {}
