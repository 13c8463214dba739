// Package game implements the whack-a-mole screen. It renders the board,
// maps keys to slot hits and drives the session clock from frame ticks.
package game

import (
	"fmt"
	"log"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
	"github.com/abhisek/molemath/internal/router"
	"github.com/abhisek/molemath/internal/scheduler"
	"github.com/abhisek/molemath/internal/screen"
	"github.com/abhisek/molemath/internal/session"
	"github.com/abhisek/molemath/internal/ui/components"
	"github.com/abhisek/molemath/internal/ui/layout"
)

// Duration controls.
const (
	durationStep       = 15
	maxDurationSeconds = 600
)

// Options configures the game screen.
type Options struct {
	Generator problemgen.Generator
	Presenter session.Presenter

	// Audio plays the background music. AudioErrors, when set, delivers
	// playback failures that happen after PlayLoop returned.
	Audio       session.AudioPlayer
	AudioErrors <-chan error

	Config session.Config
	Music  bool
	Logger *log.Logger
}

type slotView struct {
	value      int
	occupied   bool
	selectable bool
	errored    bool
}

// Screen is the game screen. It is the controller's display, input source
// and event listener.
type Screen struct {
	ctrl  *session.Controller
	clock *scheduler.Clock
	now   func() time.Time

	onSlot func(slot int)

	// Display state.
	slots           []slotView
	celebrate       int
	msgKind         session.MessageKind
	msgText         string
	controlsEnabled bool

	// Mirrored from controller events.
	problem       string
	score         int
	combo         int
	maxCombo      int
	correct       int
	timeRemaining int
	musicPlaying  bool
	summary       *session.Summary
	best          int

	confirmQuit   bool
	editing       bool
	durationInput components.NumberInput
	errMsg        string

	frameSeq      int
	framesRunning bool
	lastFrame     time.Time

	audioErrs    <-chan error
	waitingAudio bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)
var _ session.Display = (*Screen)(nil)
var _ session.InputSource = (*Screen)(nil)

// New creates the game screen and its session controller.
func New(opts Options) *Screen {
	s := &Screen{
		clock:           scheduler.NewClock(),
		now:             time.Now,
		slots:           make([]slotView, round.NumSlots),
		celebrate:       -1,
		controlsEnabled: true,
		durationInput:   components.NewNumberInput("seconds", 1, maxDurationSeconds),
		audioErrs:       opts.AudioErrors,
		msgKind:         session.MessageInfo,
		msgText:         "Press S to start!",
	}
	s.ctrl = session.New(session.Options{
		Generator: opts.Generator,
		Presenter: opts.Presenter,
		Scheduler: s.clock,
		Display:   s,
		Audio:     opts.Audio,
		Listener:  s.onEvent,
		Logger:    opts.Logger,
		Config:    opts.Config,
		Music:     opts.Music,
		Slots:     round.NumSlots,
	})
	s.ctrl.Bind(s)
	s.timeRemaining = s.ctrl.State().TimeRemaining
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.waitAudio()
}

func (s *Screen) Title() string {
	return "Whack-a-Mole"
}

// Config returns the configuration the next session starts with.
func (s *Screen) Config() session.Config {
	return s.ctrl.Config()
}

// MusicEnabled reports the music preference.
func (s *Screen) MusicEnabled() bool {
	return s.ctrl.MusicEnabled()
}

// BestScore returns the highest score of the sessions played so far.
func (s *Screen) BestScore() int {
	return s.best
}

func (s *Screen) HandlesEscape() bool {
	return true
}

func (s *Screen) Status() string {
	return fmt.Sprintf("★ %d   ⏱ %ds", s.score, max(s.timeRemaining, 0))
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.editing:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Seconds"},
			{Key: "Enter", Description: "Set"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	case s.running():
		return []layout.KeyHint{
			{Key: "1-9", Description: "Whack"},
			{Key: "M", Description: "Music"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Start"},
		{Key: "D", Description: "Difficulty"},
		{Key: "+/-", Description: "Time"},
		{Key: "T", Description: "Type time"},
		{Key: "M", Description: "Music"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return s, s.handleFrame(msg)

	case audioErrMsg:
		s.ctrl.AudioFailed(msg.err)
		s.waitingAudio = false
		return s, s.waitAudio()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.durationInput, cmd = s.durationInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) running() bool {
	return s.ctrl.State().Phase == session.PhaseRunning
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	s.errMsg = ""

	if s.editing {
		return s.handleDurationKey(msg)
	}

	if s.confirmQuit {
		switch key {
		case "y":
			s.confirmQuit = false
			s.ctrl.End()
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if s.running() {
			s.confirmQuit = true
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "s", "enter":
		if s.running() {
			return s, nil
		}
		if err := s.ctrl.Start(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.summary = nil
		return s, s.startFrames()

	case "d":
		if s.controlsEnabled {
			s.report(s.ctrl.SetDifficulty(s.ctrl.Config().Difficulty.Next()))
		}

	case "+", "=":
		if s.controlsEnabled {
			s.setDuration(s.ctrl.Config().DurationSeconds + durationStep)
		}

	case "-":
		if s.controlsEnabled {
			s.setDuration(s.ctrl.Config().DurationSeconds - durationStep)
		}

	case "t":
		if s.controlsEnabled {
			var cmd tea.Cmd
			s.editing = true
			s.durationInput, cmd = s.durationInput.Focus()
			return s, cmd
		}

	case "m":
		s.ctrl.ToggleMusic()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.onSlot != nil {
			s.onSlot(int(key[0] - '1'))
		}
	}
	return s, nil
}

func (s *Screen) handleDurationKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v, ok := s.durationInput.Submit()
		if !ok {
			return s, nil
		}
		s.editing = false
		s.durationInput = s.durationInput.Blur()
		s.setDuration(v)
		return s, nil
	case "esc":
		s.editing = false
		s.durationInput = s.durationInput.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.durationInput, cmd = s.durationInput.Update(msg)
	return s, cmd
}

func (s *Screen) setDuration(seconds int) {
	s.report(s.ctrl.SetDuration(min(max(seconds, durationStep), maxDurationSeconds)))
}

func (s *Screen) report(err error) {
	if err != nil {
		s.errMsg = err.Error()
	}
}

// startFrames begins a new frame loop. Frames still in flight from an
// earlier loop carry an old seq and are ignored.
func (s *Screen) startFrames() tea.Cmd {
	s.framesRunning = true
	s.frameSeq++
	s.lastFrame = s.now()
	return frameCmd(s.frameSeq)
}

// handleFrame advances the clock by the wall time since the last frame. The
// loop stops once no task is pending.
func (s *Screen) handleFrame(msg frameMsg) tea.Cmd {
	if msg.seq != s.frameSeq || !s.framesRunning {
		return nil
	}
	if elapsed := msg.at.Sub(s.lastFrame); elapsed > 0 {
		s.lastFrame = msg.at
		s.clock.Advance(elapsed)
	}
	if !s.framesRunning || s.clock.Pending() == 0 {
		s.framesRunning = false
		return nil
	}
	return frameCmd(msg.seq)
}

// stopFrames ends the current loop. The screen may be popped before the
// last frame arrives, so the loop cannot rely on handleFrame to stop it.
func (s *Screen) stopFrames() {
	s.framesRunning = false
	s.frameSeq++
}

func frameCmd(seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{seq: seq, at: t}
	})
}

// waitAudio blocks on the player's error channel. Only one wait is
// outstanding at a time.
func (s *Screen) waitAudio() tea.Cmd {
	if s.audioErrs == nil || s.waitingAudio {
		return nil
	}
	s.waitingAudio = true
	ch := s.audioErrs
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return audioErrMsg{err: err}
	}
}

func (s *Screen) onEvent(e session.Event) {
	switch e := e.(type) {
	case session.ScoreChanged:
		s.score = e.Score
	case session.ComboChanged:
		s.combo, s.maxCombo = e.Combo, e.MaxCombo
	case session.CorrectCountChanged:
		s.correct = e.CorrectCount
	case session.TimeChanged:
		s.timeRemaining = e.TimeRemaining
	case session.RoundStarted:
		s.problem = e.Problem.Text()
		s.celebrate = -1
	case session.MusicChanged:
		s.musicPlaying = e.Playing
	case session.SessionEnded:
		sum := e.Summary
		s.summary = &sum
		s.best = max(s.best, sum.Score)
		s.problem = ""
		s.confirmQuit = false
		s.stopFrames()
	}
}

// OnSlotActivated implements session.InputSource.
func (s *Screen) OnSlotActivated(fn func(slot int)) {
	s.onSlot = fn
}

func (s *Screen) slot(i int) *slotView {
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return &s.slots[i]
}

func (s *Screen) RenderSlot(slot, value int, occupied bool) {
	if v := s.slot(slot); v != nil {
		v.value, v.occupied = value, occupied
		if !occupied && s.celebrate == slot {
			s.celebrate = -1
		}
	}
}

func (s *Screen) SetSlotSelectable(slot int, selectable bool) {
	if v := s.slot(slot); v != nil {
		v.selectable = selectable
	}
}

func (s *Screen) MarkSlotError(slot int, marked bool) {
	if v := s.slot(slot); v != nil {
		v.errored = marked
	}
}

func (s *Screen) ShowMessage(kind session.MessageKind, text string) {
	s.msgKind, s.msgText = kind, text
}

func (s *Screen) PlayCelebration(slot int) {
	s.celebrate = slot
}

func (s *Screen) SetControlsEnabled(enabled bool) {
	s.controlsEnabled = enabled
}
