package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
	"github.com/abhisek/molemath/internal/router"
	"github.com/abhisek/molemath/internal/session"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeAudio struct {
	plays  int
	stops  int
	active bool
}

func (a *fakeAudio) PlayLoop() error {
	a.plays++
	a.active = true
	return nil
}

func (a *fakeAudio) Stop() {
	a.stops++
	a.active = false
}

func (a *fakeAudio) Playing() bool { return a.active }

func newTestScreen(t *testing.T, cfg session.Config) (*Screen, *fakeAudio) {
	t.Helper()
	gen := problemgen.NewSeeded(11)
	audio := &fakeAudio{}
	s := New(Options{
		Generator: gen,
		Presenter: round.NewPresenter(gen, rand.New(rand.NewPCG(3, 4))),
		Audio:     audio,
		Config:    cfg,
		Music:     true,
	})
	s.now = func() time.Time { return epoch }
	return s, audio
}

func press(s *Screen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

// frame delivers a frame of the current loop at epoch+at.
func frame(s *Screen, at time.Duration) tea.Cmd {
	_, cmd := s.Update(frameMsg{seq: s.frameSeq, at: epoch.Add(at)})
	return cmd
}

// answerSlot returns the board slot holding the answer of the current round.
func answerSlot(t *testing.T, s *Screen) int {
	t.Helper()
	r, ok := s.ctrl.Round()
	require.True(t, ok, "no round in progress")
	for i, v := range s.slots {
		if v.occupied && v.value == r.Problem.Answer {
			return i
		}
	}
	t.Fatal("answer not on board")
	return -1
}

func occupied(s *Screen) int {
	n := 0
	for _, v := range s.slots {
		if v.occupied {
			n++
		}
	}
	return n
}

func TestStart_BeginsSessionAndFrames(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())

	cmd := press(s, "s")
	require.NotNil(t, cmd, "start should begin the frame loop")
	assert.True(t, s.running())
	assert.False(t, s.controlsEnabled)
	assert.Equal(t, "Get ready...", s.msgText)
	assert.Equal(t, 0, occupied(s))
}

func TestFrame_PresentsFirstRound(t *testing.T) {
	s, audio := newTestScreen(t, session.DefaultConfig())
	press(s, "s")

	cmd := frame(s, 1100*time.Millisecond)
	assert.NotNil(t, cmd, "frames continue while tasks are pending")
	assert.Equal(t, round.NumDisplayValues, occupied(s))
	assert.NotEmpty(t, s.problem)
	assert.Equal(t, 59, s.timeRemaining)
	assert.Equal(t, 1, audio.plays)
	assert.True(t, s.musicPlaying)
}

func TestFrame_StaleSeqIgnored(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")

	_, cmd := s.Update(frameMsg{seq: s.frameSeq - 1, at: epoch.Add(5 * time.Second)})
	assert.Nil(t, cmd)
	assert.Equal(t, time.Duration(0), s.clock.Now())
}

func TestFrame_LoopRestartsAfterEnd(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	first := s.frameSeq
	press(s, "esc")
	press(s, "y")
	assert.False(t, s.framesRunning)

	_, cmd := s.Update(frameMsg{seq: first, at: epoch.Add(time.Second)})
	assert.Nil(t, cmd, "a frame from the ended session is ignored")

	require.NotNil(t, press(s, "s"))
	assert.True(t, s.framesRunning)
	_, cmd = s.Update(frameMsg{seq: first, at: epoch.Add(time.Second)})
	assert.Nil(t, cmd)
	assert.NotNil(t, frame(s, 1100*time.Millisecond))
}

func TestHit_CorrectAnswerByKey(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	frame(s, 1100*time.Millisecond)

	slot := answerSlot(t, s)
	press(s, string(rune('1'+slot)))

	assert.Equal(t, 10, s.score)
	assert.Equal(t, 1, s.combo)
	assert.Equal(t, 1, s.correct)
	assert.Equal(t, slot, s.celebrate)
	assert.Equal(t, session.MessageCorrect, s.msgKind)
	assert.Equal(t, 1, occupied(s))

	// The next round replaces the celebration.
	frame(s, 1100*time.Millisecond+session.CelebrationDelay)
	assert.Equal(t, -1, s.celebrate)
	assert.Equal(t, round.NumDisplayValues, occupied(s))
}

func TestHit_WrongAnswerMarksSlot(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	frame(s, 1100*time.Millisecond)

	answer := answerSlot(t, s)
	wrong := -1
	for i, v := range s.slots {
		if v.occupied && i != answer {
			wrong = i
			break
		}
	}
	require.NotEqual(t, -1, wrong)

	press(s, string(rune('1'+wrong)))
	assert.True(t, s.slots[wrong].errored)
	assert.False(t, s.slots[wrong].selectable)
	assert.Equal(t, session.MessageWrong, s.msgKind)
	assert.Contains(t, s.View(80, 30), "✗")
}

func TestEscape_ConfirmThenEnd(t *testing.T) {
	s, audio := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	frame(s, 1100*time.Millisecond)

	assert.Nil(t, press(s, "esc"))
	assert.True(t, s.confirmQuit)
	assert.Contains(t, s.View(80, 30), "End this game?")

	press(s, "n")
	assert.False(t, s.confirmQuit)
	assert.True(t, s.running())

	press(s, "esc")
	press(s, "y")
	assert.False(t, s.running())
	require.NotNil(t, s.summary)
	assert.True(t, s.summary.EndedEarly)
	assert.Equal(t, 1, audio.stops)
	assert.True(t, s.controlsEnabled)

	// No tasks remain, so the frame loop stops.
	assert.Nil(t, frame(s, 2*time.Second))
	assert.False(t, s.framesRunning)
}

func TestEscape_IdlePopsScreen(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())

	cmd := press(s, "esc")
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSession_RunsOutOfTime(t *testing.T) {
	s, _ := newTestScreen(t, session.Config{DurationSeconds: 2, Difficulty: problemgen.DifficultySimple})
	press(s, "s")

	assert.Nil(t, frame(s, 2100*time.Millisecond))
	require.NotNil(t, s.summary)
	assert.False(t, s.summary.EndedEarly)
	assert.Equal(t, 0, s.timeRemaining)
	assert.Equal(t, session.MessageGameOver, s.msgKind)
	assert.Contains(t, s.View(80, 40), "Time's up!")

	// Starting again dismisses the summary.
	press(s, "s")
	assert.Nil(t, s.summary)
	assert.Equal(t, 2, s.timeRemaining)
}

func TestControls_DifficultyAndDuration(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())

	press(s, "d")
	assert.Equal(t, problemgen.DifficultySimple, s.ctrl.Config().Difficulty)

	press(s, "+")
	assert.Equal(t, 75, s.ctrl.Config().DurationSeconds)
	assert.Equal(t, 75, s.timeRemaining)

	press(s, "-")
	press(s, "-")
	assert.Equal(t, 45, s.ctrl.Config().DurationSeconds)

	for range 10 {
		press(s, "-")
	}
	assert.Equal(t, durationStep, s.ctrl.Config().DurationSeconds)
}

func TestControls_TypedDuration(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())

	press(s, "t")
	require.True(t, s.editing)
	press(s, "9")
	press(s, "0")
	press(s, "enter")

	assert.False(t, s.editing)
	assert.Equal(t, 90, s.ctrl.Config().DurationSeconds)

	press(s, "t")
	press(s, "esc")
	assert.False(t, s.editing)
	assert.Equal(t, 90, s.ctrl.Config().DurationSeconds)
}

func TestControls_LockedWhileRunning(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")

	press(s, "d")
	press(s, "+")
	press(s, "t")
	assert.False(t, s.editing)
	assert.Equal(t, session.DefaultConfig(), s.ctrl.Config())
}

func TestMusic_ToggleAndFailure(t *testing.T) {
	s, audio := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	frame(s, 1100*time.Millisecond)
	require.True(t, s.musicPlaying)

	press(s, "m")
	assert.False(t, s.musicPlaying)
	assert.Equal(t, 1, audio.stops)

	press(s, "m")
	assert.True(t, s.musicPlaying)

	s.Update(audioErrMsg{err: errors.New("player exited")})
	assert.True(t, s.musicPlaying, "the loop that failed was already replaced")

	audio.active = false
	s.Update(audioErrMsg{err: errors.New("player exited")})
	assert.False(t, s.musicPlaying)
	assert.True(t, s.running())
}

func TestWaitAudio_SingleWaiter(t *testing.T) {
	ch := make(chan error, 1)
	s := New(Options{
		Generator:   problemgen.NewSeeded(1),
		Presenter:   round.NewPresenter(problemgen.NewSeeded(2), nil),
		AudioErrors: ch,
	})

	cmd := s.Init()
	require.NotNil(t, cmd)
	assert.Nil(t, s.Init(), "a second Init must not start another waiter")

	ch <- errors.New("boom")
	msg := cmd()
	assert.Equal(t, audioErrMsg{err: errors.New("boom")}, msg)
}

func TestStatusAndHints(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	assert.Equal(t, "★ 0   ⏱ 60s", s.Status())
	assert.Equal(t, "S", s.KeyHints()[0].Key)

	press(s, "s")
	assert.Equal(t, "1-9", s.KeyHints()[0].Key)
}

func TestBestScore(t *testing.T) {
	s, _ := newTestScreen(t, session.DefaultConfig())
	press(s, "s")
	frame(s, 1100*time.Millisecond)
	press(s, string(rune('1'+answerSlot(t, s))))
	press(s, "esc")
	press(s, "y")
	assert.Equal(t, 10, s.BestScore())

	press(s, "s")
	press(s, "esc")
	press(s, "y")
	assert.Equal(t, 10, s.BestScore(), "a lower score keeps the best")
}
