// Package audio plays the background music by running an external player
// command in a loop.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// ErrNoCommand is returned when no player command is configured.
var ErrNoCommand = errors.New("no music command configured")

// restartDelay throttles the loop when the player exits immediately.
const restartDelay = 200 * time.Millisecond

// CommandPlayer loops an external command such as "mpg123 -q music.mp3".
// Each clean exit restarts the command; a failed run stops the loop and is
// reported on Errors.
type CommandPlayer struct {
	name   string
	args   []string
	logger *log.Logger
	errs   chan error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCommandPlayer parses command into a program and its arguments.
func NewCommandPlayer(command string, logger *log.Logger) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &CommandPlayer{
		name:   fields[0],
		args:   fields[1:],
		logger: logger,
		errs:   make(chan error, 1),
	}, nil
}

// Command returns the configured command line.
func (p *CommandPlayer) Command() string {
	return strings.Join(append([]string{p.name}, p.args...), " ")
}

// Errors delivers asynchronous playback failures. At most one failure is
// buffered; later ones are logged and dropped.
func (p *CommandPlayer) Errors() <-chan error {
	return p.errs
}

// PlayLoop starts the player in the background. It fails fast when the
// program cannot be found. Calling it while already playing is a no-op.
func (p *CommandPlayer) PlayLoop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return nil
	}
	path, err := exec.LookPath(p.name)
	if err != nil {
		return fmt.Errorf("music player %q: %w", p.name, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx, path, p.done)
	return nil
}

// Playing reports whether a loop is active. A loop that failed is no longer
// active by the time its error is delivered.
func (p *CommandPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Stop kills the player and waits for the loop to exit.
func (p *CommandPlayer) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *CommandPlayer) loop(ctx context.Context, path string, done chan struct{}) {
	defer close(done)
	for {
		cmd := exec.CommandContext(ctx, path, p.args...)
		err := cmd.Run()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			p.mu.Lock()
			if p.done == done {
				p.cancel()
				p.cancel, p.done = nil, nil
			}
			p.mu.Unlock()
			p.fail(fmt.Errorf("music player %q: %w", p.name, err))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

func (p *CommandPlayer) fail(err error) {
	select {
	case p.errs <- err:
	default:
		p.logger.Printf("warning: dropped audio error: %v", err)
	}
}
