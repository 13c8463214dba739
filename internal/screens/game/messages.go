package game

import "time"

// frameInterval is how often the session clock is advanced while tasks are
// pending.
const frameInterval = 50 * time.Millisecond

// frameMsg advances the session clock. seq identifies the frame loop that
// produced it so a restarted loop ignores frames of the old one.
type frameMsg struct {
	seq int
	at  time.Time
}

// audioErrMsg carries an asynchronous background music failure.
type audioErrMsg struct {
	err error
}
