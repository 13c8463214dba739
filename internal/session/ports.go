package session

// MessageKind classifies a status message so the display can style it.
type MessageKind string

const (
	MessageInfo        MessageKind = "info"
	MessageReady       MessageKind = "ready"
	MessagePrompt      MessageKind = "prompt"
	MessageCorrect     MessageKind = "correct"
	MessageWrong       MessageKind = "wrong"
	MessageKeepLooking MessageKind = "keep-looking"
	MessageGameOver    MessageKind = "game-over"
)

// Display renders the board and the status line.
type Display interface {
	// RenderSlot shows value in slot, or empties it when occupied is false.
	RenderSlot(slot, value int, occupied bool)
	SetSlotSelectable(slot int, selectable bool)

	// MarkSlotError toggles the transient wrong-hit mark on a slot.
	MarkSlotError(slot int, marked bool)
	ShowMessage(kind MessageKind, text string)

	// PlayCelebration starts the correct-hit effect on slot. The effect must
	// finish within CelebrationDelay.
	PlayCelebration(slot int)

	// SetControlsEnabled enables the duration and difficulty controls.
	SetControlsEnabled(enabled bool)
}

// InputSource delivers slot activations from the player.
type InputSource interface {
	OnSlotActivated(fn func(slot int))
}

// AudioPlayer plays the background music. Failures after PlayLoop returns
// are reported back through Controller.AudioFailed.
type AudioPlayer interface {
	PlayLoop() error
	Stop()

	// Playing reports whether a playback loop is still active.
	Playing() bool
}
