// Package engine implements the single-session conversation state machine
// that walks the dialogue graph, manages the transcript and turn-taking gate,
// simulates composing delays, and synthesizes personalized replies for values
// the graph does not cover.
package engine

import "github.com/ae-wizard/worldimmigration/internal/models"

// Events is the sink a rendering surface attaches to a session. Callbacks
// fire from the session's script goroutines, sometimes with internal session
// locks held: implementations must be safe to call from other goroutines and
// must not call back into the Session.
type Events interface {
	// MessageAppended fires once per transcript message, in transcript order.
	MessageAppended(msg models.Message)

	// TypingChanged reports the composing indicator. isSpeaking is reserved
	// for an avatar collaborator and is always reported false.
	TypingChanged(isComposing, isSpeaking bool)

	// InputFieldChanged reports free-text field visibility and placeholder.
	InputFieldChanged(visible bool, placeholder string)

	// HandoffRequested fires exactly once when the session hands control to
	// the lead-capture collaborator. No gate reopens afterwards.
	HandoffRequested()
}

// NopEvents discards all notifications. Used when no surface is attached.
type NopEvents struct{}

func (NopEvents) MessageAppended(models.Message) {}
func (NopEvents) TypingChanged(bool, bool)       {}
func (NopEvents) InputFieldChanged(bool, string) {}
func (NopEvents) HandoffRequested()              {}
