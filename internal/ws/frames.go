// Package ws exposes the conversation engine to a browser over a WebSocket:
// one engine session per connection, transcript and state changes streamed
// out as JSON frames, submissions read back in.
package ws

import "github.com/ae-wizard/worldimmigration/internal/models"

// Frame type discriminators sent to the client.
const (
	FrameConnected = "connected"
	FrameMessage   = "message"
	FrameTyping    = "typing"
	FrameInput     = "input"
	FrameHandoff   = "handoff"
	FrameError     = "error"
)

// Frame is the server-to-client envelope. Exactly one payload field is set,
// selected by Type.
type Frame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Message   *models.Message `json:"message,omitempty"`
	Typing    *TypingPayload  `json:"typing,omitempty"`
	Input     *InputPayload   `json:"input,omitempty"`
	Text      string          `json:"text,omitempty"`
}

// TypingPayload mirrors the avatar-facing state notification: isSpeaking is
// reserved and always false.
type TypingPayload struct {
	IsComposing bool `json:"is_composing"`
	IsSpeaking  bool `json:"is_speaking"`
}

// InputPayload reports free-text field visibility.
type InputPayload struct {
	Visible     bool   `json:"visible"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Incoming is the client-to-server frame: the uniform submit value for
// button clicks, dropdown selections, and text sends.
type Incoming struct {
	Value string `json:"value"`
}
