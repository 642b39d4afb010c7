// Package models defines the core data structures for the consultation chat service.
//
// It includes types for transcript messages, dialogue steps, visitor profiles,
// and captured leads, which are shared across modules.
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// InputType defines how a step collects the visitor's next input.
type InputType string

const (
	// InputTypeSelect presents a dropdown or button menu.
	InputTypeSelect InputType = "select"
	// InputTypeText presents a free-text field.
	InputTypeText InputType = "text"
	// InputTypeNone collects no input; the step either chains forward or ends.
	InputTypeNone InputType = "none"
)

// Validation constants for dialogue and lead content.
const (
	// MaxMessageTextLength defines the maximum allowed length for a message body.
	MaxMessageTextLength = 4096
	// MaxOptionLabelLength defines the maximum allowed length for option display text.
	MaxOptionLabelLength = 100
	// MaxOptionsCount defines the maximum number of options on a single message.
	MaxOptionsCount = 20
)

// Error variables for better error handling and testability.
var (
	ErrOptionsRequired       = errors.New("options message requires a non-empty option list")
	ErrOptionLabelEmpty      = errors.New("option display text cannot be empty")
	ErrOptionLabelTooLong    = errors.New("option display text exceeds maximum length")
	ErrOptionValueEmpty      = errors.New("option value cannot be empty")
	ErrTooManyOptions        = errors.New("too many options")
	ErrAmbiguousContinuation = errors.New("step declares more than one continuation mechanism")
	ErrMissingName           = errors.New("name is required")
	ErrMissingEmail          = errors.New("email is required")
	ErrMissingCurrentCountry = errors.New("current_country is required")
	ErrMissingGoal           = errors.New("goal is required")
)

// Option is a single selectable choice on an options message. Value names
// either a dialogue step or a response key recognized by the engine.
type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Message is one entry in a session transcript. Messages are immutable once
// created; the transcript is append-only.
type Message struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	IsUser      bool      `json:"is_user"`
	HasOptions  bool      `json:"has_options"`
	Options     []Option  `json:"options,omitempty"`
	InputType   InputType `json:"input_type,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewMessage creates a transcript message with a fresh id and timestamp.
func NewMessage(text string, isUser bool) Message {
	return Message{
		ID:        uuid.New().String(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: time.Now(),
	}
}

// NewOptionsMessage creates an assistant message carrying a selectable menu.
func NewOptionsMessage(options []Option, inputType InputType, placeholder string) Message {
	m := NewMessage("", false)
	m.HasOptions = true
	m.Options = options
	m.InputType = inputType
	m.Placeholder = placeholder
	return m
}

// Validate checks message invariants. A message flagged as carrying options
// must actually carry at least one.
func (m *Message) Validate() error {
	if m.HasOptions && len(m.Options) == 0 {
		return ErrOptionsRequired
	}
	if len(m.Options) > MaxOptionsCount {
		return ErrTooManyOptions
	}
	for _, opt := range m.Options {
		if opt.Text == "" {
			return ErrOptionLabelEmpty
		}
		if len(opt.Text) > MaxOptionLabelLength {
			return ErrOptionLabelTooLong
		}
		if opt.Value == "" {
			return ErrOptionValueEmpty
		}
	}
	return nil
}

// StepDefinition describes one node of the dialogue graph: what the
// assistant says and how the conversation continues from there.
type StepDefinition struct {
	Message     string
	NextMessage string
	InputType   InputType
	Placeholder string
	Options     []Option
	FollowUp    string
}

// Validate checks that a step declares at most one continuation mechanism.
// A step with options gates on a selection; a text step gates on free text;
// a follow-up step chains silently. Steps with none of these are terminal and
// rely on the engine's personalized-response fallback.
//
// from_other is the one intentional hybrid in the original script: it opens a
// text gate and then chains into its follow-up, so text+follow-up is allowed.
func (s *StepDefinition) Validate() error {
	mechanisms := 0
	if len(s.Options) > 0 {
		mechanisms++
	}
	if s.InputType == InputTypeText {
		mechanisms++
	}
	if s.FollowUp != "" && s.InputType != InputTypeText {
		mechanisms++
	}
	if mechanisms > 1 {
		return ErrAmbiguousContinuation
	}
	for _, opt := range s.Options {
		if opt.Text == "" {
			return ErrOptionLabelEmpty
		}
		if opt.Value == "" {
			return ErrOptionValueEmpty
		}
	}
	return nil
}

// APIStatus represents the status of an API response.
type APIStatus string

const (
	// APIStatusOK indicates an API request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates an API request failed with an error.
	APIStatusError APIStatus = "error"
)

// APIResponse is the uniform JSON envelope returned by HTTP handlers.
type APIResponse struct {
	Status  APIStatus   `json:"status"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// Success creates a successful API response with optional result data.
func Success(result interface{}) APIResponse {
	return APIResponse{Status: APIStatusOK, Result: result}
}

// Error creates an error API response with a message.
func Error(message string) APIResponse {
	return APIResponse{Status: APIStatusError, Message: message}
}
