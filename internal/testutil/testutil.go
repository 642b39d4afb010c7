// Package testutil provides common test utilities and helpers shared across
// test files.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

// RecordingEvents captures engine event notifications for assertions. It
// satisfies the engine's Events interface and is safe for concurrent use.
type RecordingEvents struct {
	mu           sync.Mutex
	messages     []models.Message
	typingStates []bool
	inputVisible bool
	placeholder  string
	handoffCount int
}

// NewRecordingEvents creates an empty recorder.
func NewRecordingEvents() *RecordingEvents {
	return &RecordingEvents{}
}

// MessageAppended records the message.
func (r *RecordingEvents) MessageAppended(msg models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// TypingChanged records the composing flag.
func (r *RecordingEvents) TypingChanged(isComposing, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typingStates = append(r.typingStates, isComposing)
}

// InputFieldChanged records the latest field state.
func (r *RecordingEvents) InputFieldChanged(visible bool, placeholder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputVisible = visible
	r.placeholder = placeholder
}

// HandoffRequested counts handoff signals.
func (r *RecordingEvents) HandoffRequested() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handoffCount++
}

// Messages returns a copy of the recorded messages.
func (r *RecordingEvents) Messages() []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// HandoffCount returns how many handoff signals fired.
func (r *RecordingEvents) HandoffCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handoffCount
}

// InputField returns the latest recorded input-field state.
func (r *RecordingEvents) InputField() (visible bool, placeholder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inputVisible, r.placeholder
}

// WaitUntil polls cond until it returns true or the timeout elapses. Scripted
// sequences run on their own goroutines even with an instant delayer, so
// tests synchronize on observable state rather than sleeping fixed amounts.
func WaitUntil(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

// MustWaitUntil is WaitUntil but fails the test on timeout.
func MustWaitUntil(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	if !WaitUntil(t, timeout, cond) {
		t.Fatalf("timed out waiting for %s", what)
	}
}
