package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ae-wizard/worldimmigration/internal/dialogue"
	"github.com/ae-wizard/worldimmigration/internal/models"
)

// State identifies where a session is in its lifecycle.
type State string

const (
	// StateIdle means Start has not run yet.
	StateIdle State = "idle"
	// StateGreeting means the welcome sequence is playing; no input accepted.
	StateGreeting State = "greeting"
	// StateAwaitingChoice means the gate is open for a menu selection.
	StateAwaitingChoice State = "awaiting_choice"
	// StateAwaitingText means the gate is open for free text.
	StateAwaitingText State = "awaiting_text"
	// StateAdvancing means a submission is being processed; gate closed.
	StateAdvancing State = "advancing"
	// StateHandoff means control passed to the lead-capture collaborator.
	StateHandoff State = "handoff"
)

// Simulated composing delays, in the same pacing as the original script.
const (
	// DefaultStartDelay is the pause between session start and the greeting.
	DefaultStartDelay = 1500 * time.Millisecond

	greetingPause    = 2000 * time.Millisecond // between the two welcome messages
	replyPause       = 800 * time.Millisecond  // between a user echo and the reply
	followUpPause    = 1500 * time.Millisecond // between sequential assistant messages
	optionsPause     = 500 * time.Millisecond  // before an options menu appears
	autoAdvancePause = 1000 * time.Millisecond // before a silently-chained step speaks
	textReplyPause   = 1000 * time.Millisecond // before the reply to free text
	processStepPause = 1200 * time.Millisecond // between enumerated process steps
	handoffPause     = 1000 * time.Millisecond // before the handoff signal fires
)

// Lookup resolves a step id to its definition. Not-found is a legal outcome
// that routes into personalized-response synthesis.
type Lookup func(stepID string) (models.StepDefinition, bool)

// Config carries session collaborators. Zero values get working defaults.
type Config struct {
	Lookup     Lookup
	Classifier Classifier
	Delayer    Delayer
	Events     Events
	// StartDelay overrides the pause before the greeting. Negative means zero.
	StartDelay time.Duration
}

// Session is one visitor's conversation. All mutation happens under mu, from
// either a user submission or a delayed script action; script actions check
// session liveness after every delay so nothing mutates after Close.
type Session struct {
	id         string
	lookup     Lookup
	classifier Classifier
	delayer    Delayer
	events     Events
	startDelay time.Duration

	started atomic.Bool
	done    chan struct{}
	closer  sync.Once

	mu           sync.Mutex
	state        State
	currentStep  string
	waiting      bool
	typing       bool
	showInput    bool
	placeholder  string
	transcript   []models.Message
	profile      models.Profile
	handoffFired bool
	closed       bool
}

// NewSession creates an idle session. Call Start to begin the greeting.
func NewSession(cfg Config) *Session {
	if cfg.Lookup == nil {
		cfg.Lookup = dialogue.Lookup
	}
	if cfg.Classifier == nil {
		cfg.Classifier = NewKeywordClassifier()
	}
	if cfg.Delayer == nil {
		cfg.Delayer = RealDelayer{}
	}
	if cfg.Events == nil {
		cfg.Events = NopEvents{}
	}
	startDelay := cfg.StartDelay
	if startDelay == 0 {
		startDelay = DefaultStartDelay
	} else if startDelay < 0 {
		startDelay = 0
	}
	s := &Session{
		id:          uuid.New().String(),
		lookup:      cfg.Lookup,
		classifier:  cfg.Classifier,
		delayer:     cfg.Delayer,
		events:      cfg.Events,
		startDelay:  startDelay,
		done:        make(chan struct{}),
		state:       StateIdle,
		currentStep: dialogue.StepWelcome,
	}
	slog.Debug("engine.NewSession: session created", "sessionID", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Start begins the greeting sequence. It is idempotent: the host environment
// may fire initialization more than once, and only the first call wins.
func (s *Session) Start() {
	if !s.started.CompareAndSwap(false, true) {
		slog.Debug("engine.Start: already started, ignoring", "sessionID", s.id)
		return
	}
	s.setState(StateGreeting)
	slog.Info("engine.Start: starting greeting sequence", "sessionID", s.id)
	go s.runGreeting()
}

// Close tears the session down. Pending delays resolve as dead and no further
// transcript mutation or event delivery occurs.
func (s *Session) Close() {
	s.closer.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
		slog.Debug("engine.Close: session closed", "sessionID", s.id)
	})
}

// Submit delivers a user action: a button click, a dropdown selection, or a
// free-text send. Submissions while the gate is closed are silent no-ops, so
// double-fires and duplicate events cannot advance the conversation twice.
func (s *Session) Submit(value string) {
	s.mu.Lock()
	if !s.waiting || s.closed {
		s.mu.Unlock()
		slog.Debug("engine.Submit: gate closed, ignoring", "sessionID", s.id, "value", value)
		return
	}
	// Close the gate synchronously, before any asynchronous work.
	s.waiting = false
	textMode := s.state == StateAwaitingText
	s.state = StateAdvancing
	step := s.currentStep

	if textMode {
		s.hideInputLocked()
		s.appendLocked(models.NewMessage(value, true))
		s.profile.RecordText(step, value)
		s.mu.Unlock()
		slog.Debug("engine.Submit: free text received", "sessionID", s.id, "step", step)
		go s.advanceText(step, value)
		return
	}

	echo := s.echoTextLocked(value)
	s.appendLocked(models.NewMessage(echo, true))
	s.profile.Record(step, value)
	// The chosen value is the step the next submission answers, whether or
	// not the graph knows it.
	s.currentStep = value
	s.mu.Unlock()
	slog.Debug("engine.Submit: choice received", "sessionID", s.id, "step", step, "value", value)
	go s.advanceChoice(value)
}

// Transcript returns a copy of the append-only message sequence.
func (s *Session) Transcript() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// WaitingForInput reports whether the gate is open.
func (s *Session) WaitingForInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiting
}

// IsTyping reports whether the composing indicator is showing.
func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// InputField reports free-text field visibility and its placeholder.
func (s *Session) InputField() (visible bool, placeholder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showInput, s.placeholder
}

// Profile returns a copy of the accumulated visitor profile.
func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// runGreeting plays the welcome sequence and opens the first gate.
func (s *Session) runGreeting() {
	if !s.wait(s.startDelay) {
		return
	}
	welcome, ok := s.lookup(dialogue.StepWelcome)
	if !ok {
		slog.Error("engine.runGreeting: welcome step missing from graph", "sessionID", s.id)
		return
	}
	s.say(welcome.Message)
	if !s.compose(greetingPause) {
		return
	}
	s.say(welcome.NextMessage)
	if !s.compose(followUpPause) {
		return
	}
	s.sayOptions(welcome.Options, welcome.InputType, welcome.Placeholder)
	s.openChoiceGate()
	slog.Debug("engine.runGreeting: greeting complete, gate open", "sessionID", s.id)
}

// advanceChoice resolves a submitted menu value: a graph step plays its
// scripted messages, anything else goes to the personalized responder.
func (s *Session) advanceChoice(value string) {
	if !s.compose(replyPause) {
		return
	}
	if step, ok := s.lookup(value); ok {
		s.playStep(value, step)
		return
	}
	s.respond(value)
}

// playStep emits a graph step's messages and resolves its continuation:
// a new menu gate, a text gate, a silent chain into the follow-up step, or
// nothing (terminal step, handled later by the responder fallback).
func (s *Session) playStep(stepID string, step models.StepDefinition) {
	s.say(step.Message)
	if step.NextMessage != "" {
		if !s.compose(followUpPause) {
			return
		}
		s.say(step.NextMessage)
	}

	switch {
	case len(step.Options) > 0:
		if !s.compose(optionsPause) {
			return
		}
		s.setCurrentStep(stepID)
		s.sayOptions(step.Options, step.InputType, step.Placeholder)
		s.openChoiceGate()

	case step.InputType == models.InputTypeText:
		s.setCurrentStep(stepID)
		s.openTextGate(step.Placeholder)

	case step.FollowUp != "":
		// Auto-advance: not an additional turn, no gate until the follow-up
		// step resolves.
		if !s.compose(autoAdvancePause) {
			return
		}
		next, ok := s.lookup(step.FollowUp)
		if !ok {
			slog.Error("engine.playStep: follow-up step missing", "sessionID", s.id, "step", stepID, "followUp", step.FollowUp)
			return
		}
		s.playStep(step.FollowUp, next)

	default:
		s.setCurrentStep(stepID)
	}
}

// advanceText handles a free-text submission: country entry chains into the
// visa hub, anything else is classified into an advisory reply.
func (s *Session) advanceText(stepID, text string) {
	if !s.compose(textReplyPause) {
		return
	}

	if stepID == dialogue.StepFromOther {
		s.say("Thank you! As someone from " + text + ", let me provide specific guidance for your situation.")
		if !s.compose(followUpPause) {
			return
		}
		hub, ok := s.lookup(dialogue.StepVisaTypes)
		if !ok {
			slog.Error("engine.advanceText: visa hub missing from graph", "sessionID", s.id)
			return
		}
		s.setCurrentStep(dialogue.StepVisaTypes)
		s.say(hub.Message)
		if !s.compose(optionsPause) {
			return
		}
		s.sayOptions(hub.Options, hub.InputType, hub.Placeholder)
		s.openChoiceGate()
		return
	}

	answer, err := s.classifier.Classify(context.Background(), text, s.Profile())
	if err != nil {
		slog.Warn("engine.advanceText: classifier failed, using generic answer", "sessionID", s.id, "error", err)
		answer = answerGeneric
	}
	s.say(answer)
	if !s.compose(textReplyPause) {
		return
	}
	s.sayMenu("Do you have any other questions?", []models.Option{
		{Text: "Yes, I have more questions", Value: "free_questions", Icon: "❓"},
		{Text: "Get my detailed assessment", Value: "get_assessment", Icon: "📋"},
	})
	s.openChoiceGate()
}

// wait blocks for the given simulated delay. It returns false when the
// session was closed during the delay, in which case the caller must stop
// without mutating anything.
func (s *Session) wait(d time.Duration) bool {
	select {
	case <-s.delayer.After(d):
	case <-s.done:
		return false
	}
	s.mu.Lock()
	alive := !s.closed
	s.mu.Unlock()
	return alive
}

// compose shows the typing indicator for the given duration, then hides it.
func (s *Session) compose(d time.Duration) bool {
	s.setTyping(true)
	alive := s.wait(d)
	if alive {
		s.setTyping(false)
	}
	return alive
}

// say appends an assistant message to the transcript.
func (s *Session) say(text string) {
	s.append(models.NewMessage(text, false))
}

// sayOptions appends an empty assistant message carrying a selectable menu.
func (s *Session) sayOptions(options []models.Option, inputType models.InputType, placeholder string) {
	s.append(models.NewOptionsMessage(options, inputType, placeholder))
}

// sayMenu appends a text message that itself carries a button menu.
func (s *Session) sayMenu(text string, options []models.Option) {
	m := models.NewOptionsMessage(options, "", "")
	m.Text = text
	s.append(m)
}

func (s *Session) append(msg models.Message) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.appendLocked(msg)
	s.mu.Unlock()
}

func (s *Session) appendLocked(msg models.Message) {
	s.transcript = append(s.transcript, msg)
	s.events.MessageAppended(msg)
}

func (s *Session) setTyping(typing bool) {
	s.mu.Lock()
	if s.closed || s.typing == typing {
		s.mu.Unlock()
		return
	}
	s.typing = typing
	s.mu.Unlock()
	// isSpeaking is reserved for an avatar capability this engine does not
	// implement; always reported false.
	s.events.TypingChanged(typing, false)
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) setCurrentStep(stepID string) {
	s.mu.Lock()
	s.currentStep = stepID
	s.mu.Unlock()
}

func (s *Session) openChoiceGate() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.waiting = true
	s.state = StateAwaitingChoice
	s.mu.Unlock()
}

func (s *Session) openTextGate(placeholder string) {
	if placeholder == "" {
		placeholder = "Type your response..."
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.waiting = true
	s.state = StateAwaitingText
	s.showInput = true
	s.placeholder = placeholder
	s.mu.Unlock()
	s.events.InputFieldChanged(true, placeholder)
}

func (s *Session) hideInputLocked() {
	if !s.showInput {
		return
	}
	s.showInput = false
	s.placeholder = ""
	s.events.InputFieldChanged(false, "")
}

// echoTextLocked resolves a submitted option value to its display text by
// searching the immediately preceding options message. Unknown values echo
// verbatim; that fallback should not occur in normal operation.
func (s *Session) echoTextLocked(value string) string {
	if len(s.transcript) == 0 {
		return value
	}
	last := s.transcript[len(s.transcript)-1]
	for _, opt := range last.Options {
		if opt.Value == value {
			return opt.Text
		}
	}
	return value
}

// requestHandoff signals the lead-capture collaborator exactly once and
// closes the gate for good.
func (s *Session) requestHandoff() {
	s.mu.Lock()
	if s.closed || s.handoffFired {
		s.mu.Unlock()
		return
	}
	s.handoffFired = true
	s.state = StateHandoff
	s.mu.Unlock()
	slog.Info("engine.requestHandoff: handing off to lead capture", "sessionID", s.id)
	s.events.HandoffRequested()
}
