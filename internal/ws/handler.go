package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ae-wizard/worldimmigration/internal/engine"
	"github.com/ae-wizard/worldimmigration/internal/models"
	"github.com/ae-wizard/worldimmigration/internal/store"
)

// Handler upgrades chat connections and binds each one to its own engine
// session. Each Handler owns its upgrader so origin policies of separate
// handlers cannot interfere.
type Handler struct {
	store          store.Store
	classifier     engine.Classifier
	allowedOrigins map[string]bool
	delayer        engine.Delayer
	startDelay     time.Duration
	upgrader       websocket.Upgrader
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDelayer overrides the composing-delay source, so tests can run scripted
// sequences without sleeping.
func WithDelayer(d engine.Delayer) HandlerOption {
	return func(h *Handler) { h.delayer = d }
}

// WithStartDelay overrides the pause before the greeting. Negative means none.
func WithStartDelay(d time.Duration) HandlerOption {
	return func(h *Handler) { h.startDelay = d }
}

// NewHandler creates a chat handler. classifier may be nil to use the default
// keyword classifier; st may be nil to disable conversation logging.
func NewHandler(st store.Store, classifier engine.Classifier, allowedOrigins []string, opts ...HandlerOption) *Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &Handler{store: st, classifier: classifier, allowedOrigins: origins}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

// ServeHTTP runs one conversation over one WebSocket connection. Closing the
// connection tears the session down; pending composing delays then resolve
// dead and emit nothing.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("ws.ServeHTTP: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sink := &connSink{conn: conn, store: h.store}
	session := engine.NewSession(engine.Config{
		Classifier: h.classifier,
		Events:     sink,
		Delayer:    h.delayer,
		StartDelay: h.startDelay,
	})
	defer session.Close()

	sink.sessionID = session.ID()
	if err := sink.write(Frame{Type: FrameConnected, SessionID: session.ID()}); err != nil {
		slog.Error("ws.ServeHTTP: failed to send connected frame", "error", err, "sessionID", session.ID())
		return
	}

	session.Start()
	slog.Info("ws.ServeHTTP: chat session started", "sessionID", session.ID())

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("ws.ServeHTTP: connection closed unexpectedly", "error", err, "sessionID", session.ID())
			}
			return
		}

		var incoming Incoming
		if err := json.Unmarshal(raw, &incoming); err != nil {
			slog.Debug("ws.ServeHTTP: invalid frame", "error", err, "sessionID", session.ID())
			_ = sink.write(Frame{Type: FrameError, Text: "Invalid message format. Send JSON with a 'value' field."})
			continue
		}
		if incoming.Value == "" {
			continue
		}
		// Submissions while the gate is closed are no-ops inside the engine.
		session.Submit(incoming.Value)
	}
}

// connSink forwards engine events to the WebSocket. Engine callbacks arrive
// from script goroutines, so writes are serialized with a mutex. It also
// pairs each user submission with the next assistant reply and logs the
// exchange.
type connSink struct {
	conn      *websocket.Conn
	store     store.Store
	sessionID string

	mu          sync.Mutex
	pendingUser string
}

func (c *connSink) write(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(f)
}

// MessageAppended implements engine.Events.
func (c *connSink) MessageAppended(msg models.Message) {
	if err := c.write(Frame{Type: FrameMessage, Message: &msg}); err != nil {
		slog.Debug("ws.connSink: failed to write message frame", "error", err, "sessionID", c.sessionID)
		return
	}
	c.logExchange(msg)
}

// TypingChanged implements engine.Events.
func (c *connSink) TypingChanged(isComposing, isSpeaking bool) {
	if err := c.write(Frame{Type: FrameTyping, Typing: &TypingPayload{IsComposing: isComposing, IsSpeaking: isSpeaking}}); err != nil {
		slog.Debug("ws.connSink: failed to write typing frame", "error", err, "sessionID", c.sessionID)
	}
}

// InputFieldChanged implements engine.Events.
func (c *connSink) InputFieldChanged(visible bool, placeholder string) {
	if err := c.write(Frame{Type: FrameInput, Input: &InputPayload{Visible: visible, Placeholder: placeholder}}); err != nil {
		slog.Debug("ws.connSink: failed to write input frame", "error", err, "sessionID", c.sessionID)
	}
}

// HandoffRequested implements engine.Events.
func (c *connSink) HandoffRequested() {
	slog.Info("ws.connSink: handoff requested", "sessionID", c.sessionID)
	if err := c.write(Frame{Type: FrameHandoff}); err != nil {
		slog.Debug("ws.connSink: failed to write handoff frame", "error", err, "sessionID", c.sessionID)
	}
}

// logExchange records user-question/assistant-answer pairs: a user message
// opens a pending exchange, the next non-empty assistant message closes it.
func (c *connSink) logExchange(msg models.Message) {
	if c.store == nil {
		return
	}
	c.mu.Lock()
	if msg.IsUser {
		c.pendingUser = msg.Text
		c.mu.Unlock()
		return
	}
	if c.pendingUser == "" || msg.Text == "" {
		c.mu.Unlock()
		return
	}
	question := c.pendingUser
	c.pendingUser = ""
	c.mu.Unlock()

	if err := c.store.LogConversation(models.ConversationLog{UserQuestion: question, AssistantAnswer: msg.Text}); err != nil {
		slog.Warn("ws.connSink: failed to log conversation", "error", err, "sessionID", c.sessionID)
	}
}
