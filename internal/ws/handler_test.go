package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ae-wizard/worldimmigration/internal/engine"
	"github.com/ae-wizard/worldimmigration/internal/store"
)

func dialTestHandler(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	return f
}

// readUntil reads frames until one of the given type arrives, failing on
// deadline.
func readUntil(t *testing.T, conn *websocket.Conn, frameType string) Frame {
	t.Helper()
	for {
		f := readFrame(t, conn)
		if f.Type == frameType {
			return f
		}
	}
}

func fastHandler(st store.Store) *Handler {
	return NewHandler(st, nil, nil, WithDelayer(engine.InstantDelayer{}), WithStartDelay(-1))
}

func TestHandler_ConnectedFrameFirst(t *testing.T) {
	conn := dialTestHandler(t, fastHandler(nil))

	f := readFrame(t, conn)
	if f.Type != FrameConnected {
		t.Fatalf("first frame should be connected, got %q", f.Type)
	}
	if f.SessionID == "" {
		t.Error("connected frame should carry a session id")
	}
}

func TestHandler_GreetingSequence(t *testing.T) {
	conn := dialTestHandler(t, fastHandler(nil))
	readUntil(t, conn, FrameConnected)

	var texts []string
	var sawMenu bool
	for !sawMenu {
		f := readUntil(t, conn, FrameMessage)
		if f.Message == nil {
			t.Fatal("message frame without payload")
		}
		if f.Message.HasOptions {
			sawMenu = true
			if len(f.Message.Options) != 14 {
				t.Errorf("expected the 14-country menu, got %d options", len(f.Message.Options))
			}
			continue
		}
		texts = append(texts, f.Message.Text)
	}
	if len(texts) != 2 {
		t.Errorf("expected two greeting messages before the menu, got %d", len(texts))
	}
}

func TestHandler_SubmissionEchoesAndAdvances(t *testing.T) {
	conn := dialTestHandler(t, fastHandler(nil))
	readUntil(t, conn, FrameConnected)

	// Drain the greeting up to the country menu.
	for {
		f := readUntil(t, conn, FrameMessage)
		if f.Message.HasOptions {
			break
		}
	}

	if err := conn.WriteJSON(Incoming{Value: "from_india"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	echo := readUntil(t, conn, FrameMessage)
	if !echo.Message.IsUser || echo.Message.Text != "India" {
		t.Fatalf("expected user echo India, got %+v", echo.Message)
	}

	// The scripted acknowledgement, then the visa hub.
	ack := readUntil(t, conn, FrameMessage)
	if ack.Message.IsUser || ack.Message.Text == "" {
		t.Fatalf("expected scripted acknowledgement, got %+v", ack.Message)
	}
	for {
		f := readUntil(t, conn, FrameMessage)
		if f.Message.HasOptions {
			if len(f.Message.Options) != 7 {
				t.Errorf("expected the visa hub menu, got %d options", len(f.Message.Options))
			}
			break
		}
	}
}

func TestHandler_InvalidFrameGetsError(t *testing.T) {
	conn := dialTestHandler(t, fastHandler(nil))
	readUntil(t, conn, FrameConnected)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	f := readUntil(t, conn, FrameError)
	if f.Text == "" {
		t.Error("error frame should explain the expected format")
	}
}

func TestHandler_LogsFreeTextExchanges(t *testing.T) {
	st := store.NewInMemoryStore()
	conn := dialTestHandler(t, fastHandler(st))
	readUntil(t, conn, FrameConnected)

	// Drain greeting, take the free-questions branch, then ask a question.
	for {
		f := readUntil(t, conn, FrameMessage)
		if f.Message.HasOptions {
			break
		}
	}
	if err := conn.WriteJSON(Incoming{Value: "free_questions"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	readUntil(t, conn, FrameInput)

	if err := conn.WriteJSON(Incoming{Value: "what documents do I need?"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Wait for the classified answer to come back before checking the log.
	sawAnswer := false
	for !sawAnswer {
		f := readUntil(t, conn, FrameMessage)
		if !f.Message.IsUser && strings.Contains(f.Message.Text, "Required documents") {
			sawAnswer = true
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		logs, err := st.GetConversationLogs()
		if err != nil {
			t.Fatalf("GetConversationLogs: %v", err)
		}
		for _, l := range logs {
			if l.UserQuestion == "what documents do I need?" {
				if l.AssistantAnswer == "" {
					t.Error("logged exchange should carry the answer")
				}
				return
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("exchange was never logged")
}

func TestHandler_OriginAllowlist(t *testing.T) {
	h := NewHandler(nil, nil, []string{"https://worldimmigration.example"},
		WithDelayer(engine.InstantDelayer{}), WithStartDelay(-1))
	srv := httptest.NewServer(h)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	headers := map[string][]string{"Origin": {"https://evil.example"}}
	if _, _, err := websocket.DefaultDialer.Dial(url, headers); err == nil {
		t.Fatal("disallowed origin should fail the upgrade")
	}

	headers = map[string][]string{"Origin": {"https://worldimmigration.example"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, headers)
	if err != nil {
		t.Fatalf("allowed origin should upgrade: %v", err)
	}
	conn.Close()
}

func TestHandler_OriginPoliciesAreIndependent(t *testing.T) {
	restricted := NewHandler(nil, nil, []string{"https://worldimmigration.example"},
		WithDelayer(engine.InstantDelayer{}), WithStartDelay(-1))
	open := fastHandler(nil)

	restrictedSrv := httptest.NewServer(restricted)
	defer restrictedSrv.Close()
	openSrv := httptest.NewServer(open)
	defer openSrv.Close()

	evil := map[string][]string{"Origin": {"https://evil.example"}}

	// The permissive handler accepts an origin the restricted one rejects,
	// and using it must not loosen the restricted handler's policy.
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(openSrv.URL, "http")+"/ws", evil)
	if err != nil {
		t.Fatalf("permissive handler should upgrade any origin: %v", err)
	}
	conn.Close()

	if _, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(restrictedSrv.URL, "http")+"/ws", evil); err == nil {
		t.Fatal("restricted handler must keep its own origin policy")
	}
}
