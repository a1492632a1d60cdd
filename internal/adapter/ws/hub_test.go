package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestNewHubHasNoConnections(t *testing.T) {
	h := NewHub()
	if h.ConnectionCount() != 0 {
		t.Fatalf("expected 0 connections, got %d", h.ConnectionCount())
	}
}

func TestBroadcastEventWithoutClients(t *testing.T) {
	h := NewHub()
	// Must not panic or block with an empty client set.
	h.BroadcastEvent(context.Background(), "task.executed", map[string]any{"id": "t1"})
}

func TestBroadcastEventUnmarshalablePayload(t *testing.T) {
	h := NewHub()
	// Channels cannot be marshaled; the event is dropped with a log line.
	h.BroadcastEvent(context.Background(), "task.executed", make(chan int))
}

func dialHub(t *testing.T, h *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWS))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		cancel()
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
		cancel()
		srv.Close()
	}
}

func waitForConnections(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ConnectionCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections, got %d", want, h.ConnectionCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestConnectionOutlivesHandler(t *testing.T) {
	h := NewHub()
	_, cleanup := dialHub(t, h)
	defer cleanup()

	waitForConnections(t, h, 1)

	// HandleWS has long returned; the client must still be registered.
	time.Sleep(200 * time.Millisecond)
	if h.ConnectionCount() != 1 {
		t.Fatalf("client dropped after handler return, count %d", h.ConnectionCount())
	}
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	h := NewHub()
	conn, cleanup := dialHub(t, h)
	defer cleanup()

	waitForConnections(t, h, 1)

	h.BroadcastEvent(context.Background(), "task.executed", map[string]any{"id": "t1"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "task.executed" {
		t.Fatalf("expected task.executed event, got %q", msg.Type)
	}
	var payload map[string]any
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["id"] != "t1" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestClientRemovedOnClose(t *testing.T) {
	h := NewHub()
	conn, cleanup := dialHub(t, h)
	defer cleanup()

	waitForConnections(t, h, 1)

	_ = conn.Close(websocket.StatusNormalClosure, "")
	waitForConnections(t, h, 0)
}
