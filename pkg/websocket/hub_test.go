package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func readMessage(t *testing.T, ch <-chan []byte) Message {
	t.Helper()
	select {
	case data, ok := <-ch:
		if !ok {
			t.Fatal("client channel closed")
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func TestHubRoomsAndBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, "audit")
	go hub.Run(ctx)

	alice := NewClient(hub, nil, "admin1")
	bob := NewClient(hub, nil, "admin2")
	hub.register <- alice
	hub.register <- bob

	if got := readMessage(t, alice.send); got.Type != "welcome" || got.Operator != "admin1" {
		t.Fatalf("welcome = %+v", got)
	}
	readMessage(t, bob.send)

	if n := hub.RoomSize("audit"); n != 2 {
		t.Errorf("audit room size = %d, want 2", n)
	}

	hub.Broadcast(Message{Type: "action_applied", RoomID: "audit"})
	if got := readMessage(t, alice.send); got.Type != "action_applied" || got.Timestamp == 0 {
		t.Errorf("alice got %+v", got)
	}
	readMessage(t, bob.send)

	hub.SendToOperator("admin2", Message{Type: "direct"})
	if got := readMessage(t, bob.send); got.Type != "direct" {
		t.Errorf("bob got %+v", got)
	}
	select {
	case data := <-alice.send:
		t.Errorf("alice received another operator's message: %s", data)
	case <-time.After(50 * time.Millisecond):
	}

	hub.LeaveRoom(bob, "audit")
	if n := hub.RoomSize("audit"); n != 1 {
		t.Errorf("after leave, audit room size = %d", n)
	}

	hub.unregister <- alice
	if _, ok := <-alice.send; ok {
		t.Error("send channel still open after unregister")
	}
	if n := hub.ClientCount(); n != 1 {
		t.Errorf("client count = %d, want 1", n)
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := NewClient(hub, nil, "admin1")
	hub.register <- c
	readMessage(t, c.send)

	cancel()
	<-done
	if _, ok := <-c.send; ok {
		t.Error("client not closed on shutdown")
	}
	if hub.ClientCount() != 0 {
		t.Error("clients left after shutdown")
	}
}

func TestHandlerStreamsToOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, "audit")
	go hub.Run(ctx)
	handler := NewHandler(hub, []string{"*"})

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		if op := c.GetHeader("X-Operator-ID"); op != "" {
			c.Set(OperatorKey, op)
		}
		handler.HandleWebSocket(c)
	})
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	// Without an operator the upgrade is refused.
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected dial without operator to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("response = %v", resp)
	}

	header := http.Header{}
	header.Set("X-Operator-ID", "admin1")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var welcome Message
	if err := conn.ReadJSON(&welcome); err != nil {
		t.Fatal(err)
	}
	if welcome.Type != "welcome" {
		t.Fatalf("first message = %+v", welcome)
	}

	hub.Broadcast(Message{Type: "action_applied", RoomID: "audit", Data: map[string]interface{}{"entity": "drivers"}})
	var event Message
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatal(err)
	}
	if event.Type != "action_applied" || event.Data["entity"] != "drivers" {
		t.Errorf("event = %+v", event)
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"localhost:3000"})
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://evil.example", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := check(r); got != tt.want {
			t.Errorf("origin %q: got %v, want %v", tt.origin, got, tt.want)
		}
	}
}
