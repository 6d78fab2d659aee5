package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) sessionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHubRegisterAndSend(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}

	hub.register <- client
	waitFor(t, func() bool { return hub.sessionCount(userID) == 1 })

	hub.Send(userID, Notification{Kind: "feedback", Message: "New feedback"})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "New feedback")
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
	}
}

func TestHubDropsSlowSessionWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	// Nothing drains Send; the second notification overflows the buffer.
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}

	hub.register <- slow
	waitFor(t, func() bool { return hub.sessionCount(userID) == 1 })

	hub.Send(userID, Notification{Kind: "feedback", Message: "fills the buffer"})
	hub.Send(userID, Notification{Kind: "feedback", Message: "overflows"})

	// The slow session must be unregistered exactly once, its channel closed
	// by the unregister handler, and the hub must keep serving.
	waitFor(t, func() bool { return hub.sessionCount(userID) == 0 })

	// Disconnect-path unregister arriving after the drop is a no-op.
	hub.unregister <- slow
	waitFor(t, func() bool { return hub.sessionCount(userID) == 0 })

	// Channel was closed by the hub; a drained, closed channel yields !ok.
	for {
		if _, ok := <-slow.Send; !ok {
			break
		}
	}

	// Hub still works for healthy sessions.
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- healthy
	waitFor(t, func() bool { return hub.sessionCount(userID) == 1 })

	hub.Send(userID, Notification{Kind: "issue", Message: "still alive"})
	select {
	case msg := <-healthy.Send:
		assert.Contains(t, string(msg), "still alive")
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped delivering after dropping a slow session")
	}
}

func TestHubBroadcastDropsSlowSessions(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	fast := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 4)}
	slow := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}

	hub.register <- fast
	hub.register <- slow
	waitFor(t, func() bool {
		return hub.sessionCount(fast.UserID) == 1 && hub.sessionCount(slow.UserID) == 1
	})

	hub.Broadcast(Notification{Kind: "system", Message: "one"})
	// Second broadcast overflows the slow session while fast still has room;
	// unregistering must not deadlock against Run.
	hub.Broadcast(Notification{Kind: "system", Message: "two"})

	waitFor(t, func() bool { return hub.sessionCount(slow.UserID) == 0 })
	require.Equal(t, 1, hub.sessionCount(fast.UserID))
}
