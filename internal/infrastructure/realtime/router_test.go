package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsHarness runs a websocket endpoint that records every frame delivered to
// each peer, so fan-out can be asserted end to end.
type wsHarness struct {
	server *httptest.Server

	mu       sync.Mutex
	received map[string][]string // uid -> raw payloads
}

func newWSHarness(t *testing.T) *wsHarness {
	t.Helper()
	h := &wsHarness{received: make(map[string][]string)}
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("uid")
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		go func() {
			defer ws.Close()
			for {
				_, data, err := ws.ReadMessage()
				if err != nil {
					return
				}
				h.mu.Lock()
				h.received[uid] = append(h.received[uid], string(data))
				h.mu.Unlock()
			}
		}()
	}))
	t.Cleanup(h.server.Close)
	return h
}

// connect dials the harness and returns an attached-ready Connection for uid.
func (h *wsHarness) connect(t *testing.T, uid string) *Connection {
	t.Helper()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "?uid=" + uid
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return NewConnection(uid, ws)
}

func (h *wsHarness) deliveredTo(uid string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.received[uid]))
	copy(out, h.received[uid])
	return out
}

func TestRouterJoinRoomCapacity(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	first := h.connect(t, "u1")
	second := h.connect(t, "u2")
	third := h.connect(t, "u3")
	router.Attach(first)
	router.Attach(second)
	router.Attach(third)

	require.NoError(t, router.JoinRoom("u1-u2", first))
	require.NoError(t, router.JoinRoom("u1-u2", second))
	require.Equal(t, 2, router.RoomSize("u1-u2"))

	// Third join attempt is rejected and membership is unchanged.
	err := router.JoinRoom("u1-u2", third)
	require.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, 2, router.RoomSize("u1-u2"))

	// The rejected handle was not added to any room.
	assert.False(t, router.SendToUser("u1-u2", "u3", []byte("x")))
}

func TestRouterJoinRoomIdempotent(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	conn := h.connect(t, "u1")
	router.Attach(conn)

	require.NoError(t, router.JoinRoom("u1-u2", conn))
	require.NoError(t, router.JoinRoom("u1-u2", conn))
	assert.Equal(t, 1, router.RoomSize("u1-u2"))
}

func TestRouterDetachFreesRoomSlot(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	first := h.connect(t, "u1")
	second := h.connect(t, "u2")
	router.Attach(first)
	router.Attach(second)

	require.NoError(t, router.JoinRoom("u1-u2", first))
	require.NoError(t, router.JoinRoom("u1-u2", second))

	// Disconnect releases the slot for a replacement handle.
	router.Detach(second)
	require.Equal(t, 1, router.RoomSize("u1-u2"))

	replacement := h.connect(t, "u2")
	router.Attach(replacement)
	require.NoError(t, router.JoinRoom("u1-u2", replacement))
	assert.Equal(t, 2, router.RoomSize("u1-u2"))
}

func TestRouterSessionRoomsUncapped(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	for _, uid := range []string{"a", "b", "c", "d"} {
		conn := h.connect(t, uid)
		router.Attach(conn)
		router.JoinSession("notify-u9", conn)
	}
	assert.Equal(t, 4, router.RoomSize("notify-u9"))
}

func TestRouterAddressedDelivery(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	sender := h.connect(t, "u1")
	receiver := h.connect(t, "u2")
	router.Attach(sender)
	router.Attach(receiver)

	require.NoError(t, router.JoinRoom("u1-u2", sender))
	require.NoError(t, router.JoinRoom("u1-u2", receiver))

	payload, err := json.Marshal(map[string]string{"event": "privateMessage-u2", "message": "hello"})
	require.NoError(t, err)

	require.True(t, router.SendToUser("u1-u2", "u2", payload))
	require.False(t, router.SendToUser("u1-u2", "u9", payload))

	require.Eventually(t, func() bool {
		return len(h.deliveredTo("u2")) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.JSONEq(t, string(payload), h.deliveredTo("u2")[0])
	assert.Empty(t, h.deliveredTo("u1"))
}

func TestRouterBroadcastReachesWholeRoom(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	first := h.connect(t, "u1")
	second := h.connect(t, "u2")
	router.Attach(first)
	router.Attach(second)

	require.NoError(t, router.JoinRoom("u1-u2", first))
	require.NoError(t, router.JoinRoom("u1-u2", second))

	delivered := router.Broadcast("u1-u2", []byte(`{"event":"typing-u2"}`))
	assert.Equal(t, 2, delivered)

	// Nobody joined: dropped silently.
	assert.Equal(t, 0, router.Broadcast("missing-room", []byte("x")))
}

func TestRouterAttachReplacesPreviousSession(t *testing.T) {
	h := newWSHarness(t)
	router := NewRouter()

	old := h.connect(t, "u1")
	router.Attach(old)
	require.NoError(t, router.JoinRoom("u1-u2", old))

	replacement := h.connect(t, "u1")
	router.Attach(replacement)

	// The stale handle lost its room slot along with its session.
	assert.Equal(t, 0, router.RoomSize("u1-u2"))
	assert.True(t, router.NotifyUser("u1", []byte(`{"event":"ping"}`)))
}
