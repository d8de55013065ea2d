package ws_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annamalai555/mernstack-project/ws"
)

func startRelay(t *testing.T) (*ws.Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	r := gin.New()
	r.GET("/ws", ws.Serve(hub))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForClients polls until the hub sees the expected connection count.
func waitForClients(t *testing.T, hub *ws.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d connected clients, have %d", want, hub.ClientCount())
}

func readNotification(t *testing.T, conn *websocket.Conn) ws.Notification {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var n ws.Notification
	require.NoError(t, conn.ReadJSON(&n))
	return n
}

func TestBroadcastReachesAllConnectedClients(t *testing.T) {
	hub, url := startRelay(t)

	sender := dial(t, url)
	receiver := dial(t, url)
	waitForClients(t, hub, 2)

	sent := ws.Notification{Title: "Sale", Message: "Everything 20% off"}
	require.NoError(t, sender.WriteJSON(sent))

	// The sender receives its own broadcast too.
	assert.Equal(t, sent, readNotification(t, sender))
	assert.Equal(t, sent, readNotification(t, receiver))
}

func TestLateJoinerMissesEarlierBroadcast(t *testing.T) {
	hub, url := startRelay(t)

	sender := dial(t, url)
	waitForClients(t, hub, 1)

	require.NoError(t, sender.WriteJSON(ws.Notification{Title: "Early", Message: "gone"}))
	readNotification(t, sender) // drain the sender's own copy

	late := dial(t, url)
	waitForClients(t, hub, 2)

	require.NoError(t, late.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var n ws.Notification
	err := late.ReadJSON(&n)
	assert.Error(t, err, "client connecting after the broadcast must not receive it")
}

func TestDisconnectedClientIsDropped(t *testing.T) {
	hub, url := startRelay(t)

	stayer := dial(t, url)
	leaver := dial(t, url)
	waitForClients(t, hub, 2)

	leaver.Close()
	waitForClients(t, hub, 1)

	sent := ws.Notification{Title: "Still on", Message: "hi"}
	require.NoError(t, stayer.WriteJSON(sent))
	assert.Equal(t, sent, readNotification(t, stayer))
}

func TestMalformedFrameIsIgnored(t *testing.T) {
	hub, url := startRelay(t)

	sender := dial(t, url)
	waitForClients(t, hub, 1)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not json")))

	sent := ws.Notification{Title: "After", Message: "still works"}
	require.NoError(t, sender.WriteJSON(sent))
	assert.Equal(t, sent, readNotification(t, sender))
}
