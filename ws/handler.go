package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve upgrades the request and keeps the connection subscribed until
// it drops. Every inbound frame is treated as a send_notification event
// and rebroadcast to all connected clients.
func Serve(hub Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := NewClient(conn)
		hub.Register(client)

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				hub.Unregister(client)
				break
			}

			var n Notification
			if err := json.Unmarshal(data, &n); err != nil {
				continue
			}
			hub.Publish(n)
		}
	}
}
