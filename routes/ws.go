package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Annamalai555/mernstack-project/ws"
)

// SetupWSRoutes registers the notification relay endpoint.
func SetupWSRoutes(r *gin.Engine, hub ws.Broadcaster) {
	r.GET("/ws", ws.Serve(hub)) // GET /ws
}
