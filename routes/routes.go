package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Annamalai555/mernstack-project/notifier"
	"github.com/Annamalai555/mernstack-project/store"
	"github.com/Annamalai555/mernstack-project/ws"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, st store.Store, mailer notifier.Mailer, hub ws.Broadcaster, uploadDir string) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, st, mailer)

	// Product routes (public search + JWT-protected CRUD)
	SetupProductRoutes(r, st, uploadDir)

	// Cart / order routes
	SetupCartRoutes(r, st)
	SetupOrderRoutes(r, st)

	// Push-subscription intake
	SetupSubscriptionRoutes(r, st)

	// Real-time notification relay
	SetupWSRoutes(r, hub)
}
