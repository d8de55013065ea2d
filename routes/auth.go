package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/Annamalai555/mernstack-project/controllers/auth"
	"github.com/Annamalai555/mernstack-project/notifier"
	"github.com/Annamalai555/mernstack-project/store"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, users store.UserStore, mailer notifier.Mailer) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authControllers.Register(users, mailer)) // POST /api/auth/register
		authGroup.POST("/login", authControllers.Login(users))               // POST /api/auth/login
	}
}
