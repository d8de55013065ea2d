package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Annamalai555/mernstack-project/controllers/cart"
	"github.com/Annamalai555/mernstack-project/store"
)

// SetupCartRoutes registers the "/api/cart" endpoint.
func SetupCartRoutes(r *gin.Engine, carts store.CartStore) {
	r.POST("/api/cart", cartControllers.SaveCart(carts)) // POST /api/cart
}
