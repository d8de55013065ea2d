package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Annamalai555/mernstack-project/controllers/order"
	subscriptionControllers "github.com/Annamalai555/mernstack-project/controllers/subscription"
	"github.com/Annamalai555/mernstack-project/store"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, orders store.OrderStore) {
	orderGroup := r.Group("/api/orders")
	{
		orderGroup.POST("", orderControllers.PlaceOrder(orders))       // POST /api/orders
		orderGroup.GET("/:userId", orderControllers.GetOrders(orders)) // GET /api/orders/:userId
	}
}

// SetupSubscriptionRoutes registers the push-subscription intake.
func SetupSubscriptionRoutes(r *gin.Engine, subs store.SubscriptionStore) {
	r.POST("/api/subscribe", subscriptionControllers.Subscribe(subs)) // POST /api/subscribe
}
