package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/store"
)

type PlaceOrderInput struct {
	UserID      string            `json:"userId" binding:"required"`
	Items       []models.CartItem `json:"items" binding:"required"`
	Address     string            `json:"address" binding:"required"`
	PaymentType string            `json:"paymentType" binding:"required"`
	Total       float64           `json:"total"`
}

// POST /api/orders — creates an immutable order record. The total is
// stored as supplied by the client.
func PlaceOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId, items, address and paymentType are required"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}

		order := models.Order{
			UserID:      userID,
			Items:       input.Items,
			Address:     input.Address,
			PaymentType: input.PaymentType,
			Total:       input.Total,
		}
		if err := orders.InsertOrder(c.Request.Context(), &order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:userId — all orders for the user, in storage order.
func GetOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}

		list, err := orders.FindOrdersByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
			return
		}
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}
