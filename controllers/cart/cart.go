package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/store"
)

type SaveCartInput struct {
	UserID string            `json:"userId" binding:"required"`
	Items  []models.CartItem `json:"items"`
}

// POST /api/cart — upsert: the user's single cart document is replaced
// wholesale with the submitted item list.
func SaveCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaveCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}

		if input.Items == nil {
			input.Items = []models.CartItem{}
		}

		cart, err := carts.UpsertCart(c.Request.Context(), userID, input.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
