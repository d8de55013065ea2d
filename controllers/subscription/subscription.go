package subscriptionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/store"
)

type SubscribeInput struct {
	Endpoint string                  `json:"endpoint" binding:"required"`
	Keys     models.SubscriptionKeys `json:"keys"`
}

// POST /api/subscribe — stores a browser push endpoint. The broadcast
// relay does not consume these records.
func Subscribe(subs store.SubscriptionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
			return
		}

		sub := models.Subscription{
			Endpoint: input.Endpoint,
			Keys:     input.Keys,
		}
		if err := subs.InsertSubscription(c.Request.Context(), &sub); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save subscription"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
	}
}
