package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annamalai555/mernstack-project/store"
)

// GET /api/products — all products owned by the caller.
func GetMyProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		list, err := products.FindProductsByOwner(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
