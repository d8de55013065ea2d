package productControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Annamalai555/mernstack-project/store"
)

// GET /api/products/products — public catalog browse with search, sort
// and pagination. A leading "-" on sort selects descending order.
func SearchProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
		if err != nil || limit < 1 {
			limit = 5
		}

		q := store.SearchQuery{
			Search: c.Query("search"),
			Sort:   c.DefaultQuery("sort", "title"),
			Page:   page,
			Limit:  limit,
		}

		list, total, err := products.SearchProducts(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   list,
			"totalPages": int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}
