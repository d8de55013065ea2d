package productControllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/store"
)

// DELETE /api/products/:id
func DeleteProduct(products store.ProductStore, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		product, err := products.DeleteProduct(c.Request.Context(), id, owner)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		// Best-effort file cleanup; a missing file is not an error.
		if product.Image != "" {
			os.Remove(filepath.Join(uploadDir, filepath.Base(product.Image)))
		}
		if product.QRCode != "" {
			os.Remove(filepath.Join(uploadDir, filepath.Base(product.QRCode)))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
