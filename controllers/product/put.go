package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/qr"
	"github.com/Annamalai555/mernstack-project/store"
)

// PUT /api/products/:id
func UpdateProduct(products store.ProductStore, uploadDir string) gin.HandlerFunc {
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

		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
			return
		}

		upd := store.ProductUpdate{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Price:       price,
			Category:    c.PostForm("category"),
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUpload(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			upd.Image = imageURL
		}

		product, err := products.UpdateProduct(c.Request.Context(), id, owner, upd)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		// Always regenerate the QR code so its payload reflects the
		// current title and category.
		qrPath, err := qr.Generate(uploadDir, product.ID.Hex(), product.Title, product.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if err := products.SetProductQR(c.Request.Context(), product.ID, qrPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		product.QRCode = qrPath

		c.JSON(http.StatusOK, product)
	}
}
