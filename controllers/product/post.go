package productControllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/qr"
	"github.com/Annamalai555/mernstack-project/store"
)

// saveUpload stores an uploaded image under a timestamp filename and
// returns the URL-style relative path referenced from the document.
func saveUpload(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/uploads/" + filename, nil
}

// ownerID reads the authenticated caller's id set by the auth middleware.
func ownerID(c *gin.Context) (primitive.ObjectID, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idVal.(string))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// POST /api/products
func CreateProduct(products store.ProductStore, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		title := c.PostForm("title")
		description := c.PostForm("description")
		category := c.PostForm("category")
		priceStr := c.PostForm("price")
		if title == "" || priceStr == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title, price and category are required"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
			return
		}

		product := models.Product{
			Title:       title,
			Description: description,
			Price:       price,
			Category:    category,
			User:        owner,
		}

		// Image is optional.
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUpload(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			product.Image = imageURL
		}

		if err := products.InsertProduct(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		// Second persist: derive the QR image from the stored record and
		// patch the path back in.
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

		log.Printf("Product created: %s (%s)", product.Title, product.ID.Hex())
		c.JSON(http.StatusCreated, product)
	}
}
