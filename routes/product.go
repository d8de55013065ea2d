package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/Annamalai555/mernstack-project/controllers/product"
	"github.com/Annamalai555/mernstack-project/middleware"
	"github.com/Annamalai555/mernstack-project/store"
)

// SetupProductRoutes registers the "/api/products/*" endpoints. The
// catalog search endpoint is public; everything else requires a session
// token.
func SetupProductRoutes(r *gin.Engine, products store.ProductStore, uploadDir string) {
	productGroup := r.Group("/api/products")

	// Public catalog browse: ?search=&sort=&page=&limit=
	productGroup.GET("/products", productControllers.SearchProducts(products))

	protected := productGroup.Group("")
	protected.Use(middleware.Protect)
	{
		protected.POST("", productControllers.CreateProduct(products, uploadDir))          // POST /api/products
		protected.GET("", productControllers.GetMyProducts(products))                      // GET /api/products
		protected.GET("/export", productControllers.ExportProductsToExcel(products))       // GET /api/products/export
		protected.PUT("/:id", productControllers.UpdateProduct(products, uploadDir))       // PUT /api/products/:id
		protected.DELETE("/:id", productControllers.DeleteProduct(products, uploadDir))    // DELETE /api/products/:id
	}
}
