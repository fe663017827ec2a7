package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mediacontroller "github.com/krishnapandey24/brandbox-backend/controllers/media"
	productcontroller "github.com/krishnapandey24/brandbox-backend/controllers/product"
	"github.com/krishnapandey24/brandbox-backend/middleware"
)

// SetupAdminRoutes registers the catalog-management endpoints. All of
// them require the API key header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.POST("/add_product", productcontroller.AddProduct(db))
		admin.POST("/products/:id/media", mediacontroller.AttachProductMedia(db))
		admin.POST("/variants/:id/media", mediacontroller.AttachVariantMedia(db))

		admin.POST("/category", productcontroller.CreateCategory(db))
		admin.POST("/colors", productcontroller.CreateColor(db))

		admin.GET("/admin/products/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}
