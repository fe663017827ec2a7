package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/krishnapandey24/brandbox-backend/controllers/product"
	reviewcontroller "github.com/krishnapandey24/brandbox-backend/controllers/review"
	"github.com/krishnapandey24/brandbox-backend/middleware"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/all_products", productcontroller.GetAllProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/colors", productcontroller.GetColors(db))

	r.GET("/products/:id/reviews", reviewcontroller.GetProductReviews(db))
	r.POST("/products/:id/reviews", middleware.ValidateToken, reviewcontroller.CreateReview(db))
}
