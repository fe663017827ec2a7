package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/krishnapandey24/brandbox-backend/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/cart/:user_id", cartcontroller.GetCart(db))
	r.POST("/cart/add", cartcontroller.AddToCart(db))
	r.DELETE("/cart/:user_id", cartcontroller.ClearCart(db))
	r.DELETE("/cart/:user_id/items/:item_id", cartcontroller.DeleteCartItem(db))

	r.POST("/add_to_wishlist", cartcontroller.AddToWishlist(db))
	r.GET("/wishlist/:user_id", cartcontroller.GetWishlist(db))
}
