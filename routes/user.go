package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	usercontroller "github.com/krishnapandey24/brandbox-backend/controllers/user"
	"github.com/krishnapandey24/brandbox-backend/middleware"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", usercontroller.GetUser(db))
		userGroup.PUT("", usercontroller.UpdateUser(db))
		userGroup.POST("/addresses", usercontroller.CreateAddress(db))
		userGroup.GET("/addresses", usercontroller.GetAddresses(db))
	}
}
