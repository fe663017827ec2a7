package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/auth"
	"github.com/krishnapandey24/brandbox-backend/middleware"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", auth.Register(db))
	r.POST("/login", auth.Login(db))
	r.GET("/verify", middleware.ValidateToken, auth.Verify())
}
