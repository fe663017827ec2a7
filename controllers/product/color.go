package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/models"
)

type CreateColorInput struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// POST /colors
func CreateColor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateColorInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		color := models.Color{Name: input.Name, Hex: input.Hex}
		if err := db.Create(&color).Error; err != nil {
			c.JSON(statusForWriteError(err), gin.H{"error": "Failed to create color"})
			return
		}
		c.JSON(http.StatusCreated, color)
	}
}

// GET /colors
func GetColors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var colors []models.Color
		if err := db.Find(&colors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colors"})
			return
		}
		c.JSON(http.StatusOK, colors)
	}
}
