package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/models"
)

type WishlistInput struct {
	UserID    uint  `json:"user_id"`
	ProductID uint  `json:"product_id"`
	VariantID *uint `json:"variant_id"`
}

// AddToWishlist saves a product (or variant) reference for the user. The
// container is created lazily and a duplicate add is a no-op that still
// reports success.
// POST /add_to_wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if input.UserID == 0 || input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var saved models.Saved
			err := tx.Where("user_id = ?", input.UserID).First(&saved).Error
			if err == gorm.ErrRecordNotFound {
				saved = models.Saved{UserID: input.UserID}
				if err := tx.Create(&saved).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			var item models.SavedItem
			query := tx.Where("saved_id = ? AND product_id = ?", saved.SavedID, input.ProductID)
			if input.VariantID != nil {
				query = query.Where("variant_id = ?", *input.VariantID)
			} else {
				query = query.Where("variant_id IS NULL")
			}

			err = query.First(&item).Error
			if err == gorm.ErrRecordNotFound {
				item = models.SavedItem{
					SavedID:   saved.SavedID,
					ProductID: input.ProductID,
					VariantID: input.VariantID,
				}
				return tx.Create(&item).Error
			}
			return err // nil when the pair already exists
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add item to wishlist"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item added to wishlist successfully"})
	}
}

// GET /wishlist/:user_id
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var saved models.Saved
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&saved).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"items": []models.SavedItem{}})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": saved.Items})
	}
}
