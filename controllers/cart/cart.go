package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/models"
)

type AddToCartInput struct {
	UserID    uint  `json:"user_id"`
	ProductID uint  `json:"product_id"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// AddToCart adds a product (optionally a specific variant) to the user's
// cart, creating the cart on first use. Repeated adds of the same
// (product, variant) pair accumulate quantity and subtotal; the upsert
// runs in one transaction so concurrent adds serialize instead of losing
// an update.
// POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if input.UserID == 0 || input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		if input.VariantID != nil {
			var variant models.Variant
			if err := db.First(&variant, *input.VariantID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "Variant does not exist"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate variant"})
				}
				return
			}
		}

		subtotal := product.Price * float64(input.Quantity)

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			err := tx.Where("user_id = ?", input.UserID).First(&cart).Error
			if err == gorm.ErrRecordNotFound {
				cart = models.Cart{UserID: input.UserID}
				if err := tx.Create(&cart).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			var item models.CartItem
			query := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID)
			if input.VariantID != nil {
				query = query.Where("variant_id = ?", *input.VariantID)
			} else {
				query = query.Where("variant_id IS NULL")
			}

			err = query.First(&item).Error
			if err == gorm.ErrRecordNotFound {
				item = models.CartItem{
					CartID:    cart.CartID,
					ProductID: input.ProductID,
					VariantID: input.VariantID,
					Quantity:  input.Quantity,
					Subtotal:  subtotal,
				}
				return tx.Create(&item).Error
			}
			if err != nil {
				return err
			}

			item.Quantity += input.Quantity
			item.Subtotal += subtotal
			return tx.Save(&item).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add product to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added to cart successfully"})
	}
}

// GetCart returns the user's cart with per-item media, the product's
// variant options and cart-level totals.
// GET /cart/:user_id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"cart_items": []gin.H{}, "total_price": 0.0, "total_items": 0})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		var items []models.CartItem
		if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}

		itemsData := make([]gin.H, 0, len(items))
		var totalPrice float64

		for _, item := range items {
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart product"})
				return
			}

			var variants []models.Variant
			if err := db.Where("product_id = ?", product.ID).Find(&variants).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve variants"})
				return
			}
			variantList := make([]gin.H, 0, len(variants))
			for _, v := range variants {
				variantList = append(variantList, gin.H{
					"variant_id": v.ID,
					"size":       v.Size,
					"color_id":   v.ColorID,
				})
			}

			var media []models.Media
			mediaQuery := db.Order("created_at")
			if item.VariantID != nil {
				mediaQuery = mediaQuery.Where("variant_id = ?", *item.VariantID)
			} else {
				mediaQuery = mediaQuery.Where("product_id = ?", item.ProductID)
			}
			if err := mediaQuery.Find(&media).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve media"})
				return
			}
			mediaURLs := make([]string, 0, len(media))
			for _, m := range media {
				mediaURLs = append(mediaURLs, m.URL)
			}

			totalPrice += item.Subtotal
			itemsData = append(itemsData, gin.H{
				"cart_item_id": item.ID,
				"product_id":   product.ID,
				"product_name": product.ProductName,
				"quantity":     item.Quantity,
				"subtotal":     item.Subtotal,
				"variant_id":   item.VariantID,
				"media":        mediaURLs,
				"variants":     variantList,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_items":  itemsData,
			"total_price": totalPrice,
			"total_items": len(items),
		})
	}
}

// DELETE /cart/:user_id/items/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		itemID := c.Param("item_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart/:user_id
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
