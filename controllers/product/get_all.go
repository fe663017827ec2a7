package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/cache"
	"github.com/krishnapandey24/brandbox-backend/models"
)

// GetAllProducts returns the unpaginated summary projection used by
// lightweight listings.
// GET /all_products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result := make([]gin.H, 0, len(products))
		for _, p := range products {
			result = append(result, gin.H{
				"product_id":     p.ID,
				"product_name":   p.ProductName,
				"price":          p.Price,
				"stock_quantity": p.StockQuantity,
			})
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetProductByID returns product fields plus a flat media list.
// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if cached, ok := cache.GetProduct(c.Request.Context(), uint(id)); ok {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var mediaList []models.Media
		if err := db.Where("product_id = ?", product.ID).Find(&mediaList).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve media"})
			return
		}
		mediaData := make([]gin.H, 0, len(mediaList))
		for _, m := range mediaList {
			mediaData = append(mediaData, gin.H{
				"id":         m.ID,
				"media_type": m.MediaType,
				"url":        m.URL,
			})
		}

		body := gin.H{
			"id":          product.ID,
			"name":        product.ProductName,
			"description": product.Description,
			"price":       product.Price,
			"created_at":  product.CreatedAt,
			"updated_at":  product.UpdatedAt,
			"media":       mediaData,
		}

		if payload, err := json.Marshal(body); err == nil {
			cache.SetProduct(c.Request.Context(), product.ID, payload)
		}
		c.JSON(http.StatusOK, body)
	}
}
