package productcontroller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mediacontroller "github.com/krishnapandey24/brandbox-backend/controllers/media"
	"github.com/krishnapandey24/brandbox-backend/models"
)

type CreateProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	FakePrice     float64 `json:"fake_price"`
	StockQuantity int     `json:"stock_quantity"`
	FeatureType   string  `json:"feature_type"`
	Gender        string  `json:"gender"`
	CategoryID    uint    `json:"category_id"`
}

// CreateProduct creates a product from a JSON payload.
// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}
		if input.Name == "" || input.Price == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		if input.CategoryID != 0 {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category"})
				}
				return
			}
		}

		product := models.Product{
			ProductName:   input.Name,
			Description:   input.Description,
			Price:         input.Price,
			FakePrice:     input.FakePrice,
			StockQuantity: input.StockQuantity,
			FeatureType:   models.FeatureType(input.FeatureType),
			Gender:        models.Gender(input.Gender),
			CategoryID:    input.CategoryID,
		}
		if product.FeatureType == "" {
			product.FeatureType = models.FeatureBasic
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(statusForWriteError(err), gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product_id": product.ID})
	}
}

// AddProduct creates a product, its media files and its variants (each
// with their own media) from one multipart request. The whole sequence
// runs in a single transaction; integrity errors roll everything back.
// POST /add_product
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart form is required"})
			return
		}

		name := c.PostForm("product_name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		fakePrice, _ := strconv.ParseFloat(c.PostForm("fake_price"), 64)
		stock := atoiDefault(c.PostForm("stock_quantity"), 0)

		var categoryID uint
		if cidStr := c.PostForm("category_id"); cidStr != "" {
			cid, err := strconv.ParseUint(cidStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, cid).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category"})
				}
				return
			}
			categoryID = uint(cid)
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		product := models.Product{
			ProductName:   name,
			Description:   c.PostForm("description"),
			Price:         price,
			FakePrice:     fakePrice,
			StockQuantity: stock,
			FeatureType:   models.FeatureType(c.DefaultPostForm("feature_type", string(models.FeatureBasic))),
			Gender:        models.Gender(c.PostForm("gender")),
			CategoryID:    categoryID,
		}
		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(statusForWriteError(err), gin.H{"error": "Failed to create product"})
			return
		}

		for _, fh := range form.File["media"] {
			if status, err := storeMedia(c, tx, fh, &product.ID, nil); err != nil {
				tx.Rollback()
				c.JSON(status, gin.H{"error": err.Error()})
				return
			}
		}

		for i := 0; ; i++ {
			prefix := fmt.Sprintf("variants[%d]", i)
			size := c.PostForm(prefix + "[size]")
			colorStr := c.PostForm(prefix + "[color_id]")
			stockStr := c.PostForm(prefix + "[stock_quantity]")
			if size == "" && colorStr == "" && stockStr == "" {
				break
			}

			colorID, _ := strconv.ParseUint(colorStr, 10, 64)
			variant := models.Variant{
				ProductID:     product.ID,
				Size:          models.Size(size),
				ColorID:       uint(colorID),
				StockQuantity: atoiDefault(stockStr, 0),
			}
			if err := tx.Create(&variant).Error; err != nil {
				tx.Rollback()
				c.JSON(statusForWriteError(err), gin.H{"error": "Failed to create variant"})
				return
			}

			for _, fh := range form.File[prefix+"[media]"] {
				if status, err := storeMedia(c, tx, fh, nil, &variant.ID); err != nil {
					tx.Rollback()
					c.JSON(status, gin.H{"error": err.Error()})
					return
				}
			}
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(statusForWriteError(err), gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product_id": product.ID})
	}
}

func storeMedia(c *gin.Context, tx *gorm.DB, fh *multipart.FileHeader, productID, variantID *uint) (int, error) {
	mediaType, ok := mediacontroller.DetectType(fh)
	if !ok {
		return http.StatusBadRequest, fmt.Errorf("content type of %q must be image/* or video/*", fh.Filename)
	}
	name, url, err := mediacontroller.SaveFile(c, fh)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("failed to save %q", fh.Filename)
	}
	media := models.Media{
		ProductID: productID,
		VariantID: variantID,
		MediaType: mediaType,
		Name:      name,
		URL:       url,
	}
	if err := tx.Create(&media).Error; err != nil {
		return statusForWriteError(err), fmt.Errorf("failed to record media for %q", fh.Filename)
	}
	return http.StatusCreated, nil
}

// statusForWriteError maps translated integrity violations to client
// errors; everything else stays a 500.
func statusForWriteError(err error) int {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
