package mediacontroller

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/cache"
	"github.com/krishnapandey24/brandbox-backend/models"
)

var unsafeChars = regexp.MustCompile(`[^\w\-_\.]`)

// Root returns the configured media storage directory.
func Root() string {
	if dir := os.Getenv("MEDIA_ROOT"); dir != "" {
		return dir
	}
	return "./media"
}

// DetectType resolves the canonical media type for an uploaded file: the
// declared Content-Type decides, with a filename-extension fallback when
// the part carries none. Unrecognized files are rejected.
func DetectType(file *multipart.FileHeader) (models.MediaType, bool) {
	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(filepath.Ext(file.Filename))
	}
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, true
	default:
		return "", false
	}
}

// SaveFile stores an upload under the media root with a sanitized,
// uuid-prefixed name and returns the stored name and public URL.
func SaveFile(c *gin.Context, file *multipart.FileHeader) (string, string, error) {
	if err := os.MkdirAll(Root(), os.ModePerm); err != nil {
		return "", "", err
	}

	cleanName := unsafeChars.ReplaceAllString(filepath.Base(file.Filename), "_")
	name := fmt.Sprintf("%s_%s", uuid.NewString(), cleanName)
	if err := c.SaveUploadedFile(file, filepath.Join(Root(), name)); err != nil {
		return "", "", err
	}
	return name, "/media/" + name, nil
}

// Attach validates an upload and records a Media row bound to either a
// product or a variant.
func Attach(c *gin.Context, db *gorm.DB, productID, variantID *uint) (*models.Media, int, error) {
	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("file is required")
	}

	mediaType, ok := DetectType(file)
	if !ok {
		return nil, http.StatusBadRequest, fmt.Errorf("content type must be image/* or video/*")
	}

	name, url, err := SaveFile(c, file)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to save file")
	}

	media := models.Media{
		ProductID: productID,
		VariantID: variantID,
		MediaType: mediaType,
		Name:      name,
		URL:       url,
	}
	if err := db.Create(&media).Error; err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to record media")
	}
	return &media, http.StatusCreated, nil
}

// AttachProductMedia uploads one media file for a product.
// POST /products/:id/media
func AttachProductMedia(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve product"})
			}
			return
		}

		media, status, err := Attach(c, db, &product.ID, nil)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		cache.InvalidateProduct(c.Request.Context(), product.ID)
		c.JSON(status, gin.H{"message": "Media added successfully", "media_id": media.ID})
	}
}

// AttachVariantMedia uploads one media file for a variant.
// POST /variants/:id/media
func AttachVariantMedia(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
			return
		}

		var variant models.Variant
		if err := db.First(&variant, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Variant not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve variant"})
			}
			return
		}

		media, status, err := Attach(c, db, nil, &variant.ID)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		cache.InvalidateProduct(c.Request.Context(), variant.ProductID)
		c.JSON(status, gin.H{"message": "Media added successfully", "media_id": media.ID})
	}
}
