package productcontroller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/models"
)

// sortableFields maps the public sort keys to their columns.
var sortableFields = map[string]string{
	"sales":   "sales",
	"price":   "price",
	"reviews": "review_count",
	"created": "created_at",
}

type variantEntry struct {
	models.Variant
	Media []string `json:"media"`
}

type productEntry struct {
	models.Product
	Media         []string       `json:"media"`
	AverageRating *float64       `json:"average_rating"`
	Variants      []variantEntry `json:"variants"`
}

// GetProducts returns a filtered, sorted, paginated product page with
// media, variants and the average rating attached per product.
// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := atoiDefault(c.Query("page"), 1)
		perPage := atoiDefault(c.Query("per_page"), 10)
		if page < 1 {
			page = 1
		}
		if perPage < 1 {
			perPage = 10
		}

		sortBy := c.DefaultQuery("sort_by", "created")
		sortColumn, ok := sortableFields[sortBy]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort field"})
			return
		}
		direction := "asc"
		if strings.ToLower(c.Query("sort_order")) == "desc" {
			direction = "desc"
		}

		query := db.Model(&models.Product{})
		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}
		if featureType := c.Query("feature_type"); featureType != "" {
			query = query.Where("feature_type = ?", featureType)
		}
		if gender := c.Query("gender"); gender != "" {
			query = query.Where("gender = ?", gender)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(sortColumn + " " + direction).
			Limit(perPage).
			Offset((page - 1) * perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result, err := assemblePage(db, products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble products"})
			return
		}

		pages := totalPages(total, perPage)
		c.JSON(http.StatusOK, gin.H{
			"products":       result,
			"page":           page,
			"total_pages":    pages,
			"total_products": total,
			"has_next":       page < pages,
			"has_prev":       page > 1,
		})
	}
}

// assemblePage attaches media, variants and variant media to a page of
// products using one batch query per relation instead of per-row lookups.
func assemblePage(db *gorm.DB, products []models.Product) ([]productEntry, error) {
	result := make([]productEntry, 0, len(products))
	if len(products) == 0 {
		return result, nil
	}

	productIDs := make([]uint, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	var productMedia []models.Media
	if err := db.Where("product_id IN ?", productIDs).
		Order("created_at").Find(&productMedia).Error; err != nil {
		return nil, err
	}
	mediaByProduct := make(map[uint][]string)
	for _, m := range productMedia {
		if m.ProductID != nil {
			mediaByProduct[*m.ProductID] = append(mediaByProduct[*m.ProductID], m.URL)
		}
	}

	var variants []models.Variant
	if err := db.Where("product_id IN ?", productIDs).Find(&variants).Error; err != nil {
		return nil, err
	}
	variantsByProduct := make(map[uint][]models.Variant)
	variantIDs := make([]uint, 0, len(variants))
	for _, v := range variants {
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], v)
		variantIDs = append(variantIDs, v.ID)
	}

	mediaByVariant := make(map[uint][]string)
	if len(variantIDs) > 0 {
		var variantMedia []models.Media
		if err := db.Where("variant_id IN ?", variantIDs).
			Order("created_at").Find(&variantMedia).Error; err != nil {
			return nil, err
		}
		for _, m := range variantMedia {
			if m.VariantID != nil {
				mediaByVariant[*m.VariantID] = append(mediaByVariant[*m.VariantID], m.URL)
			}
		}
	}

	for _, p := range products {
		entry := productEntry{
			Product:       p,
			Media:         emptyIfNil(mediaByProduct[p.ID]),
			AverageRating: averageRating(p.RatingSum, p.ReviewCount),
			Variants:      []variantEntry{},
		}
		for _, v := range variantsByProduct[p.ID] {
			entry.Variants = append(entry.Variants, variantEntry{
				Variant: v,
				Media:   emptyIfNil(mediaByVariant[v.ID]),
			})
		}
		result = append(result, entry)
	}
	return result, nil
}

// averageRating returns rating_sum/review_count rounded to one decimal,
// or nil when there are no reviews.
func averageRating(sum, count int) *float64 {
	if count <= 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &avg
}

func totalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
