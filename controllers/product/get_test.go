package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestGetProductsInvalidSortField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.GET("/products", GetProducts(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?sort_by=stock", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid sort field")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsEmptyPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.GET("/products", GetProducts(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?sort_by=price", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(0), body["total_pages"])
	assert.Equal(t, float64(0), body["total_products"])
	assert.Equal(t, false, body["has_next"])
	assert.Equal(t, false, body["has_prev"])
	assert.Len(t, body["products"], 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsAssemblesMediaVariantsAndRating(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "rating_sum", "review_count"}).
			AddRow(1, "Sneaker", 59.99, 9, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "media"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "media_type", "url"}).
			AddRow(10, 1, "image", "/media/a.jpg").
			AddRow(11, 1, "image", "/media/b.jpg"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "variants"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "size", "color_id"}).
			AddRow(5, 1, "M", 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "media"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "variant_id", "media_type", "url"}).
			AddRow(12, 5, "image", "/media/v.jpg"))

	r := gin.New()
	r.GET("/products", GetProducts(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?sort_by=reviews&sort_order=desc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []struct {
			ID            uint     `json:"product_id"`
			Media         []string `json:"media"`
			AverageRating *float64 `json:"average_rating"`
			Variants      []struct {
				ID    uint     `json:"variant_id"`
				Media []string `json:"media"`
			} `json:"variants"`
		} `json:"products"`
		TotalPages int  `json:"total_pages"`
		HasNext    bool `json:"has_next"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 1)
	assert.Equal(t, []string{"/media/a.jpg", "/media/b.jpg"}, body.Products[0].Media)
	if assert.NotNil(t, body.Products[0].AverageRating) {
		assert.Equal(t, 4.5, *body.Products[0].AverageRating)
	}
	assert.Len(t, body.Products[0].Variants, 1)
	assert.Equal(t, []string{"/media/v.jpg"}, body.Products[0].Variants[0].Media)
	assert.Equal(t, 1, body.TotalPages)
	assert.False(t, body.HasNext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageRating(t *testing.T) {
	assert.Nil(t, averageRating(0, 0))
	assert.Nil(t, averageRating(4, 0))

	avg := averageRating(9, 2)
	if assert.NotNil(t, avg) {
		assert.Equal(t, 4.5, *avg)
	}

	avg = averageRating(10, 3) // 3.333... rounds to 3.3
	if assert.NotNil(t, avg) {
		assert.Equal(t, 3.3, *avg)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 4, totalPages(10, 3))
}
