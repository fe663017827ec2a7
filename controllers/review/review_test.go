package reviewcontroller

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
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

func postReview(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.POST("/products/:id/reviews", CreateReview(gormDB))

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`} {
		w := postReview(r, "/products/1/reviews", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewProductNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.POST("/products/:id/reviews", CreateReview(gormDB))

	w := postReview(r, "/products/99/reviews", `{"rating":4}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The review row and the product counters must land in the same
// transaction.
func TestCreateReviewUpdatesAggregates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating_sum", "review_count"}).
			AddRow(1, 9, 2))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "reviews"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := gin.New()
	r.POST("/products/:id/reviews", CreateReview(gormDB))

	w := postReview(r, "/products/1/reviews", `{"rating":5,"comment":"great fit"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"review_id":5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductReviews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "rating", "comment"}).
			AddRow(1, 1, 5, "great fit").
			AddRow(2, 1, 3, "runs small"))

	r := gin.New()
	r.GET("/products/:id/reviews", GetProductReviews(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/1/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "runs small")
	assert.NoError(t, mock.ExpectationsWereMet())
}
