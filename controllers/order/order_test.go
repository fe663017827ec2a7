package ordercontroller

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

// asUser simulates the token middleware having resolved the caller.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
	}
}

func TestPlaceOrderRejectsMismatchedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.POST("/orders", asUser(7), PlaceOrder(gormDB))

	body := `{"user_id":1,"total_amount":20,"items":[{"product_id":1,"quantity":2,"price_at_purchase":10}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderCreatesOrderAndItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	r := gin.New()
	r.POST("/orders", asUser(1), PlaceOrder(gormDB))

	body := `{"user_id":1,"total_amount":30,"items":[{"product_id":1,"quantity":2,"price_at_purchase":10},{"product_id":2,"quantity":1,"price_at_purchase":10}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":12`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRequiresItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.POST("/orders", asUser(1), PlaceOrder(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"user_id":1,"total_amount":10,"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserOrdersRejectsOtherUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.GET("/orders/user/:user_id", asUser(7), GetUserOrders(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/user/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusInvalidStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	r := gin.New()
	r.PUT("/orders/:order_id/status", UpdateOrderStatus(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/5/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid order status")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.PUT("/orders/:order_id/status", UpdateOrderStatus(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/5/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	assert.NoError(t, err)
	assert.Equal(t, "shipped", string(status))

	_, err = mapOrderStatus("lost")
	assert.Error(t, err)
}
