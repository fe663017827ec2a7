package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/logger"
	"github.com/krishnapandey24/brandbox-backend/models"
)

type OrderItemInput struct {
	ProductID       uint    `json:"product_id" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,min=1"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type PlaceOrderInput struct {
	UserID      uint             `json:"user_id" binding:"required"`
	TotalAmount float64          `json:"total_amount" binding:"required"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusCompleted):
		return models.PaymentStatusCompleted, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder creates an order header and its line items. The caller's
// token identity must match the payload user_id. price_at_purchase is
// snapshotted from the payload and total_amount is taken as supplied; a
// mismatch against the line-item sum is logged, not rejected.
// POST /orders
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetUint("user_id")

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if callerID != input.UserID {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authorized"})
			return
		}

		var itemSum float64
		for _, item := range input.Items {
			itemSum += item.PriceAtPurchase * float64(item.Quantity)
		}
		if itemSum != input.TotalAmount {
			logger.Log.Warn("order total does not match line items",
				zap.Uint("user_id", input.UserID),
				zap.Float64("total_amount", input.TotalAmount),
				zap.Float64("item_sum", itemSum),
			)
		}

		order := models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      input.UserID,
			Status:      models.OrderStatusPending,
			TotalAmount: input.TotalAmount,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			items := make([]models.OrderItem, 0, len(input.Items))
			for _, item := range input.Items {
				items = append(items, models.OrderItem{
					OrderID:         order.ID,
					ProductID:       item.ProductID,
					Quantity:        item.Quantity,
					PriceAtPurchase: item.PriceAtPurchase,
				})
			}
			return tx.Create(&items).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to place order"})
			return
		}

		BroadcastOrderUpdate(order.ID, string(order.Status))
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order_id": order.ID, "order_ref": order.OrderRef})
	}
}

// GetUserOrders returns the caller's order history.
// GET /orders/user/:user_id
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetUint("user_id")

		// The path user must be the token owner.
		userID := c.Param("user_id")
		if userID != strconv.FormatUint(uint64(callerID), 10) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authorized"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", callerID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:order_id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("order_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		BroadcastOrderUpdate(order.ID, string(status))
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	Method        string `json:"method"`
}

// UpdatePaymentStatus records the payment state for an order. Payments
// are status-only here; no gateway is involved.
// PUT /orders/:order_id/payment-status
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapPaymentStatus(input.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("order_id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		method := models.PaymentMethod(input.Method)
		if method == "" {
			method = models.PaymentMethodCreditCard
		}

		var payment models.Payment
		err = db.Where("order_id = ?", order.ID).First(&payment).Error
		if err == gorm.ErrRecordNotFound {
			payment = models.Payment{
				OrderID: order.ID,
				Amount:  order.TotalAmount,
				Method:  method,
				Status:  status,
				Date:    time.Now(),
			}
			err = db.Create(&payment).Error
		} else if err == nil {
			err = db.Model(&payment).Updates(map[string]interface{}{"status": status, "date": time.Now()}).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
