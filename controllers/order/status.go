package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus moves an order to a new label and, when the label actually
// changed, appends a status-change outbox row in the same transaction.
// A same-label update is a no-op and queues no notification.
func SetStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, bool, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrOrderNotFound
		}
		return nil, false, err
	}

	if order.Status == next {
		return &order, false, nil
	}
	old := order.Status

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return err
		}
		intent := models.NotificationIntent{
			Kind:      models.NotificationStatusChange,
			OrderID:   order.ID,
			UserID:    order.UserID,
			OldStatus: old,
			NewStatus: next,
		}
		return tx.Create(&intent).Error
	})
	if err != nil {
		return nil, false, err
	}

	order.Status = next
	return &order, true, nil
}

// PATCH /api/orders/:id/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}

		order, changed, err := SetStatus(db, uint(id), status)
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating order status"})
			return
		}

		if changed {
			BroadcastOrderEvent("status_changed", *order)
		}
		c.JSON(http.StatusOK, order)
	}
}
