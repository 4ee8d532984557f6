package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"github.com/nmihaylov96/sportzone-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

type PlaceOrderRequest struct {
	Address string `json:"address" binding:"required,min=5"`
	City    string `json:"city" binding:"required,min=2"`
	Phone   string `json:"phone" binding:"required,min=5"`
	// Optional; retried submissions carrying the same key return the
	// already-created order instead of duplicating it.
	IdempotencyKey string `json:"idempotencyKey"`
}

// PlaceOrder turns the user's cart into an order.
//
// The total is computed server-side from current catalog prices; nothing
// the client sends is trusted for money. Order, order items, the
// confirmation outbox row and the cart clear all commit in one
// transaction, so a crash mid-checkout leaves neither a half order nor
// an order alongside a still-full cart.
func PlaceOrder(db *gorm.DB, user models.User, req PlaceOrderRequest) (*models.Order, error) {
	if req.IdempotencyKey != "" {
		var existing models.Order
		err := db.Preload("Items").
			Where("user_id = ? AND idempotency_key = ?", user.ID, req.IdempotencyKey).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var cartItems []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		price := item.Product.EffectivePrice()
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	order := models.Order{
		UserID:  user.ID,
		Total:   total,
		Status:  models.OrderStatusPending,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
		Items:   orderItems,
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		order.IdempotencyKey = &key
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		intent := models.NotificationIntent{
			Kind:      models.NotificationOrderConfirmation,
			OrderID:   order.ID,
			UserID:    user.ID,
			NewStatus: order.Status,
		}
		if err := tx.Create(&intent).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			req.IdempotencyKey = key
		}

		order, err := PlaceOrder(db, user, req)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
				return
			}
			log.Printf("❌ Failed to place order for user %d: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the order"})
			return
		}

		BroadcastOrderEvent("order_created", *order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id — the owner or an admin only.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the order"})
			}
			return
		}

		if order.UserID != user.ID && !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
