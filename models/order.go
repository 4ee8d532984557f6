package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request label onto the closed status set.
// Any label-to-label move is legal; there is no transition graph.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCanceled:
		return OrderStatusCanceled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// Order is immutable after creation except for Status. Total and the
// shipping fields are snapshots taken at checkout, decoupled from later
// catalog or profile edits.
type Order struct {
	ID     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint            `gorm:"index;not null" json:"userId"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	// Shipping snapshot.
	Address string `gorm:"not null" json:"address"`
	City    string `gorm:"not null" json:"city"`
	Phone   string `gorm:"not null" json:"phone"`
	// Deduplicates retried checkout submissions. NULL when the client
	// sent no key.
	IdempotencyKey *string     `gorm:"uniqueIndex" json:"-"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// OrderItem snapshots quantity and the effective unit price at order
// time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
}
