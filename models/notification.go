package models

import "time"

type NotificationKind string

const (
	NotificationOrderConfirmation NotificationKind = "order_confirmation"
	NotificationStatusChange      NotificationKind = "status_change"
)

// NotificationIntent is an outbox row. The order workflows append one in
// the same transaction as the state change it announces; the dispatcher
// sends it later with its own retry policy. Delivery never gates the
// request path.
type NotificationIntent struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      NotificationKind `gorm:"type:varchar(32);not null" json:"kind"`
	OrderID   uint             `gorm:"index;not null" json:"orderId"`
	UserID    uint             `gorm:"not null" json:"userId"`
	OldStatus OrderStatus      `gorm:"type:varchar(20)" json:"oldStatus"`
	NewStatus OrderStatus      `gorm:"type:varchar(20)" json:"newStatus"`
	Attempts  int              `gorm:"not null;default:0" json:"attempts"`
	LastError string           `json:"lastError"`
	SentAt    *time.Time       `json:"sentAt"`
	CreatedAt time.Time        `json:"createdAt"`
}
