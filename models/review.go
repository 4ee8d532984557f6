package models

import "time"

// Review supports create and list only; there is no update or delete.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5 stars
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
}
