package models

import "github.com/shopspring/decimal"

type Product struct {
	ID              uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string              `gorm:"not null" json:"name"` // Bulgarian name
	NameEn          string              `gorm:"not null" json:"nameEn"`
	Description     string              `gorm:"not null" json:"description"`
	DescriptionEn   string              `gorm:"not null" json:"descriptionEn"`
	Price           decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountedPrice decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"discountedPrice"`
	CategoryID      uint                `gorm:"index;not null" json:"categoryId"`
	Image           string              `gorm:"not null" json:"image"`
	Rating          float64             `gorm:"default:0" json:"rating"`
	ReviewCount     int                 `gorm:"default:0" json:"reviewCount"`
	// Stock is advisory display data only. Neither the cart nor order
	// creation ever decrements it.
	Stock    int    `gorm:"not null;default:0" json:"stock"`
	Brand    string `gorm:"default:'SportZone'" json:"brand"`
	Badge    string `json:"badge"`
	BadgeEn  string `json:"badgeEn"`
	Featured bool   `gorm:"default:false" json:"featured"`
}

// EffectivePrice is the price carts and orders charge: the discounted
// price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice.Valid && p.DiscountedPrice.Decimal.IsPositive() {
		return p.DiscountedPrice.Decimal
	}
	return p.Price
}
