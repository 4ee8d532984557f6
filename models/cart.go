package models

// CartItem is one (user, product) line. The unique index enforces a
// single line per pair; adding the same product again merges quantities.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
