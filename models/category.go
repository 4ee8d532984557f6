package models

type Category struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"not null" json:"name"` // Bulgarian name
	NameEn string `gorm:"not null" json:"nameEn"`
	Image  string `gorm:"not null" json:"image"`
	Icon   string `gorm:"not null" json:"icon"`
}
