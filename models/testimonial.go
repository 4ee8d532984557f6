package models

type Testimonial struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	Image   string `json:"image"`
}
