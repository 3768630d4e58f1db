package domain

import "time"

// Product is a catalog item shown on the public storefront. The ID is an
// opaque UUID assigned at creation and never changes afterwards.
type Product struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"index;size:100" json:"name"`
	Category  string    `gorm:"index" json:"category"`
	Stock     int       `json:"stock"`
	Price     float64   `json:"price"`
	Image     string    `gorm:"size:1024" json:"image"` // /uploads/<file> reference, empty when none
	CreatedAt time.Time `json:"createdAt"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
