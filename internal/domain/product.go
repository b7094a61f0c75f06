package domain

import "time"

// Product is a catalog item surfaced by the products listing.
type Product struct {
	ProductID     int64     `gorm:"column:product_id;primaryKey" json:"product_id,string"`
	ProductName   string    `gorm:"column:product_name;index" json:"product_name"`
	Category      string    `gorm:"column:category;size:64;index" json:"category"`
	Price         float64   `gorm:"column:price" json:"price"`
	StockQuantity int       `gorm:"column:stock_quantity" json:"stock_quantity"`
	Description   string    `gorm:"column:description;size:1024" json:"description"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
