package domain

import "time"

// Customer is a CRM contact with denormalized order aggregates.
// TotalOrders and TotalSpent are maintained by the order-processing
// systems that own the rows; this service only reads them.
type Customer struct {
	CustomerID     int64     `gorm:"column:customer_id;primaryKey" json:"customer_id,string"`
	FirstName      string    `gorm:"column:first_name" json:"first_name"`
	LastName       string    `gorm:"column:last_name" json:"last_name"`
	Email          string    `gorm:"column:email;index" json:"email"`
	Phone          string    `gorm:"column:phone" json:"phone"`
	AvatarInitials string    `gorm:"column:avatar_initials;size:8" json:"avatar_initials"`
	TotalOrders    int       `gorm:"column:total_orders;default:0" json:"total_orders"`
	TotalSpent     float64   `gorm:"column:total_spent;default:0" json:"total_spent"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Customer) TableName() string {
	return "customers"
}
