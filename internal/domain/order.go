package domain

import "time"

// Order status values. The store may hold other values written by
// external order-processing systems; these are the ones the dashboard
// queries reference.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

type Order struct {
	OrderID       int64     `gorm:"column:order_id;primaryKey" json:"order_id,string"`
	OrderNumber   string    `gorm:"column:order_number;uniqueIndex" json:"order_number"`
	CustomerID    int64     `gorm:"column:customer_id;index" json:"customer_id,string"`
	OrderDate     time.Time `gorm:"column:order_date;index" json:"order_date"`
	TotalAmount   float64   `gorm:"column:total_amount" json:"total_amount"`
	Status        string    `gorm:"column:status;size:32;index" json:"status"`
	PaymentStatus string    `gorm:"column:payment_status;size:32" json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	OrderItemID int64   `gorm:"column:order_item_id;primaryKey" json:"order_item_id,string"`
	OrderID     int64   `gorm:"column:order_id;index" json:"order_id,string"`
	ProductID   int64   `gorm:"column:product_id;index" json:"product_id,string"`
	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unit_price"`
	TotalPrice  float64 `gorm:"column:total_price" json:"total_price"`
}

// TableName Specify table name
func (OrderItem) TableName() string {
	return "order_items"
}
