package domain

import "time"

// RevenueStat is a precomputed daily revenue aggregate, one row per
// calendar day. Rows are written by the aggregation job, never by the
// request path.
type RevenueStat struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id,string"`
	Date         time.Time `gorm:"column:date;uniqueIndex" json:"date"`
	DailyRevenue float64   `gorm:"column:daily_revenue" json:"daily_revenue"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (RevenueStat) TableName() string {
	return "revenue_stats"
}
