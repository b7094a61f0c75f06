package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/loopstack33/admin-panel-functional-apis/internal/domain"
)

// FilterAll is the literal filter value the client sends to mean
// "no filter". The comparison is case-sensitive by contract.
const FilterAll = "all"

const (
	recentOrdersLimit = 10
	revenueChartDays  = 7
)

// Repository issues the dashboard's parameterized read queries against
// the shared store. Connections are acquired per query from the pool
// and released on every exit path by the driver.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DashboardStats is the single-pass aggregate backing the stat cards.
type DashboardStats struct {
	TotalRevenue     float64 `gorm:"column:total_revenue"`
	TotalCustomers   int64   `gorm:"column:total_customers"`
	ActiveOrders     int64   `gorm:"column:active_orders"`
	SatisfactionRate float64 `gorm:"column:satisfaction_rate"`
}

// CategorySale is one grouped row of the category chart.
type CategorySale struct {
	Category   string  `gorm:"column:category"`
	TotalSales float64 `gorm:"column:total_sales"`
}

// RecentOrder is the order-with-customer projection for the
// recent-orders widget.
type RecentOrder struct {
	OrderNumber    string    `gorm:"column:order_number"`
	OrderDate      time.Time `gorm:"column:order_date"`
	TotalAmount    float64   `gorm:"column:total_amount"`
	Status         string    `gorm:"column:status"`
	PaymentStatus  string    `gorm:"column:payment_status"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Email          string    `gorm:"column:email"`
	AvatarInitials string    `gorm:"column:avatar_initials"`
}

// DashboardStats computes the four stat-card aggregates in one statement:
// revenue summed over completed orders, active customer count, count of
// orders still pending or processing, and the satisfaction proxy
// (completed orders averaged as 100/0 per row).
func (r *Repository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = ?) AS total_revenue,
			(SELECT COUNT(*) FROM customers WHERE is_active = ?) AS total_customers,
			(SELECT COUNT(*) FROM orders WHERE status IN (?, ?)) AS active_orders,
			(SELECT COALESCE(AVG(CASE WHEN status = ? THEN 100.0 ELSE 0.0 END), 0) FROM orders) AS satisfaction_rate`,
		domain.OrderStatusCompleted, true,
		domain.OrderStatusPending, domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
	).Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "query dashboard stats")
	}
	return &stats, nil
}

// RevenueByDay returns the first seven daily revenue rows ordered by
// date ascending.
func (r *Repository) RevenueByDay(ctx context.Context) ([]domain.RevenueStat, error) {
	var rows []domain.RevenueStat
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Limit(revenueChartDays).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query revenue stats")
	}
	return rows, nil
}

// CategorySales sums completed-order line totals per product category,
// largest first. Categories with no completed sales are absent.
func (r *Repository) CategorySales(ctx context.Context) ([]CategorySale, error) {
	var rows []CategorySale
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("p.category AS category, SUM(oi.total_price) AS total_sales").
		Joins("JOIN products p ON oi.product_id = p.product_id").
		Joins("JOIN orders o ON oi.order_id = o.order_id").
		Where("o.status = ?", domain.OrderStatusCompleted).
		Group("p.category").
		Order("total_sales DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query category sales")
	}
	return rows, nil
}

// RecentOrders returns the newest orders joined with their customers,
// capped at ten rows. An empty or "all" status applies no filter.
func (r *Repository) RecentOrders(ctx context.Context, status string) ([]RecentOrder, error) {
	query := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.order_number, o.order_date, o.total_amount, o.status, o.payment_status, "+
			"c.first_name, c.last_name, c.email, c.avatar_initials").
		Joins("JOIN customers c ON o.customer_id = c.customer_id")
	if status != "" && status != FilterAll {
		query = query.Where("o.status = ?", status)
	}
	var rows []RecentOrder
	err := query.
		Order("o.order_date DESC").
		Limit(recentOrdersLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query recent orders")
	}
	return rows, nil
}

// ActiveCustomers returns all active customers, newest first.
func (r *Repository) ActiveCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []domain.Customer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query customers")
	}
	return rows, nil
}

// ActiveProducts returns all active products ordered by name. An empty
// or "all" category applies no filter; anything else is an exact match.
func (r *Repository) ActiveProducts(ctx context.Context, category string) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true)
	if category != "" && category != FilterAll {
		query = query.Where("category = ?", category)
	}
	var rows []domain.Product
	err := query.
		Order("product_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return rows, nil
}
