package crmapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statCard wraps one dashboard metric with its display annotation.
// Change and Trend come from configuration, not from stored data.
type statCard struct {
	Value  interface{} `json:"value"`
	Change float64     `json:"change"`
	Trend  string      `json:"trend"`
}

// chartSeries holds the two parallel sequences consumed by the chart
// widgets. Labels and Data are always the same length.
type chartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// recentOrderRow mirrors the row projection the dashboard table renders.
type recentOrderRow struct {
	OrderNumber    string  `json:"order_number"`
	OrderDate      string  `json:"order_date"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	AvatarInitials string  `json:"avatar_initials"`
}

func (h *Handler) dashboardStats(c echo.Context) error {
	stats, err := h.repo.DashboardStats(c.Request().Context())
	if err != nil {
		zap.L().Error("dashboard stats query failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching dashboard stats")
	}

	return ok(c, echo.Map{
		"stats": echo.Map{
			"revenue": statCard{
				Value:  money(stats.TotalRevenue),
				Change: h.trends.Revenue.Change,
				Trend:  h.trends.Revenue.Trend,
			},
			"customers": statCard{
				Value:  stats.TotalCustomers,
				Change: h.trends.Customers.Change,
				Trend:  h.trends.Customers.Trend,
			},
			"orders": statCard{
				Value:  stats.ActiveOrders,
				Change: h.trends.Orders.Change,
				Trend:  h.trends.Orders.Trend,
			},
			"satisfaction": statCard{
				Value:  fmt.Sprintf("%.1f", stats.SatisfactionRate),
				Change: h.trends.Satisfaction.Change,
				Trend:  h.trends.Satisfaction.Trend,
			},
		},
	})
}

func (h *Handler) revenueChart(c echo.Context) error {
	rows, err := h.repo.RevenueByDay(c.Request().Context())
	if err != nil {
		zap.L().Error("revenue chart query failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching revenue chart data")
	}

	chart := chartSeries{Labels: []string{}, Data: []float64{}}
	for _, row := range rows {
		chart.Labels = append(chart.Labels, row.Date.Format(dayLabelLayout))
		chart.Data = append(chart.Data, row.DailyRevenue)
	}
	return ok(c, echo.Map{"chart": chart})
}

func (h *Handler) categoryChart(c echo.Context) error {
	rows, err := h.repo.CategorySales(c.Request().Context())
	if err != nil {
		zap.L().Error("category chart query failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching category chart data")
	}

	chart := chartSeries{Labels: []string{}, Data: []float64{}}
	for _, row := range rows {
		chart.Labels = append(chart.Labels, row.Category)
		chart.Data = append(chart.Data, row.TotalSales)
	}
	return ok(c, echo.Map{"chart": chart})
}

func (h *Handler) recentOrders(c echo.Context) error {
	status := c.QueryParam("status")

	rows, err := h.repo.RecentOrders(c.Request().Context(), status)
	if err != nil {
		zap.L().Error("recent orders query failed", zap.String("status", status), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching recent orders")
	}

	orders := make([]recentOrderRow, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, recentOrderRow{
			OrderNumber:    row.OrderNumber,
			OrderDate:      formatDate(row.OrderDate),
			TotalAmount:    row.TotalAmount,
			Status:         row.Status,
			PaymentStatus:  row.PaymentStatus,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Email:          row.Email,
			AvatarInitials: row.AvatarInitials,
		})
	}
	return ok(c, echo.Map{"orders": orders})
}
