package crmapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type customerRow struct {
	CustomerID     int64   `json:"customer_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	AvatarInitials string  `json:"avatar_initials"`
	TotalOrders    int     `json:"total_orders"`
	TotalSpent     float64 `json:"total_spent"`
	JoinedDate     string  `json:"joined_date"`
}

func (h *Handler) listCustomers(c echo.Context) error {
	rows, err := h.repo.ActiveCustomers(c.Request().Context())
	if err != nil {
		zap.L().Error("customers query failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching customers")
	}

	customers := make([]customerRow, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customerRow{
			CustomerID:     row.CustomerID,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Email:          row.Email,
			Phone:          row.Phone,
			AvatarInitials: row.AvatarInitials,
			TotalOrders:    row.TotalOrders,
			TotalSpent:     row.TotalSpent,
			JoinedDate:     formatDate(row.CreatedAt),
		})
	}
	return ok(c, echo.Map{"customers": customers})
}
