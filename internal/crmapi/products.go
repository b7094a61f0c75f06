package crmapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type productRow struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
}

func (h *Handler) listProducts(c echo.Context) error {
	category := c.QueryParam("category")

	rows, err := h.repo.ActiveProducts(c.Request().Context(), category)
	if err != nil {
		zap.L().Error("products query failed", zap.String("category", category), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching products")
	}

	products := make([]productRow, 0, len(rows))
	for _, row := range rows {
		products = append(products, productRow{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			Category:      row.Category,
			Price:         row.Price,
			StockQuantity: row.StockQuantity,
			Description:   row.Description,
		})
	}
	return ok(c, echo.Map{"products": products})
}
