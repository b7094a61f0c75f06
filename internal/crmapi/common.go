package crmapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopstack33/admin-panel-functional-apis/config"
	"github.com/loopstack33/admin-panel-functional-apis/internal/auth"
	"github.com/loopstack33/admin-panel-functional-apis/internal/store"
)

// displayDateLayout renders timestamps the way the dashboard shows them,
// e.g. "Mar 05, 2026".
const displayDateLayout = "Jan 02, 2006"

// dayLabelLayout is the short weekday label used by the revenue chart.
const dayLabelLayout = "Mon"

// Handler carries the collaborators every endpoint needs: the store
// repository, the credential verifier and the trend placeholders from
// configuration. It holds no per-request state.
type Handler struct {
	repo     *store.Repository
	verifier *auth.Verifier
	trends   config.DashboardConfig
}

func NewHandler(repo *store.Repository, verifier *auth.Verifier, trends config.DashboardConfig) *Handler {
	return &Handler{repo: repo, verifier: verifier, trends: trends}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/login", h.login)
	e.GET("/api/dashboard/stats", h.dashboardStats)
	e.GET("/api/dashboard/revenue-chart", h.revenueChart)
	e.GET("/api/dashboard/category-chart", h.categoryChart)
	e.GET("/api/dashboard/recent-orders", h.recentOrders)
	e.GET("/api/customers", h.listCustomers)
	e.GET("/api/products", h.listProducts)
}

// ok writes the success envelope merged with the given payload fields.
func ok(c echo.Context, payload echo.Map) error {
	resp := echo.Map{"success": true}
	for k, v := range payload {
		resp[k] = v
	}
	return c.JSON(http.StatusOK, resp)
}

// fail writes the failure envelope. The message is a fixed per-endpoint
// string; internal error detail never reaches the client.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
	})
}

func formatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
