package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/textil-ops/internal/application/reports"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics devuelve las métricas y series del panel.
// GET /api/dashboard/metrics
//
// Respuesta: DashboardMetricsDTO (daily_orders, daily_revenue, monthly_pieces,
// monthly_payable, top_supplier, revenue_trend[7], category_sales, top_sellers[5],
// returns_by_category, orders_vs_returns).
// No requiere parámetros; las ventanas se calculan en el servidor con su reloj.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(metrics)
}
