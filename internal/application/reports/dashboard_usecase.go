// Package reports contiene los casos de uso de lectura: el dashboard del home
// y la liquidación mensual por proveedor (JSON y PDF). Los casos de uso traen
// los registros del almacén y delegan toda la agregación en
// internal/domain/report, que es puro.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// DashboardUseCase construye los KPIs y series del home para el instante de
// la llamada.
//
// Consistencia: se hacen exactamente dos consultas (pedidos y devoluciones)
// sobre la ventana unión mes-en-curso ∪ últimos-7-días y el motor sub-filtra
// en memoria, así que todas las sub-cifras de un mismo fetch son coherentes
// entre sí. Entre las dos consultas no hay snapshot: una escritura que
// aterrice en medio puede desfasar pedidos respecto a devoluciones. Staleness
// acotado y aceptado para un back office de baja escritura.
type DashboardUseCase struct {
	orderRepo  repository.OrderRepository
	returnRepo repository.ReturnRepository
	clock      func() time.Time
}

// NewDashboardUseCase construye el caso de uso con reloj de sistema.
func NewDashboardUseCase(orderRepo repository.OrderRepository, returnRepo repository.ReturnRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, returnRepo: returnRepo, clock: time.Now}
}

// WithClock fija el reloj; solo para tests.
func (uc *DashboardUseCase) WithClock(clock func() time.Time) *DashboardUseCase {
	uc.clock = clock
	return uc
}

// GetMetrics trae los registros necesarios y construye el dashboard completo.
// Si cualquiera de los dos fetches falla, falla la llamada entera: no se
// devuelve un dashboard parcial.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	now := uc.clock()

	// Ventana unión: cubre el mes en curso completo y los últimos 7 días (que
	// pueden colgar hacia el mes anterior). Los KPIs mensuales abarcan el mes
	// entero, incluidas las fechas futuras que el usuario haya registrado, así
	// que el fin de ventana es el fin de mes (siempre ≥ fin de hoy); el motor
	// sub-filtra por ventana y traer de más no altera el resultado.
	window := report.MonthWindow(now)
	if weekStart := report.DayWindow(now.AddDate(0, 0, -6)).Start; weekStart.Before(window.Start) {
		window.Start = weekStart
	}

	// ── Goroutines para paralelizar las 2 consultas DB ────────────────────────
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type returnsResult struct {
		returns []entity.Return
		err     error
	}

	ordersCh := make(chan ordersResult, 1)
	returnsCh := make(chan returnsResult, 1)

	go func() {
		orders, err := uc.orderRepo.ListByWindow(ctx, window, "")
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		returns, err := uc.returnRepo.ListByWindow(ctx, window, "")
		returnsCh <- returnsResult{returns, err}
	}()

	ordersRes := <-ordersCh
	returnsRes := <-returnsCh

	if ordersRes.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de la ventana: %w", ordersRes.err)
	}
	if returnsRes.err != nil {
		return nil, fmt.Errorf("dashboard: devoluciones de la ventana: %w", returnsRes.err)
	}

	d := report.BuildDashboard(now, ordersRes.orders, returnsRes.returns)
	return dashboardToDTO(d), nil
}

func dashboardToDTO(d *report.Dashboard) *dto.DashboardMetricsDTO {
	trend := make([]dto.TrendPointDTO, len(d.RevenueTrend))
	for i, p := range d.RevenueTrend {
		trend[i] = dto.TrendPointDTO{Date: p.Label, Amount: p.Amount}
	}

	categorySales := make([]dto.CategorySaleDTO, len(d.CategorySales))
	for i, e := range d.CategorySales {
		categorySales[i] = dto.CategorySaleDTO{Name: e.Key, Value: e.Totals.Amount}
	}

	topSellers := make([]dto.TopSellerDTO, len(d.TopSellers))
	for i, e := range d.TopSellers {
		topSellers[i] = dto.TopSellerDTO{Name: e.Key, Amount: e.Totals.Amount}
	}

	returnsByCategory := make([]dto.CategoryQtyDTO, len(d.ReturnsByCategory))
	for i, e := range d.ReturnsByCategory {
		returnsByCategory[i] = dto.CategoryQtyDTO{Name: e.Key, Value: e.Totals.Quantity}
	}

	ordersVsReturns := make([]dto.OrdersReturnsDTO, len(d.OrdersVsReturns))
	for i, p := range d.OrdersVsReturns {
		ordersVsReturns[i] = dto.OrdersReturnsDTO{Date: p.Label, Orders: p.Orders, Returns: p.Returns}
	}

	return &dto.DashboardMetricsDTO{
		DailyOrders:    d.DailyOrders,
		DailyRevenue:   d.DailyRevenue,
		MonthlyPieces:  d.MonthlyPieces,
		MonthlyPayable: d.MonthlyPayable,
		TopSupplier:    d.TopSupplier,
		ChartData: dto.ChartDataDTO{
			RevenueTrend:      trend,
			CategorySales:     categorySales,
			TopSellers:        topSellers,
			ReturnsByCategory: returnsByCategory,
			OrdersVsReturns:   ordersVsReturns,
		},
	}
}
