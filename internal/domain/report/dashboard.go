package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
)

const (
	// trendDays días de las series rodantes del dashboard.
	trendDays = 7
	// topSellerCount tamaño del ranking de proveedores del dashboard.
	topSellerCount = 5
	// NoSupplierLabel centinela cuando el mes no tiene pedidos y no hay
	// proveedor top que mostrar. No es un error.
	NoSupplierLabel = "N/A"
)

// SeriesPoint un bucket de la tendencia de ingresos.
type SeriesPoint struct {
	Label  string
	Amount decimal.Decimal
}

// FlowPoint un bucket de la serie pedidos vs devoluciones (en piezas).
type FlowPoint struct {
	Label   string
	Orders  int64
	Returns int64
}

// Dashboard KPIs del día y del mes en curso más las cinco series de gráficas.
// Estructura valor completamente materializada; se construye en cada llamada
// y no retiene referencias al almacén.
type Dashboard struct {
	DailyOrders    int             // pedidos registrados hoy
	DailyRevenue   decimal.Decimal // suma de totales de línea de hoy
	MonthlyPieces  int64           // piezas pedidas en el mes
	MonthlyPayable decimal.Decimal // bruto del mes (antes de devoluciones)
	TopSupplier    string          // proveedor con mayor importe del mes, o NoSupplierLabel

	RevenueTrend      []SeriesPoint // últimos 7 días, del más antiguo al más reciente
	CategorySales     []Entry       // ventas del mes por categoría (importe)
	TopSellers        []Entry       // top 5 proveedores del mes por importe
	ReturnsByCategory []Entry       // devoluciones del mes por categoría (cantidad)
	OrdersVsReturns   []FlowPoint   // piezas pedidas vs devueltas, últimos 7 días
}

// BuildDashboard derriba los registros dados a los KPIs y series del home.
// orders y returns deben cubrir al menos la unión del mes en curso y los
// últimos 7 días; el motor sub-filtra por ventana, así que traer de más no
// altera el resultado.
func BuildDashboard(now time.Time, orders []entity.Order, returns []entity.Return) *Dashboard {
	todayOrders := FilterOrders(orders, Scope{Window: DayWindow(now)})
	monthScope := Scope{Window: MonthWindow(now)}
	monthOrders := FilterOrders(orders, monthScope)
	monthReturns := FilterReturns(returns, monthScope)

	trendScope := Scope{Window: rollingWindow(now, trendDays)}
	trendOrders := FilterOrders(orders, trendScope)
	trendReturns := FilterReturns(returns, trendScope)

	// Proveedor top del mes: ranking por importe, centinela si no hay pedidos.
	bySupplier := NewGroupedTotals()
	byCategory := NewGroupedTotals()
	for _, o := range monthOrders {
		bySupplier.Add(o.SupplierName, o.Pieces(), o.Revenue())
		for _, it := range o.Items {
			byCategory.Add(it.CategoryName, it.Quantity, it.Total)
		}
	}
	// El centinela también cubre el caso degenerado de un mes cuyos pedidos
	// suman todos cero: un "top" sin importe no es un proveedor destacado.
	topSupplier := NoSupplierLabel
	if top, ok := Top(bySupplier); ok && top.Totals.Amount.IsPositive() {
		topSupplier = top.Key
	}

	// Devoluciones del mes por categoría, en cantidades (no importe).
	returnsByCategory := NewGroupedTotals()
	for _, r := range monthReturns {
		returnsByCategory.Add(r.CategoryName, r.Quantity, r.Amount())
	}

	return &Dashboard{
		DailyOrders:    len(todayOrders),
		DailyRevenue:   Sum(todayOrders, entity.Order.Revenue),
		MonthlyPieces:  SumQty(monthOrders, entity.Order.Pieces),
		MonthlyPayable: Sum(monthOrders, entity.Order.Revenue),
		TopSupplier:    topSupplier,

		RevenueTrend:      revenueTrend(now, trendOrders),
		CategorySales:     byCategory.Entries(),
		TopSellers:        TopN(bySupplier, topSellerCount),
		ReturnsByCategory: returnsByCategory.Entries(),
		OrdersVsReturns:   ordersVsReturns(now, trendOrders, trendReturns),
	}
}

// rollingWindow ventana de los últimos n días: inicio del día n-1 días atrás
// hasta el fin del día de now.
func rollingWindow(now time.Time, n int) Window {
	return Window{
		Start: DayWindow(now.AddDate(0, 0, -(n - 1))).Start,
		End:   DayWindow(now).End,
	}
}

// revenueTrend serie de ingresos por día, pre-sembrada en cero para que cada
// bucket aparezca aunque no tenga pedidos.
func revenueTrend(now time.Time, orders []entity.Order) []SeriesPoint {
	buckets := NewGroupedTotals()
	buckets.Seed(RollingDays(now, trendDays)...)
	for _, o := range orders {
		buckets.Add(DayLabel(o.Date), o.Pieces(), o.Revenue())
	}
	entries := buckets.Entries()
	points := make([]SeriesPoint, len(entries))
	for i, e := range entries {
		points[i] = SeriesPoint{Label: e.Key, Amount: e.Totals.Amount}
	}
	return points
}

// ordersVsReturns dos series paralelas pre-sembradas en cero (piezas pedidas y
// piezas devueltas por día) fusionadas en puntos pareados.
func ordersVsReturns(now time.Time, orders []entity.Order, returns []entity.Return) []FlowPoint {
	labels := RollingDays(now, trendDays)

	ordered := NewGroupedTotals()
	ordered.Seed(labels...)
	for _, o := range orders {
		ordered.Add(DayLabel(o.Date), o.Pieces(), o.Revenue())
	}

	returned := NewGroupedTotals()
	returned.Seed(labels...)
	for _, r := range returns {
		returned.Add(DayLabel(r.Date), r.Quantity, r.Amount())
	}

	points := make([]FlowPoint, len(labels))
	for i, label := range labels {
		o, _ := ordered.Get(label)
		r, _ := returned.Get(label)
		points[i] = FlowPoint{Label: label, Orders: o.Quantity, Returns: r.Quantity}
	}
	return points
}
