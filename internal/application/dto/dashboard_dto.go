package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics: KPIs del día y
// del mes en curso más los datos de las cinco gráficas del home.
type DashboardMetricsDTO struct {
	DailyOrders    int             `json:"daily_orders"`    // pedidos registrados hoy
	DailyRevenue   decimal.Decimal `json:"daily_revenue"`   // suma de totales de línea de hoy
	MonthlyPieces  int64           `json:"monthly_pieces"`  // piezas pedidas en el mes
	MonthlyPayable decimal.Decimal `json:"monthly_payable"` // bruto del mes, antes de devoluciones
	TopSupplier    string          `json:"top_supplier"`    // "N/A" si el mes no tiene pedidos

	ChartData ChartDataDTO `json:"chart_data"`
}

// ChartDataDTO series listas para las gráficas del dashboard.
type ChartDataDTO struct {
	RevenueTrend      []TrendPointDTO    `json:"revenue_trend"`       // 7 días, del más antiguo al más reciente
	CategorySales     []CategorySaleDTO  `json:"category_sales"`      // importe por categoría del mes
	TopSellers        []TopSellerDTO     `json:"top_sellers"`         // top 5 proveedores por importe
	ReturnsByCategory []CategoryQtyDTO   `json:"returns_by_category"` // cantidades devueltas por categoría
	OrdersVsReturns   []OrdersReturnsDTO `json:"orders_vs_returns"`   // piezas pedidas vs devueltas, 7 días
}

// TrendPointDTO un bucket de la tendencia de ingresos.
type TrendPointDTO struct {
	Date   string          `json:"date"` // etiqueta del día, ej. "Mar 09"
	Amount decimal.Decimal `json:"amount"`
}

// CategorySaleDTO importe vendido de una categoría en el mes.
type CategorySaleDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TopSellerDTO un proveedor del ranking mensual.
type TopSellerDTO struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryQtyDTO cantidad devuelta de una categoría en el mes.
type CategoryQtyDTO struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// OrdersReturnsDTO un bucket pareado de la serie pedidos vs devoluciones.
type OrdersReturnsDTO struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Returns int64  `json:"returns"`
}
