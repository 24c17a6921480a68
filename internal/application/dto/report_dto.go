package dto

import "github.com/shopspring/decimal"

// MonthlyStatementDTO respuesta de GET /api/reports/statement: la liquidación
// del mes para un proveedor (o todos), con los agregados y el detalle crudo
// para que la tabla y el PDF no tengan que volver a consultar.
type MonthlyStatementDTO struct {
	Orders            []OrderResponse     `json:"orders"`
	Returns           []ReturnResponse    `json:"returns"`
	Summary           StatementSummaryDTO `json:"summary"`
	CategoryBreakdown []CategoryLineDTO   `json:"category_breakdown"`
}

// StatementSummaryDTO totales de la liquidación.
type StatementSummaryDTO struct {
	TotalPieces        int64           `json:"total_pieces"`
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	TotalReturnsQty    int64           `json:"total_returns_qty"`
	TotalReturnsAmount decimal.Decimal `json:"total_returns_amount"`
	NetPayable         decimal.Decimal `json:"net_payable"` // puede ser negativo
}

// CategoryLineDTO acumulado de una categoría en la liquidación. Price es el
// precio unitario de la última línea procesada (no un promedio).
type CategoryLineDTO struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Price    decimal.Decimal `json:"price"`
}
