package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReturnRequest cuerpo de POST /api/returns.
type CreateReturnRequest struct {
	SupplierID   string          `json:"supplier_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Date         time.Time       `json:"date"`
	Reason       string          `json:"reason"`
}

// UpdateReturnRequest cuerpo de PUT /api/returns/:id. El proveedor de una
// devolución no se reasigna; para eso se elimina y se registra de nuevo.
type UpdateReturnRequest struct {
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Date         time.Time       `json:"date"`
	Reason       string          `json:"reason"`
}

// ReturnResponse devolución con proveedor expandido. Amount = price × quantity,
// calculado siempre (las devoluciones no persisten total).
type ReturnResponse struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Date         time.Time       `json:"date"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason,omitempty"`
}

// ReturnListResponse respuesta de GET /api/returns.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
}
