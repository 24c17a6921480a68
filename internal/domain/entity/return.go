package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return devolución de mercancía a un proveedor. A diferencia de las líneas de
// pedido no almacena un total: el importe del reembolso se calcula siempre
// como price × quantity.
type Return struct {
	ID           string
	SupplierID   string
	SupplierName string
	Date         time.Time
	CategoryName string
	Price        decimal.Decimal
	Quantity     int64
	Reason       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Amount importe del reembolso: price × quantity.
func (r Return) Amount() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(r.Quantity))
}
