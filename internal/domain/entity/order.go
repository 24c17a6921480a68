package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order pedido de compra a un proveedor, con sus líneas expandidas.
// SupplierName viene expandido desde la consulta; el motor de reportes agrupa
// y etiqueta por nombre, nunca muta el proveedor.
type Order struct {
	ID           string
	SupplierID   string
	SupplierName string
	Date         time.Time // granularidad de día calendario
	Notes        string
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem línea de pedido. Total se persiste como price × quantity en el
// momento de la escritura y es autoritativo para la agregación; la capa CRUD
// lo recalcula en cada create/update, nunca confía en el total que envíe el
// cliente.
type OrderItem struct {
	ID           string
	OrderID      string
	CategoryName string
	Price        decimal.Decimal
	Quantity     int64
	Total        decimal.Decimal
}

// Pieces suma de cantidades de todas las líneas del pedido.
func (o Order) Pieces() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

// Revenue suma de los totales almacenados de todas las líneas del pedido.
func (o Order) Revenue() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Total)
	}
	return total
}
