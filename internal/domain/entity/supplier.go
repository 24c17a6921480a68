package entity

import "time"

// Supplier representa un proveedor de telas. Active en false lo oculta de los
// formularios pero conserva su histórico de pedidos y devoluciones.
type Supplier struct {
	ID        string
	Name      string
	GST       string // número GST del proveedor (opcional)
	Contact   string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
