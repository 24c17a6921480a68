package report

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
)

// AllSuppliers centinela de "sin filtro de proveedor" en un Scope. El string
// vacío significa lo mismo; el centinela existe porque la UI lo manda tal
// cual en el selector de proveedores.
const AllSuppliers = "all"

// Scope ámbito de una agregación: ventana de tiempo más filtro opcional de
// proveedor. Un SupplierID desconocido no es un error: simplemente no casa
// con ningún registro y produce agregados en cero.
type Scope struct {
	Window     Window
	SupplierID string
}

// filtered informa si el scope restringe por proveedor.
func (s Scope) filtered() bool {
	return s.SupplierID != "" && s.SupplierID != AllSuppliers
}

// MatchesOrder informa si el pedido cae dentro del scope.
func (s Scope) MatchesOrder(o entity.Order) bool {
	if !s.Window.Contains(o.Date) {
		return false
	}
	return !s.filtered() || o.SupplierID == s.SupplierID
}

// MatchesReturn informa si la devolución cae dentro del scope.
func (s Scope) MatchesReturn(r entity.Return) bool {
	if !s.Window.Contains(r.Date) {
		return false
	}
	return !s.filtered() || r.SupplierID == s.SupplierID
}

// FilterOrders devuelve los pedidos que caen dentro del scope, en el orden de
// entrada.
func FilterOrders(orders []entity.Order, s Scope) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if s.MatchesOrder(o) {
			out = append(out, o)
		}
	}
	return out
}

// FilterReturns devuelve las devoluciones que caen dentro del scope, en el
// orden de entrada.
func FilterReturns(returns []entity.Return, s Scope) []entity.Return {
	var out []entity.Return
	for _, r := range returns {
		if s.MatchesReturn(r) {
			out = append(out, r)
		}
	}
	return out
}

// NetPayable neto a pagar al proveedor: bruto − devoluciones. No se recorta a
// cero: si las devoluciones superan al bruto el proveedor debe dinero y el
// resultado es negativo; los consumidores lo muestran tal cual.
func NetPayable(gross, returns decimal.Decimal) decimal.Decimal {
	return gross.Sub(returns)
}
