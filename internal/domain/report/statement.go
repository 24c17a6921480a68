package report

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
)

// CategoryLine acumulado de una categoría dentro de la liquidación mensual.
//
// Price es el precio unitario de la última línea procesada para la categoría:
// cada línea lo sobrescribe, no se promedia. Si el precio varió dentro del mes
// el valor mostrado depende del orden de proceso. Comportamiento heredado de
// los reportes existentes; cambiarlo a promedio ponderado rompería la
// comparación byte a byte con liquidaciones ya emitidas, así que se conserva
// hasta que negocio decida lo contrario.
type CategoryLine struct {
	Quantity int64
	Amount   decimal.Decimal
	Price    decimal.Decimal
}

// CategoryBreakdown mapa ordenado categoría → CategoryLine; el orden de
// iteración es el de primera aparición de cada categoría en los pedidos.
type CategoryBreakdown struct {
	keys  []string
	lines map[string]*CategoryLine
}

// Categories claves en orden de primera aparición.
func (b *CategoryBreakdown) Categories() []string { return b.keys }

// Line devuelve el acumulado de la categoría y si existe.
func (b *CategoryBreakdown) Line(category string) (CategoryLine, bool) {
	l, ok := b.lines[category]
	if !ok {
		return CategoryLine{}, false
	}
	return *l, true
}

// Len número de categorías con actividad.
func (b *CategoryBreakdown) Len() int { return len(b.keys) }

func (b *CategoryBreakdown) fold(it entity.OrderItem) {
	l, ok := b.lines[it.CategoryName]
	if !ok {
		l = &CategoryLine{Amount: decimal.Zero}
		b.lines[it.CategoryName] = l
		b.keys = append(b.keys, it.CategoryName)
	}
	l.Quantity += it.Quantity
	l.Amount = l.Amount.Add(it.Total)
	l.Price = it.Price // last-write-wins, ver doc de CategoryLine
}

// Summary totales de la liquidación mensual de un proveedor (o de todos).
type Summary struct {
	TotalPieces        int64
	GrossAmount        decimal.Decimal
	TotalReturnsQty    int64
	TotalReturnsAmount decimal.Decimal
	NetPayable         decimal.Decimal // GrossAmount − TotalReturnsAmount, puede ser negativo
}

// Statement liquidación mensual: desglose por categoría, resumen y las listas
// crudas de pedidos y devoluciones del scope, para que el render (tabla, PDF)
// muestre el detalle línea a línea sin volver a consultar.
type Statement struct {
	Orders    []entity.Order
	Returns   []entity.Return
	Breakdown *CategoryBreakdown
	Summary   Summary
}

// BuildStatement derriba los pedidos y devoluciones ya filtrados por scope a
// la liquidación mensual. Un conjunto vacío produce resumen en cero y desglose
// vacío, nunca un error.
func BuildStatement(orders []entity.Order, returns []entity.Return) *Statement {
	breakdown := &CategoryBreakdown{lines: make(map[string]*CategoryLine)}
	var pieces int64
	gross := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			pieces += it.Quantity
			gross = gross.Add(it.Total)
			breakdown.fold(it)
		}
	}

	returnsQty := SumQty(returns, func(r entity.Return) int64 { return r.Quantity })
	returnsAmount := Sum(returns, entity.Return.Amount)

	return &Statement{
		Orders:    orders,
		Returns:   returns,
		Breakdown: breakdown,
		Summary: Summary{
			TotalPieces:        pieces,
			GrossAmount:        gross,
			TotalReturnsQty:    returnsQty,
			TotalReturnsAmount: returnsAmount,
			NetPayable:         NetPayable(gross, returnsAmount),
		},
	}
}
