package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Totals acumulado escalar de un grupo: piezas e importe.
type Totals struct {
	Quantity int64
	Amount   decimal.Decimal
}

// Entry par (clave, totales) de una agrupación o de un ranking.
type Entry struct {
	Key    string
	Totals Totals
}

// GroupedTotals mapa ordenado de clave → Totals. El orden de iteración es el
// de primera aparición de cada clave, lo que fija de forma determinista el
// desempate de TopN y el orden de render de las gráficas. No usar un map de Go
// directamente: su orden de iteración es aleatorio.
type GroupedTotals struct {
	keys []string
	// totals corre en paralelo con keys: totals[i] pertenece a keys[i].
	totals []Totals
	index  map[string]int
}

// NewGroupedTotals crea una agrupación vacía.
func NewGroupedTotals() *GroupedTotals {
	return &GroupedTotals{index: make(map[string]int)}
}

// Seed registra claves con totales en cero, en el orden dado. Lo usan las
// series de tiempo para garantizar que cada bucket aparece aunque no tenga
// actividad; las agrupaciones derivadas (categorías, proveedores) NO se
// siembran: una clave sin actividad simplemente no existe.
func (g *GroupedTotals) Seed(keys ...string) {
	for _, k := range keys {
		g.slot(k)
	}
}

// Add acumula qty y amount sobre la clave; la registra si es nueva.
func (g *GroupedTotals) Add(key string, qty int64, amount decimal.Decimal) {
	i := g.slot(key)
	t := &g.totals[i]
	t.Quantity += qty
	t.Amount = t.Amount.Add(amount)
}

// Get devuelve los totales de la clave y si existe.
func (g *GroupedTotals) Get(key string) (Totals, bool) {
	i, ok := g.index[key]
	if !ok {
		return Totals{}, false
	}
	return g.totals[i], true
}

// Len número de claves registradas.
func (g *GroupedTotals) Len() int { return len(g.keys) }

// Entries devuelve los pares (clave, totales) en orden de primera aparición.
func (g *GroupedTotals) Entries() []Entry {
	out := make([]Entry, len(g.keys))
	for i, k := range g.keys {
		out[i] = Entry{Key: k, Totals: g.totals[i]}
	}
	return out
}

func (g *GroupedTotals) slot(key string) int {
	if i, ok := g.index[key]; ok {
		return i
	}
	i := len(g.keys)
	g.keys = append(g.keys, key)
	g.totals = append(g.totals, Totals{Amount: decimal.Zero})
	g.index[key] = i
	return i
}

// TopN devuelve como máximo n entradas ordenadas por importe descendente.
// El sort es estable: los empates conservan el orden de primera aparición.
// TopN sobre su propio resultado es idempotente.
func TopN(g *GroupedTotals, n int) []Entry {
	entries := g.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Totals.Amount.GreaterThan(entries[j].Totals.Amount)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Top devuelve la entrada de mayor importe, o ok=false si no hay ninguna.
func Top(g *GroupedTotals) (Entry, bool) {
	top := TopN(g, 1)
	if len(top) == 0 {
		return Entry{}, false
	}
	return top[0], true
}

// Sum acumula amountOf(record) sobre todos los registros; vacío ⇒ 0.
func Sum[T any](records []T, amountOf func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(amountOf(r))
	}
	return total
}

// SumQty acumula qtyOf(record) sobre todos los registros; vacío ⇒ 0.
func SumQty[T any](records []T, qtyOf func(T) int64) int64 {
	var total int64
	for _, r := range records {
		total += qtyOf(r)
	}
	return total
}
