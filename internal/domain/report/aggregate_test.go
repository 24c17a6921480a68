package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSum_VacioEsCero(t *testing.T) {
	total := report.Sum(nil, func(d decimal.Decimal) decimal.Decimal { return d })
	assert.True(t, total.IsZero(), "la suma de cero registros es 0, no un error")

	qty := report.SumQty([]int64{}, func(q int64) int64 { return q })
	assert.Equal(t, int64(0), qty)
}

func TestGroupedTotals_OrdenDePrimeraAparicion(t *testing.T) {
	g := report.NewGroupedTotals()
	g.Add("Rayon 14kg", 3, dec(255))
	g.Add("Cotton 60s", 10, dec(1200))
	g.Add("Rayon 14kg", 2, dec(170))

	entries := g.Entries()
	require.Len(t, entries, 2, "el conjunto de claves es exactamente el observado")
	assert.Equal(t, "Rayon 14kg", entries[0].Key)
	assert.Equal(t, "Cotton 60s", entries[1].Key)
	assert.Equal(t, int64(5), entries[0].Totals.Quantity)
	assert.True(t, dec(425).Equal(entries[0].Totals.Amount))
}

func TestGroupedTotals_SeedPreservaBucketsVacios(t *testing.T) {
	g := report.NewGroupedTotals()
	g.Seed("Mar 01", "Mar 02", "Mar 03")
	g.Add("Mar 02", 4, dec(100))

	entries := g.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Mar 01", entries[0].Key)
	assert.True(t, entries[0].Totals.Amount.IsZero(), "bucket sin actividad presente con 0, no ausente")
	assert.True(t, dec(100).Equal(entries[1].Totals.Amount))
	assert.True(t, entries[2].Totals.Amount.IsZero())
}

func TestTopN_OrdenYTruncado(t *testing.T) {
	g := report.NewGroupedTotals()
	g.Add("A", 1, dec(50))
	g.Add("B", 1, dec(300))
	g.Add("C", 1, dec(120))
	g.Add("D", 1, dec(300)) // empate con B
	g.Add("E", 1, dec(10))
	g.Add("F", 1, dec(90))

	top := report.TopN(g, 5)
	require.Len(t, top, 5)

	// Estrictamente no creciente por importe.
	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].Totals.Amount.GreaterThan(top[i-1].Totals.Amount))
	}

	// Empate B/D: gana el primero en aparecer (sort estable).
	assert.Equal(t, "B", top[0].Key)
	assert.Equal(t, "D", top[1].Key)
	assert.Equal(t, "C", top[2].Key)
}

func TestTopN_Idempotente(t *testing.T) {
	g := report.NewGroupedTotals()
	g.Add("A", 1, dec(50))
	g.Add("B", 1, dec(300))
	g.Add("C", 1, dec(120))

	once := report.TopN(g, 5)

	regrouped := report.NewGroupedTotals()
	for _, e := range once {
		regrouped.Add(e.Key, e.Totals.Quantity, e.Totals.Amount)
	}
	twice := report.TopN(regrouped, 5)

	assert.Equal(t, once, twice, "topN(topN(g,5),5) == topN(g,5)")
}

func TestTop_SinEntradas(t *testing.T) {
	_, ok := report.Top(report.NewGroupedTotals())
	assert.False(t, ok)
}
