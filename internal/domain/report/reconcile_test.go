package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

func TestNetPayable(t *testing.T) {
	cases := []struct {
		name           string
		gross, returns int64
		want           int64
	}{
		{"caso normal", 10000, 1500, 8500},
		{"sin devoluciones", 10000, 0, 10000},
		{"devoluciones superan al bruto", 1000, 1500, -500}, // no se recorta a cero
		{"todo en cero", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := report.NetPayable(dec(tc.gross), dec(tc.returns))
			assert.True(t, dec(tc.want).Equal(got), "esperado %d, obtenido %s", tc.want, got)
		})
	}
}

func TestScope_FiltroDeProveedor(t *testing.T) {
	window := report.MonthWindow(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	inside := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		{ID: "o1", SupplierID: "sup-1", Date: inside},
		{ID: "o2", SupplierID: "sup-2", Date: inside},
		{ID: "o3", SupplierID: "sup-1", Date: window.End.Add(time.Hour)}, // fuera de ventana
	}

	filtered := report.FilterOrders(orders, report.Scope{Window: window, SupplierID: "sup-1"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "o1", filtered[0].ID)

	// "" y "all" significan lo mismo: sin filtro de proveedor.
	assert.Len(t, report.FilterOrders(orders, report.Scope{Window: window}), 2)
	assert.Len(t, report.FilterOrders(orders, report.Scope{Window: window, SupplierID: report.AllSuppliers}), 2)

	// Proveedor desconocido: no casa nada, no es un error.
	assert.Empty(t, report.FilterOrders(orders, report.Scope{Window: window, SupplierID: "no-existe"}))
}

func TestScope_ExtremosInclusivos(t *testing.T) {
	window := report.DayWindow(time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC))
	returns := []entity.Return{
		{ID: "r1", Date: window.Start},
		{ID: "r2", Date: window.End},
		{ID: "r3", Date: window.Start.Add(-time.Nanosecond)},
	}

	filtered := report.FilterReturns(returns, report.Scope{Window: window})
	assert.Len(t, filtered, 2, "ambos extremos de la ventana son inclusivos")
}
