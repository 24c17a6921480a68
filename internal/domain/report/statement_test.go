package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// Mes con bruto 10.000 y devoluciones 1.500 ⇒ neto a pagar 8.500.
func TestBuildStatement_NetoAPagar(t *testing.T) {
	orders := []entity.Order{
		order("o1", "s1", "Fabrics Inc", day(3),
			item("Cotton 60s", 100, 60),  // 6000
			item("Rayon 14kg", 80, 50)),  // 4000
	}
	returns := []entity.Return{
		{ID: "r1", SupplierID: "s1", Date: day(10),
			CategoryName: "Cotton 60s", Price: dec(100), Quantity: 15}, // 1500
	}

	st := report.BuildStatement(orders, returns)

	assert.Equal(t, int64(110), st.Summary.TotalPieces)
	assert.True(t, dec(10000).Equal(st.Summary.GrossAmount))
	assert.Equal(t, int64(15), st.Summary.TotalReturnsQty)
	assert.True(t, dec(1500).Equal(st.Summary.TotalReturnsAmount))
	assert.True(t, dec(8500).Equal(st.Summary.NetPayable))
}

func TestBuildStatement_DevolucionesSuperanAlBruto(t *testing.T) {
	orders := []entity.Order{
		order("o1", "s1", "Fabrics Inc", day(3), item("Cotton 60s", 100, 5)), // 500
	}
	returns := []entity.Return{
		{ID: "r1", SupplierID: "s1", Date: day(10),
			CategoryName: "Cotton 60s", Price: dec(100), Quantity: 8}, // 800
	}

	st := report.BuildStatement(orders, returns)
	assert.True(t, dec(-300).Equal(st.Summary.NetPayable), "el neto negativo se entrega tal cual")
}

// Mes vacío: resumen en cero, desglose vacío, ningún error.
func TestBuildStatement_MesVacio(t *testing.T) {
	st := report.BuildStatement(nil, nil)

	assert.Zero(t, st.Summary.TotalPieces)
	assert.True(t, st.Summary.GrossAmount.IsZero())
	assert.Zero(t, st.Summary.TotalReturnsQty)
	assert.True(t, st.Summary.TotalReturnsAmount.IsZero())
	assert.True(t, st.Summary.NetPayable.IsZero())
	assert.Zero(t, st.Breakdown.Len())
	assert.Empty(t, st.Orders)
	assert.Empty(t, st.Returns)
}

// La misma categoría a precios 100 y 110 con cantidades 5 y 3: cantidad 8,
// importe 830 y precio unitario de la ÚLTIMA línea procesada. El last-write-
// wins es el comportamiento esperado de las liquidaciones existentes, no una
// afirmación de que sea lo correcto.
func TestBuildStatement_PrecioUltimaLinea(t *testing.T) {
	orders := []entity.Order{
		order("o1", "s1", "Fabrics Inc", day(3), item("Cotton 60s", 100, 5)),
		order("o2", "s1", "Fabrics Inc", day(8), item("Cotton 60s", 110, 3)),
	}

	st := report.BuildStatement(orders, nil)

	line, ok := st.Breakdown.Line("Cotton 60s")
	require.True(t, ok)
	assert.Equal(t, int64(8), line.Quantity)
	assert.True(t, dec(830).Equal(line.Amount), "100×5 + 110×3 = 830")
	assert.True(t, dec(110).Equal(line.Price), "precio de la última línea encontrada")
}

func TestBuildStatement_DesgloseEnOrdenDeAparicion(t *testing.T) {
	orders := []entity.Order{
		order("o1", "s1", "Fabrics Inc", day(3),
			item("Silk Satin", 250, 2),
			item("Cotton 60s", 100, 5)),
		order("o2", "s1", "Fabrics Inc", day(8),
			item("Cotton 60s", 100, 1),
			item("Linen Pure", 350, 4)),
	}

	st := report.BuildStatement(orders, nil)
	assert.Equal(t, []string{"Silk Satin", "Cotton 60s", "Linen Pure"}, st.Breakdown.Categories())
}

// El statement expone las listas crudas para que el render muestre el detalle
// sin volver a consultar.
func TestBuildStatement_ConservaListasCrudas(t *testing.T) {
	orders := []entity.Order{
		order("o1", "s1", "Fabrics Inc", day(3), item("Cotton 60s", 100, 5)),
	}
	returns := []entity.Return{
		{ID: "r1", SupplierID: "s1", Date: day(10),
			CategoryName: "Cotton 60s", Price: dec(100), Quantity: 1},
	}

	st := report.BuildStatement(orders, returns)
	require.Len(t, st.Orders, 1)
	require.Len(t, st.Returns, 1)
	assert.Equal(t, "o1", st.Orders[0].ID)
	assert.Equal(t, "r1", st.Returns[0].ID)
}

// La categoría de la devolución no aparece en el desglose de pedidos: el
// desglose solo refleja líneas de pedido.
func TestBuildStatement_DevolucionNoEntraAlDesglose(t *testing.T) {
	returns := []entity.Return{
		{ID: "r1", SupplierID: "s1", Date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			CategoryName: "Silk Satin", Price: dec(250), Quantity: 2},
	}

	st := report.BuildStatement(nil, returns)
	assert.Zero(t, st.Breakdown.Len())
	assert.Equal(t, int64(2), st.Summary.TotalReturnsQty)
}
