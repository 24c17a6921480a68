package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-ops/internal/application/reports"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// ── Fakes de repositorio ──────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
	// gotWindow y gotSupplier capturan la última consulta para aserciones.
	gotWindow   report.Window
	gotSupplier string
}

func (f *fakeOrderRepo) ListByWindow(_ context.Context, w report.Window, supplierID string) ([]entity.Order, error) {
	f.gotWindow, f.gotSupplier = w, supplierID
	if f.err != nil {
		return nil, f.err
	}
	return report.FilterOrders(f.orders, report.Scope{Window: w, SupplierID: supplierID}), nil
}

func (f *fakeOrderRepo) GetByID(context.Context, string) (*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) List(context.Context, int) ([]entity.Order, error)      { return nil, nil }
func (f *fakeOrderRepo) Create(context.Context, *entity.Order) error            { return nil }
func (f *fakeOrderRepo) UpdateHeader(context.Context, *entity.Order) error      { return nil }
func (f *fakeOrderRepo) DeleteItems(context.Context, string) error              { return nil }
func (f *fakeOrderRepo) CreateItems(context.Context, string, []entity.OrderItem) error {
	return nil
}
func (f *fakeOrderRepo) Delete(context.Context, string) error { return nil }

type fakeReturnRepo struct {
	returns []entity.Return
	err     error
}

func (f *fakeReturnRepo) ListByWindow(_ context.Context, w report.Window, supplierID string) ([]entity.Return, error) {
	if f.err != nil {
		return nil, f.err
	}
	return report.FilterReturns(f.returns, report.Scope{Window: w, SupplierID: supplierID}), nil
}

func (f *fakeReturnRepo) List(context.Context) ([]entity.Return, error)  { return nil, nil }
func (f *fakeReturnRepo) Create(context.Context, *entity.Return) error   { return nil }
func (f *fakeReturnRepo) Update(context.Context, *entity.Return) error   { return nil }
func (f *fakeReturnRepo) Delete(context.Context, string) error           { return nil }

// ── Helpers ───────────────────────────────────────────────────────────────────

var ucNow = time.Date(2026, time.March, 15, 14, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func orderOn(date time.Time, supplierID string, price, qty int64) entity.Order {
	return entity.Order{
		ID: "o-" + date.Format("0102"), SupplierID: supplierID, SupplierName: "Proveedor " + supplierID,
		Date: date,
		Items: []entity.OrderItem{{
			CategoryName: "Cotton 60s", Price: dec(price), Quantity: qty, Total: dec(price * qty),
		}},
	}
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboardUseCase_FetchFallido_AbortaTodo(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := reports.NewDashboardUseCase(
		&fakeOrderRepo{err: boom},
		&fakeReturnRepo{},
	).WithClock(func() time.Time { return ucNow })

	metrics, err := uc.GetMetrics(context.Background())

	require.Error(t, err, "un fetch fallido hace fallar el reporte completo")
	assert.ErrorIs(t, err, boom, "el error del almacén se propaga tal cual, sin reintentos")
	assert.Nil(t, metrics, "no se devuelve un dashboard parcial")
}

func TestDashboardUseCase_VentanaUnion(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	uc := reports.NewDashboardUseCase(orderRepo, &fakeReturnRepo{}).
		WithClock(func() time.Time { return ucNow })

	_, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	// 15 de marzo: el inicio de mes (Mar 01) precede a hace-6-días (Mar 09),
	// así que la ventana unión arranca en el mes. El fin es el fin de mes,
	// no el fin de hoy: los KPIs mensuales incluyen fechas futuras del mes.
	assert.Equal(t, time.March, orderRepo.gotWindow.Start.Month())
	assert.Equal(t, 1, orderRepo.gotWindow.Start.Day())
	assert.Equal(t, 31, orderRepo.gotWindow.End.Day())
	assert.Empty(t, orderRepo.gotSupplier, "el dashboard nunca filtra por proveedor")
}

func TestDashboardUseCase_VentanaUnionCruzaElMes(t *testing.T) {
	// 3 de marzo: hace-6-días cae en febrero y debe ampliar la ventana.
	early := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{}
	uc := reports.NewDashboardUseCase(orderRepo, &fakeReturnRepo{}).
		WithClock(func() time.Time { return early })

	_, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.February, orderRepo.gotWindow.Start.Month())
	assert.Equal(t, 25, orderRepo.gotWindow.Start.Day())
}

func TestDashboardUseCase_PedidosFuturosDelMesCuentanEnKPIs(t *testing.T) {
	// Un pedido registrado con fecha 20 de marzo, consultando el día 15:
	// aún no ocurrió pero pertenece al mes y debe entrar en los KPIs
	// mensuales (piezas, importe, ranking de proveedores).
	future := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		orderOn(future, "s9", 100, 7),
	}}

	uc := reports.NewDashboardUseCase(orderRepo, &fakeReturnRepo{}).
		WithClock(func() time.Time { return ucNow })

	metrics, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), metrics.MonthlyPieces)
	assert.True(t, dec(700).Equal(metrics.MonthlyPayable),
		"el importe del mes debe incluir el pedido del 20 de marzo; obtenido %s", metrics.MonthlyPayable)
	assert.Equal(t, "Proveedor s9", metrics.TopSupplier)
	// Y no contamina las cifras del día ni la tendencia de 7 días.
	assert.Zero(t, metrics.DailyOrders)
	for _, p := range metrics.ChartData.RevenueTrend {
		assert.True(t, p.Amount.IsZero(), "bucket %s", p.Date)
	}
}

func TestDashboardUseCase_MapeoCompleto(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		orderOn(ucNow, "s1", 50, 10),
	}}
	returnRepo := &fakeReturnRepo{returns: []entity.Return{{
		ID: "r1", SupplierID: "s1", Date: ucNow,
		CategoryName: "Cotton 60s", Price: dec(50), Quantity: 2,
	}}}

	uc := reports.NewDashboardUseCase(orderRepo, returnRepo).
		WithClock(func() time.Time { return ucNow })

	metrics, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.DailyOrders)
	assert.True(t, dec(500).Equal(metrics.DailyRevenue))
	assert.Equal(t, "Proveedor s1", metrics.TopSupplier)
	assert.Len(t, metrics.ChartData.RevenueTrend, 7)
	assert.Len(t, metrics.ChartData.OrdersVsReturns, 7)
	require.Len(t, metrics.ChartData.ReturnsByCategory, 1)
	assert.Equal(t, int64(2), metrics.ChartData.ReturnsByCategory[0].Value)
}

// ── Liquidación mensual ──────────────────────────────────────────────────────

func TestStatementUseCase_MesNormal(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		orderOn(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), "s1", 100, 100), // 10000
	}}
	returnRepo := &fakeReturnRepo{returns: []entity.Return{{
		ID: "r1", SupplierID: "s1", Date: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		CategoryName: "Cotton 60s", Price: dec(100), Quantity: 15, // 1500
	}}}

	uc := reports.NewStatementUseCase(orderRepo, returnRepo)
	st, err := uc.GetMonthlyStatement(context.Background(), month, "s1")
	require.NoError(t, err)

	assert.True(t, dec(10000).Equal(st.Summary.GrossAmount))
	assert.True(t, dec(8500).Equal(st.Summary.NetPayable))
	assert.Len(t, st.Orders, 1)
	assert.Len(t, st.Returns, 1)
	require.Len(t, st.CategoryBreakdown, 1)
	assert.Equal(t, "Cotton 60s", st.CategoryBreakdown[0].Category)
}

func TestStatementUseCase_ProveedorDesconocido_CeroSinError(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		orderOn(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), "s1", 100, 10),
	}}

	uc := reports.NewStatementUseCase(orderRepo, &fakeReturnRepo{})
	st, err := uc.GetMonthlyStatement(context.Background(), month, "no-existe")

	require.NoError(t, err, "un proveedor desconocido se trata como mes vacío")
	assert.Zero(t, st.Summary.TotalPieces)
	assert.True(t, st.Summary.NetPayable.IsZero())
	assert.Empty(t, st.CategoryBreakdown)
	assert.Empty(t, st.Orders)
}

func TestStatementUseCase_FetchFallido(t *testing.T) {
	boom := errors.New("timeout")
	uc := reports.NewStatementUseCase(&fakeOrderRepo{}, &fakeReturnRepo{err: boom})

	st, err := uc.GetMonthlyStatement(context.Background(),
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, st)
}
