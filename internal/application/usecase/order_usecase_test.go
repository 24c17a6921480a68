package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/application/usecase"
	"github.com/tu-usuario/textil-ops/internal/domain"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// memOrderRepo repositorio de pedidos en memoria para los tests del caso de uso.
type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *memOrderRepo) ListByWindow(_ context.Context, window report.Window, supplierID string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return report.FilterOrders(out, report.Scope{Window: window, SupplierID: supplierID}), nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context, limit int) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if len(out) == limit {
			break
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) UpdateHeader(_ context.Context, order *entity.Order) error {
	existing, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.SupplierID = order.SupplierID
	existing.Date = order.Date
	existing.Notes = order.Notes
	existing.UpdatedAt = order.UpdatedAt
	return nil
}

func (r *memOrderRepo) DeleteItems(_ context.Context, orderID string) error {
	if o, ok := r.orders[orderID]; ok {
		o.Items = nil
	}
	return nil
}

func (r *memOrderRepo) CreateItems(_ context.Context, orderID string, items []entity.OrderItem) error {
	if o, ok := r.orders[orderID]; ok {
		o.Items = append(o.Items, items...)
	}
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

// memTxRunner ejecuta el callback contra el mismo repositorio, sin transacción
// real; basta para comprobar la secuencia cabecera → delete → insert.
type memTxRunner struct {
	repo *memOrderRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(t.repo)
}

func newOrderUC() (*usecase.OrderUseCase, *memOrderRepo) {
	repo := newMemOrderRepo()
	return usecase.NewOrderUseCase(repo, &memTxRunner{repo: repo}), repo
}

func TestOrderCreateRecomputesLineTotals(t *testing.T) {
	uc, repo := newOrderUC()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.OrderItemInput{
			{CategoryName: "Cotton 60s", Price: decimal.NewFromInt(120), Quantity: 10},
			{CategoryName: "Rayon 14kg", Price: decimal.NewFromInt(85), Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// El total de cada línea sale de price × quantity, ignore lo que el
	// cliente haya mandado (el DTO ni siquiera lo acepta).
	assert.True(t, out.Items[0].Total.Equal(decimal.NewFromInt(1200)), "total línea 1: %s", out.Items[0].Total)
	assert.True(t, out.Items[1].Total.Equal(decimal.NewFromInt(340)), "total línea 2: %s", out.Items[1].Total)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1540)))

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Items[0].Total.Equal(decimal.NewFromInt(1200)))
}

func TestOrderCreateRejectsEmptyInput(t *testing.T) {
	uc, _ := newOrderUC()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{SupplierID: "", Items: nil})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateReplacesItems(t *testing.T) {
	uc, _ := newOrderUC()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.OrderItemInput{
			{CategoryName: "Cotton 60s", Price: decimal.NewFromInt(120), Quantity: 10},
			{CategoryName: "Polyester", Price: decimal.NewFromInt(60), Quantity: 20},
		},
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		SupplierID: "sup-2",
		Date:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Notes:      "revised",
		Items: []dto.OrderItemInput{
			{CategoryName: "Silk Satin", Price: decimal.NewFromInt(250), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// Las líneas anteriores desaparecen por completo; no hay merge.
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Silk Satin", updated.Items[0].CategoryName)
	assert.True(t, updated.Items[0].Total.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, "sup-2", updated.SupplierID)
	assert.Equal(t, "revised", updated.Notes)
}

func TestOrderUpdateUnknownIDReturnsNotFound(t *testing.T) {
	uc, _ := newOrderUC()

	_, err := uc.Update(context.Background(), "no-such-order", dto.UpdateOrderRequest{
		SupplierID: "sup-1",
		Items: []dto.OrderItemInput{
			{CategoryName: "Cotton 60s", Price: decimal.NewFromInt(120), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderGetByIDUnknownReturnsNotFound(t *testing.T) {
	uc, _ := newOrderUC()

	_, err := uc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderDeleteThenGone(t *testing.T) {
	uc, repo := newOrderUC()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.OrderItemInput{
			{CategoryName: "Cotton 60s", Price: decimal.NewFromInt(120), Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
