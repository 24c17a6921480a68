package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/domain"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// defaultOrderListLimit pedidos devueltos por el listado cuando el caller no
// pide otra cosa.
const defaultOrderListLimit = 50

// OrderUseCase reglas de negocio de pedidos. La única regla con contenido es
// el invariante de los totales: cada línea persiste total = price × quantity
// calculado aquí, nunca el total que envíe el cliente.
type OrderUseCase struct {
	repo     repository.OrderRepository
	txRunner TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, txRunner TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, txRunner: txRunner}
}

// Create registra un pedido con sus líneas.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Date:       in.Date,
		Notes:      in.Notes,
		Items:      buildItems(in.Items),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, order.ID)
	if err != nil || created == nil {
		// El insert ya está confirmado; devolver lo que tenemos sin el
		// nombre de proveedor expandido antes que fallar la llamada.
		resp := dto.NewOrderResponse(*order)
		return &resp, nil
	}
	resp := dto.NewOrderResponse(*created)
	return &resp, nil
}

// Update reemplaza cabecera y líneas del pedido en una sola transacción:
// update de cabecera, delete de líneas existentes, insert de las nuevas.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		order := &entity.Order{
			ID:         id,
			SupplierID: in.SupplierID,
			Date:       in.Date,
			Notes:      in.Notes,
			UpdatedAt:  time.Now(),
		}
		if err := orders.UpdateHeader(ctx, order); err != nil {
			return err
		}
		if err := orders.DeleteItems(ctx, id); err != nil {
			return err
		}
		return orders.CreateItems(ctx, id, buildItems(in.Items))
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewOrderResponse(*updated)
	return &resp, nil
}

// GetByID obtiene un pedido con líneas y proveedor expandidos.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewOrderResponse(*order)
	return &resp, nil
}

// List devuelve los pedidos más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, limit int) (*dto.OrderListResponse, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	orders, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{Items: dto.NewOrderResponses(orders)}, nil
}

// Delete elimina el pedido y sus líneas (cascada en la DB).
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// buildItems materializa las líneas recalculando el total de cada una.
func buildItems(inputs []dto.OrderItemInput) []entity.OrderItem {
	items := make([]entity.OrderItem, len(inputs))
	for i, in := range inputs {
		items[i] = entity.OrderItem{
			ID:           uuid.New().String(),
			CategoryName: in.CategoryName,
			Price:        in.Price,
			Quantity:     in.Quantity,
			Total:        in.Price.Mul(decimal.NewFromInt(in.Quantity)),
		}
	}
	return items
}
