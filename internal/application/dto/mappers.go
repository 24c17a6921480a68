package dto

import "github.com/tu-usuario/textil-ops/internal/domain/entity"

// Mapeos entidad → DTO compartidos entre los casos de uso CRUD y los de
// reportes (la liquidación devuelve pedidos y devoluciones crudos).

// NewOrderResponse mapea un pedido con sus líneas.
func NewOrderResponse(o entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:           it.ID,
			CategoryName: it.CategoryName,
			Price:        it.Price,
			Quantity:     it.Quantity,
			Total:        it.Total,
		}
	}
	return OrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Date:         o.Date,
		Notes:        o.Notes,
		Items:        items,
		Total:        o.Revenue(),
		CreatedAt:    o.CreatedAt,
	}
}

// NewOrderResponses mapea una lista de pedidos; nunca devuelve nil para que el
// JSON serialice [] y no null.
func NewOrderResponses(orders []entity.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}

// NewReturnResponse mapea una devolución; Amount se calcula siempre.
func NewReturnResponse(r entity.Return) ReturnResponse {
	return ReturnResponse{
		ID:           r.ID,
		SupplierID:   r.SupplierID,
		SupplierName: r.SupplierName,
		Date:         r.Date,
		CategoryName: r.CategoryName,
		Price:        r.Price,
		Quantity:     r.Quantity,
		Amount:       r.Amount(),
		Reason:       r.Reason,
	}
}

// NewReturnResponses mapea una lista de devoluciones.
func NewReturnResponses(returns []entity.Return) []ReturnResponse {
	out := make([]ReturnResponse, len(returns))
	for i, r := range returns {
		out[i] = NewReturnResponse(r)
	}
	return out
}
