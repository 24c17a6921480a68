package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de pedido en create/update. El total NO se acepta del
// cliente: siempre se recalcula como price × quantity en el servidor.
type OrderItemInput struct {
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
}

// CreateOrderRequest cuerpo de POST /api/orders.
type CreateOrderRequest struct {
	SupplierID string           `json:"supplier_id"`
	Date       time.Time        `json:"date"`
	Notes      string           `json:"notes"`
	Items      []OrderItemInput `json:"items"`
}

// UpdateOrderRequest cuerpo de PUT /api/orders/:id. Las líneas enviadas
// reemplazan por completo a las existentes (mismo contrato que la edición del
// formulario de pedidos).
type UpdateOrderRequest struct {
	SupplierID string           `json:"supplier_id"`
	Date       time.Time        `json:"date"`
	Notes      string           `json:"notes"`
	Items      []OrderItemInput `json:"items"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
}

// OrderResponse pedido con líneas y proveedor expandidos.
type OrderResponse struct {
	ID           string              `json:"id"`
	SupplierID   string              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Date         time.Time           `json:"date"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
}

// OrderListResponse respuesta de GET /api/orders.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
