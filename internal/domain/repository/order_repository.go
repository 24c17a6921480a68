// Package repository define los puertos de persistencia del dominio. Las
// implementaciones viven en internal/infrastructure/postgres.
package repository

import (
	"context"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// OrderRepository puerto de persistencia de pedidos.
//
// ListByWindow es el contrato de lectura del motor de reportes: devuelve los
// pedidos cuyo Date cae dentro de la ventana (extremos inclusivos), con líneas
// y nombre de proveedor ya expandidos, filtrados por proveedor cuando
// supplierID no es vacío ni "all". El orden de los resultados no está
// garantizado; el motor reordena donde importa.
type OrderRepository interface {
	ListByWindow(ctx context.Context, window report.Window, supplierID string) ([]entity.Order, error)

	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, limit int) ([]entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	// UpdateHeader actualiza proveedor, fecha y notas sin tocar las líneas.
	UpdateHeader(ctx context.Context, order *entity.Order) error
	DeleteItems(ctx context.Context, orderID string) error
	CreateItems(ctx context.Context, orderID string, items []entity.OrderItem) error
	Delete(ctx context.Context, id string) error
}
