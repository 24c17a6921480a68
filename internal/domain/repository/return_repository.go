package repository

import (
	"context"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// ReturnRepository puerto de persistencia de devoluciones. ListByWindow sigue
// el mismo contrato que el de pedidos: ventana inclusiva, filtro opcional de
// proveedor, orden no garantizado.
type ReturnRepository interface {
	ListByWindow(ctx context.Context, window report.Window, supplierID string) ([]entity.Return, error)

	List(ctx context.Context) ([]entity.Return, error)
	Create(ctx context.Context, ret *entity.Return) error
	Update(ctx context.Context, ret *entity.Return) error
	Delete(ctx context.Context, id string) error
}
