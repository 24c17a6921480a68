package repository

import (
	"context"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
)

// CategoryRepository puerto de persistencia del catálogo de telas. No hay
// borrado físico: Deactivate apaga la categoría para que los pedidos ya
// registrados conserven su nombre.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Deactivate(ctx context.Context, id string) error
}
