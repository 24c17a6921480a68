// Package usecase contiene la capa de mutación CRUD: escrituras puras sobre
// pedidos, devoluciones, proveedores, categorías y perfil de empresa. Aquí no
// se agrega nada; la agregación vive en internal/domain/report.
package usecase

import (
	"context"

	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// TxRunner ejecuta un callback con un OrderRepository atado a una transacción.
// Lo usa la edición de pedidos, donde el reemplazo de líneas (update de
// cabecera + delete + insert) debe ser atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
