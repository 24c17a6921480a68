package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category representa un tipo de tela del catálogo. Las líneas de pedido y las
// devoluciones referencian la categoría por nombre (texto libre comparado por
// igualdad), no por clave foránea; DefaultPrice solo prellena formularios.
type Category struct {
	ID           string
	Name         string
	DefaultPrice decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
