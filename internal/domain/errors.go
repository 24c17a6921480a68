package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// La ausencia de datos NO es un error: un mes sin pedidos produce una
// liquidación en cero y un proveedor desconocido en un filtro de reporte
// simplemente no casa con nada. ErrNotFound se reserva para lookups directos
// por ID (GET /orders/:id y similares).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
