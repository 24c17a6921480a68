package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest cuerpo de POST /api/categories.
type CreateCategoryRequest struct {
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"default_price"`
}

// CategoryResponse categoría del catálogo en respuestas.
type CategoryResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CategoryListResponse respuesta de GET /api/categories.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
