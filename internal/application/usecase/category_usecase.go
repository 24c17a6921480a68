package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/domain"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// CategoryUseCase escrituras del catálogo de telas. Borrar es desactivar: los
// pedidos referencian la categoría por nombre y deben conservar su histórico.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría activa.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		Name:         in.Name,
		DefaultPrice: in.DefaultPrice,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	resp := categoryToResponse(category)
	return &resp, nil
}

// List devuelve todas las categorías, más recientes primero.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		items[i] = categoryToResponse(&categories[i])
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Deactivate apaga la categoría (soft delete).
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

func categoryToResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		DefaultPrice: c.DefaultPrice,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
