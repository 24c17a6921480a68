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

// ReturnUseCase escrituras de devoluciones. Las devoluciones no persisten
// total; el importe sale siempre de price × quantity al leer.
type ReturnUseCase struct {
	repo repository.ReturnRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(repo repository.ReturnRepository) *ReturnUseCase {
	return &ReturnUseCase{repo: repo}
}

// Create registra una devolución.
func (uc *ReturnUseCase) Create(ctx context.Context, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if in.SupplierID == "" || in.CategoryName == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ret := &entity.Return{
		ID:           uuid.New().String(),
		SupplierID:   in.SupplierID,
		Date:         in.Date,
		CategoryName: in.CategoryName,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, ret); err != nil {
		return nil, err
	}
	resp := dto.NewReturnResponse(*ret)
	return &resp, nil
}

// Update modifica una devolución existente (el proveedor no se reasigna).
func (uc *ReturnUseCase) Update(ctx context.Context, id string, in dto.UpdateReturnRequest) error {
	if in.CategoryName == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Return{
		ID:           id,
		Date:         in.Date,
		CategoryName: in.CategoryName,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		UpdatedAt:    time.Now(),
	})
}

// List devuelve todas las devoluciones, más recientes primero.
func (uc *ReturnUseCase) List(ctx context.Context) (*dto.ReturnListResponse, error) {
	returns, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReturnListResponse{Items: dto.NewReturnResponses(returns)}, nil
}

// Delete elimina una devolución.
func (uc *ReturnUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
