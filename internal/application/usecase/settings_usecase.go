package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/domain"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// SettingsUseCase lectura y edición del perfil de empresa (fila única). El
// repositorio crea la fila por defecto en el primer Get, así que Get nunca
// devuelve "no existe".
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el perfil de empresa.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:    settings.CompanyName,
		CompanyGST:     settings.CompanyGST,
		CompanyAddress: settings.CompanyAddress,
		CurrencySymbol: settings.CurrencySymbol,
	}, nil
}

// Update modifica el perfil de empresa.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) error {
	if in.CompanyName == "" {
		return domain.ErrInvalidInput
	}
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}
	settings.CompanyName = in.CompanyName
	settings.CompanyGST = in.CompanyGST
	settings.CompanyAddress = in.CompanyAddress
	if in.CurrencySymbol != "" {
		settings.CurrencySymbol = in.CurrencySymbol
	}
	settings.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, settings)
}
