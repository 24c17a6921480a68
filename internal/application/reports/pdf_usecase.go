package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// allSuppliersLabel cabecera del PDF cuando la liquidación no filtra por
// proveedor.
const allSuppliersLabel = "Todos los proveedores"

// StatementPDFUseCase genera el PDF de la liquidación mensual. Compone el
// caso de uso de liquidación con el perfil de empresa y el generador Maroto.
// El perfil se lee del repositorio una vez por llamada y se pasa explícito al
// generador; no existe configuración global.
type StatementPDFUseCase struct {
	statements   *StatementUseCase
	supplierRepo repository.SupplierRepository
	settingsRepo repository.SettingsRepository
	generator    StatementPDFGenerator
}

// NewStatementPDFUseCase construye el caso de uso.
func NewStatementPDFUseCase(
	statements *StatementUseCase,
	supplierRepo repository.SupplierRepository,
	settingsRepo repository.SettingsRepository,
	generator StatementPDFGenerator,
) *StatementPDFUseCase {
	return &StatementPDFUseCase{
		statements:   statements,
		supplierRepo: supplierRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// GenerateStatementPDF devuelve los bytes del PDF de la liquidación del mes.
// Un proveedor filtrado pero desconocido produce el mismo PDF que un mes sin
// movimientos (todo en cero), con el ID como etiqueta de cabecera.
func (uc *StatementPDFUseCase) GenerateStatementPDF(
	ctx context.Context,
	month time.Time,
	supplierID string,
) ([]byte, error) {
	st, err := uc.statements.buildStatement(ctx, month, supplierID)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("pdf liquidación: perfil de empresa: %w", err)
	}

	label := allSuppliersLabel
	if supplierID != "" && supplierID != report.AllSuppliers {
		label = supplierID
		if supplier, err := uc.supplierRepo.GetByID(ctx, supplierID); err == nil && supplier != nil {
			label = supplier.Name
		}
	}

	pdf, err := uc.generator.GenerateStatementPDF(ctx, month, label, settings, st)
	if err != nil {
		return nil, fmt.Errorf("pdf liquidación: render: %w", err)
	}
	return pdf, nil
}
