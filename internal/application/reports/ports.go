package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// StatementPDFGenerator puerto del render PDF de la liquidación mensual. La
// implementación vive en internal/infrastructure/pdf (Maroto v2).
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		month time.Time,
		supplierLabel string,
		company *entity.Settings,
		statement *report.Statement,
	) ([]byte, error)
}
