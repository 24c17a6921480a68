package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/textil-ops/internal/application/reports"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

// ReportHandler maneja los endpoints de liquidación mensual.
type ReportHandler struct {
	statements *reports.StatementUseCase
	pdf        *reports.StatementPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(statements *reports.StatementUseCase, pdf *reports.StatementPDFUseCase) *ReportHandler {
	return &ReportHandler{statements: statements, pdf: pdf}
}

// GetStatement godoc
// @Summary      Liquidación mensual por proveedor
// @Tags         reports
// @Produce      json
// @Param        month        query  string  false  "Mes YYYY-MM (defecto: mes en curso)"
// @Param        supplier_id  query  string  false  "ID del proveedor; vacío o 'all' = todos"
// @Success      200  {object}  dto.MonthlyStatementDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/statement [get]
func (h *ReportHandler) GetStatement(c *fiber.Ctx) error {
	month, err := parseMonth(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "month debe tener formato YYYY-MM")
	}
	supplierID := c.Query("supplier_id", report.AllSuppliers)

	out, err := h.statements.GetMonthlyStatement(c.Context(), month, supplierID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetStatementPDF godoc
// @Summary      Liquidación mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month        query  string  false  "Mes YYYY-MM (defecto: mes en curso)"
// @Param        supplier_id  query  string  false  "ID del proveedor; vacío o 'all' = todos"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/statement/pdf [get]
func (h *ReportHandler) GetStatementPDF(c *fiber.Ctx) error {
	month, err := parseMonth(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "month debe tener formato YYYY-MM")
	}
	supplierID := c.Query("supplier_id", report.AllSuppliers)

	pdf, err := h.pdf.GenerateStatementPDF(c.Context(), month, supplierID)
	if err != nil {
		return mapDomainError(c, err)
	}

	filename := fmt.Sprintf("liquidacion-%s.pdf", month.Format("2006-01"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
