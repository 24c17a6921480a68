package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/textil-ops/internal/application/dto"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

// StatementUseCase produce la liquidación mensual de un proveedor (o de
// todos) para facturación.
type StatementUseCase struct {
	orderRepo  repository.OrderRepository
	returnRepo repository.ReturnRepository
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(orderRepo repository.OrderRepository, returnRepo repository.ReturnRepository) *StatementUseCase {
	return &StatementUseCase{orderRepo: orderRepo, returnRepo: returnRepo}
}

// GetMonthlyStatement liquida el mes calendario que contiene month, filtrado
// por proveedor salvo que supplierID sea vacío o "all". Un proveedor
// desconocido o inactivo no es un error: no casa con nada y la liquidación
// sale en cero.
func (uc *StatementUseCase) GetMonthlyStatement(
	ctx context.Context,
	month time.Time,
	supplierID string,
) (*dto.MonthlyStatementDTO, error) {
	st, err := uc.buildStatement(ctx, month, supplierID)
	if err != nil {
		return nil, err
	}
	return statementToDTO(st), nil
}

// buildStatement versión interna que conserva el Statement del dominio; la
// usa también el caso de uso del PDF.
func (uc *StatementUseCase) buildStatement(
	ctx context.Context,
	month time.Time,
	supplierID string,
) (*report.Statement, error) {
	window := report.MonthWindow(month)

	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type returnsResult struct {
		returns []entity.Return
		err     error
	}

	ordersCh := make(chan ordersResult, 1)
	returnsCh := make(chan returnsResult, 1)

	go func() {
		orders, err := uc.orderRepo.ListByWindow(ctx, window, supplierID)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		returns, err := uc.returnRepo.ListByWindow(ctx, window, supplierID)
		returnsCh <- returnsResult{returns, err}
	}()

	ordersRes := <-ordersCh
	returnsRes := <-returnsCh

	if ordersRes.err != nil {
		return nil, fmt.Errorf("liquidación: pedidos del mes: %w", ordersRes.err)
	}
	if returnsRes.err != nil {
		return nil, fmt.Errorf("liquidación: devoluciones del mes: %w", returnsRes.err)
	}

	return report.BuildStatement(ordersRes.orders, returnsRes.returns), nil
}

func statementToDTO(st *report.Statement) *dto.MonthlyStatementDTO {
	breakdown := make([]dto.CategoryLineDTO, 0, st.Breakdown.Len())
	for _, category := range st.Breakdown.Categories() {
		line, _ := st.Breakdown.Line(category)
		breakdown = append(breakdown, dto.CategoryLineDTO{
			Category: category,
			Quantity: line.Quantity,
			Amount:   line.Amount,
			Price:    line.Price,
		})
	}

	return &dto.MonthlyStatementDTO{
		Orders:            dto.NewOrderResponses(st.Orders),
		Returns:           dto.NewReturnResponses(st.Returns),
		CategoryBreakdown: breakdown,
		Summary: dto.StatementSummaryDTO{
			TotalPieces:        st.Summary.TotalPieces,
			GrossAmount:        st.Summary.GrossAmount,
			TotalReturnsQty:    st.Summary.TotalReturnsQty,
			TotalReturnsAmount: st.Summary.TotalReturnsAmount,
			NetPayable:         st.Summary.NetPayable,
		},
	}
}
