package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/textil-ops/internal/domain"
	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación del puerto ReturnRepository.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnColumns = `r.id, r.supplier_id, s.name, r.date, r.category_name, r.price, r.quantity, COALESCE(r.reason, ''), r.created_at, r.updated_at`

// ListByWindow devuelve las devoluciones con fecha dentro de la ventana
// (extremos inclusivos), con nombre de proveedor expandido; mismo contrato de
// filtro que los pedidos.
func (r *ReturnRepo) ListByWindow(ctx context.Context, window report.Window, supplierID string) ([]entity.Return, error) {
	const query = `
	SELECT ` + returnColumns + `
	FROM returns r
	JOIN suppliers s ON s.id = r.supplier_id
	WHERE r.date BETWEEN $1 AND $2
	  AND ($3::TEXT IS NULL OR r.supplier_id = $3)`

	rows, err := r.q.Query(ctx, query, window.Start, window.End, supplierFilterValue(supplierID))
	if err != nil {
		return nil, fmt.Errorf("returns.ListByWindow: %w", err)
	}
	returns, err := scanReturns(rows)
	if err != nil {
		return nil, fmt.Errorf("returns.ListByWindow: %w", err)
	}
	return returns, nil
}

// List devuelve todas las devoluciones, más recientes primero.
func (r *ReturnRepo) List(ctx context.Context) ([]entity.Return, error) {
	const query = `
	SELECT ` + returnColumns + `
	FROM returns r
	JOIN suppliers s ON s.id = r.supplier_id
	ORDER BY r.date DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("returns.List: %w", err)
	}
	returns, err := scanReturns(rows)
	if err != nil {
		return nil, fmt.Errorf("returns.List: %w", err)
	}
	return returns, nil
}

// Create persiste una devolución.
func (r *ReturnRepo) Create(ctx context.Context, ret *entity.Return) error {
	const query = `
	INSERT INTO returns (id, supplier_id, date, category_name, price, quantity, reason, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		ret.ID, ret.SupplierID, ret.Date, ret.CategoryName,
		ret.Price, ret.Quantity, ret.Reason, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// Update modifica una devolución (el proveedor no se reasigna).
func (r *ReturnRepo) Update(ctx context.Context, ret *entity.Return) error {
	const query = `
	UPDATE returns SET date = $2, category_name = $3, price = $4, quantity = $5, reason = $6, updated_at = $7
	WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		ret.ID, ret.Date, ret.CategoryName, ret.Price, ret.Quantity, ret.Reason, ret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update return: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una devolución.
func (r *ReturnRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM returns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete return: %w", err)
	}
	return nil
}

func scanReturns(rows pgx.Rows) ([]entity.Return, error) {
	defer rows.Close()
	var returns []entity.Return
	for rows.Next() {
		var ret entity.Return
		if err := rows.Scan(
			&ret.ID, &ret.SupplierID, &ret.SupplierName, &ret.Date, &ret.CategoryName,
			&ret.Price, &ret.Quantity, &ret.Reason, &ret.CreatedAt, &ret.UpdatedAt,
		); err != nil {
			return nil, err
		}
		returns = append(returns, ret)
	}
	return returns, rows.Err()
}
