package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/report"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `o.id, o.supplier_id, s.name, o.date, COALESCE(o.notes, ''), o.created_at, o.updated_at`

// ListByWindow devuelve los pedidos con fecha dentro de la ventana (extremos
// inclusivos), con líneas y nombre de proveedor expandidos. supplierID vacío
// o "all" desactiva el filtro de proveedor. El orden de los resultados no
// forma parte del contrato; el motor de reportes reordena donde importa.
func (r *OrderRepo) ListByWindow(ctx context.Context, window report.Window, supplierID string) ([]entity.Order, error) {
	const query = `
	SELECT ` + orderColumns + `
	FROM orders o
	JOIN suppliers s ON s.id = o.supplier_id
	WHERE o.date BETWEEN $1 AND $2
	  AND ($3::TEXT IS NULL OR o.supplier_id = $3)`

	rows, err := r.q.Query(ctx, query, window.Start, window.End, supplierFilterValue(supplierID))
	if err != nil {
		return nil, fmt.Errorf("orders.ListByWindow: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("orders.ListByWindow: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.ListByWindow items: %w", err)
	}
	return orders, nil
}

// GetByID obtiene un pedido con sus líneas; nil sin error si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	const query = `
	SELECT ` + orderColumns + `
	FROM orders o
	JOIN suppliers s ON s.id = o.supplier_id
	WHERE o.id = $1`

	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.SupplierName, &o.Date, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("orders.GetByID: %w", err)
	}
	orders := []entity.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.GetByID items: %w", err)
	}
	return &orders[0], nil
}

// List devuelve los pedidos más recientes primero.
func (r *OrderRepo) List(ctx context.Context, limit int) ([]entity.Order, error) {
	const query = `
	SELECT ` + orderColumns + `
	FROM orders o
	JOIN suppliers s ON s.id = o.supplier_id
	ORDER BY o.date DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("orders.List: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("orders.List: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.List items: %w", err)
	}
	return orders, nil
}

// Create persiste el pedido y sus líneas.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	const query = `
	INSERT INTO orders (id, supplier_id, date, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.Date, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.CreateItems(ctx, order.ID, order.Items)
}

// UpdateHeader actualiza proveedor, fecha y notas sin tocar las líneas.
func (r *OrderRepo) UpdateHeader(ctx context.Context, order *entity.Order) error {
	const query = `
	UPDATE orders SET supplier_id = $2, date = $3, notes = $4, updated_at = $5
	WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.Date, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// DeleteItems elimina todas las líneas del pedido.
func (r *OrderRepo) DeleteItems(ctx context.Context, orderID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// CreateItems inserta las líneas del pedido.
func (r *OrderRepo) CreateItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	const query = `
	INSERT INTO order_items (id, order_id, category_name, price, quantity, total)
	VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		if _, err := r.q.Exec(ctx, query,
			it.ID, orderID, it.CategoryName, it.Price, it.Quantity, it.Total,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// Delete elimina el pedido; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// attachItems carga en una sola consulta las líneas de todos los pedidos
// dados y las cuelga de su pedido.
func (r *OrderRepo) attachItems(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	index := make(map[string]*entity.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	const query = `
	SELECT id, order_id, category_name, price, quantity, total
	FROM order_items
	WHERE order_id = ANY($1)`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.CategoryName, &it.Price, &it.Quantity, &it.Total); err != nil {
			return err
		}
		if o, ok := index[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func scanOrders(rows pgx.Rows) ([]entity.Order, error) {
	defer rows.Close()
	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.SupplierName, &o.Date, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
