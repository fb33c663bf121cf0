package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type SupplierOrderRepository interface {
	Create(ctx context.Context, so *models.SupplierOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierOrder, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.SupplierOrder, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.SupplierOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SupplierOrderStatus) error
}

type supplierOrderRepo struct {
	db DB
}

func NewSupplierOrderRepository(db DB) SupplierOrderRepository {
	return &supplierOrderRepo{db: db}
}

const baseSelectSupplierOrder = `
	SELECT id, shop_id, supplier_id, order_number, status, total, notes, created_at, updated_at
	FROM supplier_orders
`

func (r *supplierOrderRepo) Create(ctx context.Context, so *models.SupplierOrder) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO supplier_orders (id, shop_id, supplier_id, order_number, status, total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`,
		so.ID, so.ShopID, so.SupplierID, so.OrderNumber, so.Status, so.Total, so.Notes,
	)
	if err != nil {
		return err
	}

	for i := range so.Items {
		it := &so.Items[i]
		_, err = r.db.Exec(ctx, `
			INSERT INTO supplier_order_items (id, supplier_order_id, product_id, quantity, unit_cost, total_cost, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
		`,
			it.ID, it.SupplierOrderID, it.ProductID, it.Quantity, it.UnitCost, it.TotalCost,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *supplierOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierOrder, error) {
	row := r.db.QueryRow(ctx, baseSelectSupplierOrder+" WHERE id = $1", id)

	var so models.SupplierOrder
	err := row.Scan(&so.ID, &so.ShopID, &so.SupplierID, &so.OrderNumber, &so.Status, &so.Total, &so.Notes, &so.CreatedAt, &so.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.listItems(ctx, so.ID)
	if err != nil {
		return nil, err
	}
	so.Items = items
	return &so, nil
}

func (r *supplierOrderRepo) listItems(ctx context.Context, supplierOrderID uuid.UUID) ([]models.SupplierOrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, supplier_order_id, product_id, quantity, unit_cost, total_cost, created_at
		FROM supplier_order_items WHERE supplier_order_id = $1
		ORDER BY created_at
	`, supplierOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.SupplierOrderItem
	for rows.Next() {
		var it models.SupplierOrderItem
		if err := rows.Scan(&it.ID, &it.SupplierOrderID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.TotalCost, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *supplierOrderRepo) scanOrders(rows pgx.Rows) ([]*models.SupplierOrder, error) {
	defer rows.Close()
	var orders []*models.SupplierOrder
	for rows.Next() {
		var so models.SupplierOrder
		if err := rows.Scan(&so.ID, &so.ShopID, &so.SupplierID, &so.OrderNumber, &so.Status, &so.Total, &so.Notes, &so.CreatedAt, &so.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &so)
	}
	return orders, rows.Err()
}

func (r *supplierOrderRepo) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.SupplierOrder, error) {
	rows, err := r.db.Query(ctx, baseSelectSupplierOrder+" WHERE shop_id = $1 ORDER BY created_at DESC", shopID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(rows)
}

func (r *supplierOrderRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.SupplierOrder, error) {
	rows, err := r.db.Query(ctx, baseSelectSupplierOrder+" WHERE supplier_id = $1 ORDER BY created_at DESC", supplierID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(rows)
}

func (r *supplierOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SupplierOrderStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE supplier_orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	return err
}
