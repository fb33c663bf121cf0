package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type InventoryRepository interface {
	Create(ctx context.Context, inv *models.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	GetByProductAndShop(ctx context.Context, productID, shopID uuid.UUID) (*models.Inventory, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Inventory, error)
	Update(ctx context.Context, inv *models.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListLowStock returns rows whose available quantity has fallen to or
	// below the per-row low-stock threshold, optionally scoped to a shop.
	ListLowStock(ctx context.Context, shopID *uuid.UUID) ([]*models.Inventory, error)

	CreateTransaction(ctx context.Context, tx *models.InventoryTransaction) error
	ListTransactions(ctx context.Context, inventoryID uuid.UUID) ([]*models.InventoryTransaction, error)
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

const baseSelectInventory = `
	SELECT id, product_id, shop_id, quantity, reserved_quantity, low_stock_threshold,
	       reorder_point, max_stock, last_restocked_at, created_at, updated_at
	FROM inventory
`

func scanInventory(row pgx.Row) (*models.Inventory, error) {
	var inv models.Inventory
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.ShopID, &inv.Quantity, &inv.ReservedQuantity,
		&inv.LowStockThreshold, &inv.ReorderPoint, &inv.MaxStock,
		&inv.LastRestockedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func scanInventories(rows pgx.Rows) ([]*models.Inventory, error) {
	defer rows.Close()
	var items []*models.Inventory
	for rows.Next() {
		var inv models.Inventory
		if err := rows.Scan(
			&inv.ID, &inv.ProductID, &inv.ShopID, &inv.Quantity, &inv.ReservedQuantity,
			&inv.LowStockThreshold, &inv.ReorderPoint, &inv.MaxStock,
			&inv.LastRestockedAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &inv)
	}
	return items, rows.Err()
}

func (r *inventoryRepo) Create(ctx context.Context, inv *models.Inventory) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory (id, product_id, shop_id, quantity, reserved_quantity,
		                       low_stock_threshold, reorder_point, max_stock, last_restocked_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`,
		inv.ID, inv.ProductID, inv.ShopID, inv.Quantity, inv.ReservedQuantity,
		inv.LowStockThreshold, inv.ReorderPoint, inv.MaxStock, inv.LastRestockedAt,
	)
	return err
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	return scanInventory(r.db.QueryRow(ctx, baseSelectInventory+" WHERE id = $1", id))
}

func (r *inventoryRepo) GetByProductAndShop(ctx context.Context, productID, shopID uuid.UUID) (*models.Inventory, error) {
	return scanInventory(r.db.QueryRow(ctx,
		baseSelectInventory+" WHERE product_id = $1 AND shop_id = $2", productID, shopID))
}

func (r *inventoryRepo) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Inventory, error) {
	rows, err := r.db.Query(ctx, baseSelectInventory+" WHERE shop_id = $1 ORDER BY created_at DESC", shopID)
	if err != nil {
		return nil, err
	}
	return scanInventories(rows)
}

func (r *inventoryRepo) Update(ctx context.Context, inv *models.Inventory) error {
	_, err := r.db.Exec(ctx, `
		UPDATE inventory
		SET quantity=$2, reserved_quantity=$3, low_stock_threshold=$4,
		    reorder_point=$5, max_stock=$6, last_restocked_at=$7, updated_at=NOW()
		WHERE id=$1
	`,
		inv.ID, inv.Quantity, inv.ReservedQuantity, inv.LowStockThreshold,
		inv.ReorderPoint, inv.MaxStock, inv.LastRestockedAt,
	)
	return err
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	return err
}

func (r *inventoryRepo) ListLowStock(ctx context.Context, shopID *uuid.UUID) ([]*models.Inventory, error) {
	query := baseSelectInventory + " WHERE quantity - reserved_quantity <= low_stock_threshold"
	args := []interface{}{}
	if shopID != nil {
		query += " AND shop_id = $1"
		args = append(args, *shopID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanInventories(rows)
}

func (r *inventoryRepo) CreateTransaction(ctx context.Context, tx *models.InventoryTransaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_transactions (id, inventory_id, type, quantity, previous_quantity,
		                                    new_quantity, reason, reference_id, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`,
		tx.ID, tx.InventoryID, tx.Type, tx.Quantity, tx.PreviousQuantity,
		tx.NewQuantity, tx.Reason, tx.ReferenceID, tx.PerformedBy,
	)
	return err
}

func (r *inventoryRepo) ListTransactions(ctx context.Context, inventoryID uuid.UUID) ([]*models.InventoryTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, inventory_id, type, quantity, previous_quantity, new_quantity,
		       reason, reference_id, performed_by, created_at
		FROM inventory_transactions
		WHERE inventory_id = $1
		ORDER BY created_at DESC
	`, inventoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*models.InventoryTransaction
	for rows.Next() {
		var tx models.InventoryTransaction
		if err := rows.Scan(
			&tx.ID, &tx.InventoryID, &tx.Type, &tx.Quantity, &tx.PreviousQuantity,
			&tx.NewQuantity, &tx.Reason, &tx.ReferenceID, &tx.PerformedBy, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, &tx)
	}
	return txs, rows.Err()
}
