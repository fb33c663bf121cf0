package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

type orderRepo struct {
	db DB
}

func NewOrderRepository(db DB) OrderRepository {
	return &orderRepo{db: db}
}

const baseSelectOrder = `
	SELECT id, user_id, shop_id, order_number, status, total, notes, created_at, updated_at
	FROM orders
`

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, shop_id, order_number, status, total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`,
		o.ID, o.UserID, o.ShopID, o.OrderNumber, o.Status, o.Total, o.Notes,
	)
	if err != nil {
		return err
	}

	for i := range o.Items {
		it := &o.Items[i]
		_, err = r.db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
		`,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	row := r.db.QueryRow(ctx, baseSelectOrder+" WHERE id = $1", id)

	var o models.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ShopID, &o.OrderNumber, &o.Status, &o.Total, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, total_price, created_at
		FROM order_items WHERE order_id = $1
		ORDER BY created_at
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepo) scanOrders(rows pgx.Rows) ([]*models.Order, error) {
	defer rows.Close()
	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ShopID, &o.OrderNumber, &o.Status, &o.Total, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, baseSelectOrder+" WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(rows)
}

func (r *orderRepo) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, baseSelectOrder+" WHERE shop_id = $1 ORDER BY created_at DESC", shopID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(rows)
}

func (r *orderRepo) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, baseSelectOrder+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return r.scanOrders(rows)
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	return err
}
