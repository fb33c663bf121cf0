package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type CartRepository interface {
	Create(ctx context.Context, c *models.Cart) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, item *models.CartItem) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.CartItem, error)
	GetItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

type cartRepo struct {
	db DB
}

func NewCartRepository(db DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Create(ctx context.Context, c *models.Cart) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`, c.ID, c.UserID)
	return err
}

func (r *cartRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts WHERE user_id = $1
	`, userID)

	var c models.Cart
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.listItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

func (r *cartRepo) listItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, cart_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id = $1
		ORDER BY created_at
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *cartRepo) AddItem(ctx context.Context, item *models.CartItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`, item.ID, item.CartID, item.ProductID, item.Quantity)
	return err
}

func (r *cartRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*models.CartItem, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, cart_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE id = $1
	`, itemID)

	var it models.CartItem
	err := row.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *cartRepo) GetItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, cart_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)

	var it models.CartItem
	err := row.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *cartRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $2, updated_at = NOW() WHERE id = $1`,
		itemID, quantity,
	)
	return err
}

func (r *cartRepo) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	return err
}

func (r *cartRepo) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}
