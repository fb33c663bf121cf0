package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepo struct {
	db DB
}

func NewProductRepository(db DB) ProductRepository {
	return &productRepo{db: db}
}

const baseSelectProduct = `
	SELECT id, shop_id, name, slug, description, price, compare_price, sku, stock_qty, status, created_at, updated_at
	FROM products
`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.ShopID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.ComparePrice, &p.SKU, &p.StockQty, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*models.Product, error) {
	defer rows.Close()
	var products []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.ShopID, &p.Name, &p.Slug, &p.Description, &p.Price,
			&p.ComparePrice, &p.SKU, &p.StockQty, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, shop_id, name, slug, description, price, compare_price, sku, stock_qty, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`,
		p.ID, p.ShopID, p.Name, p.Slug, p.Description, p.Price,
		p.ComparePrice, p.SKU, p.StockQty, p.Status,
	)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, baseSelectProduct+" WHERE id = $1", id))
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, baseSelectProduct+" WHERE sku = $1", sku))
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, baseSelectProduct+" WHERE slug = $1", slug))
}

func (r *productRepo) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, baseSelectProduct+" WHERE shop_id = $1 ORDER BY created_at DESC", shopID)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, baseSelectProduct+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET name=$2, slug=$3, description=$4, price=$5, compare_price=$6,
		    sku=$7, stock_qty=$8, status=$9, updated_at=NOW()
		WHERE id=$1
	`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.ComparePrice,
		p.SKU, p.StockQty, p.Status,
	)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
