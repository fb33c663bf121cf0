package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type ShopRepository interface {
	Create(ctx context.Context, s *models.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*models.Shop, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Shop, error)
	List(ctx context.Context) ([]*models.Shop, error)
	Update(ctx context.Context, s *models.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopRepo struct {
	db DB
}

func NewShopRepository(db DB) ShopRepository {
	return &shopRepo{db: db}
}

const baseSelectShop = `
	SELECT id, owner_id, name, slug, description, logo_url, banner_url, status, created_at, updated_at
	FROM shops
`

func scanShop(row pgx.Row) (*models.Shop, error) {
	var s models.Shop
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Description,
		&s.LogoURL, &s.BannerURL, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func scanShops(rows pgx.Rows) ([]*models.Shop, error) {
	defer rows.Close()
	var shops []*models.Shop
	for rows.Next() {
		var s models.Shop
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Description,
			&s.LogoURL, &s.BannerURL, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		shops = append(shops, &s)
	}
	return shops, rows.Err()
}

func (r *shopRepo) Create(ctx context.Context, s *models.Shop) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shops (id, owner_id, name, slug, description, logo_url, banner_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`,
		s.ID, s.OwnerID, s.Name, s.Slug, s.Description, s.LogoURL, s.BannerURL, s.Status,
	)
	return err
}

func (r *shopRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	return scanShop(r.db.QueryRow(ctx, baseSelectShop+" WHERE id = $1", id))
}

func (r *shopRepo) GetBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	return scanShop(r.db.QueryRow(ctx, baseSelectShop+" WHERE slug = $1", slug))
}

func (r *shopRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Shop, error) {
	rows, err := r.db.Query(ctx, baseSelectShop+" WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *shopRepo) List(ctx context.Context) ([]*models.Shop, error) {
	rows, err := r.db.Query(ctx, baseSelectShop+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *shopRepo) Update(ctx context.Context, s *models.Shop) error {
	_, err := r.db.Exec(ctx, `
		UPDATE shops
		SET name=$2, slug=$3, description=$4, logo_url=$5, banner_url=$6, status=$7, updated_at=NOW()
		WHERE id=$1
	`,
		s.ID, s.Name, s.Slug, s.Description, s.LogoURL, s.BannerURL, s.Status,
	)
	return err
}

func (r *shopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	return err
}
