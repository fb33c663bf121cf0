package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
	Update(ctx context.Context, s *models.Supplier) error
}

type supplierRepo struct {
	db DB
}

func NewSupplierRepository(db DB) SupplierRepository {
	return &supplierRepo{db: db}
}

const baseSelectSupplier = `
	SELECT id, user_id, company_name, description, contact_email, phone, address, verified, created_at, updated_at
	FROM suppliers
`

func scanSupplier(row pgx.Row) (*models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Description, &s.ContactEmail,
		&s.Phone, &s.Address, &s.Verified, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) Create(ctx context.Context, s *models.Supplier) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO suppliers (id, user_id, company_name, description, contact_email, phone, address, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`,
		s.ID, s.UserID, s.CompanyName, s.Description, s.ContactEmail, s.Phone, s.Address, s.Verified,
	)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return scanSupplier(r.db.QueryRow(ctx, baseSelectSupplier+" WHERE id = $1", id))
}

func (r *supplierRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Supplier, error) {
	return scanSupplier(r.db.QueryRow(ctx, baseSelectSupplier+" WHERE user_id = $1", userID))
}

func (r *supplierRepo) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.db.Query(ctx, baseSelectSupplier+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Description, &s.ContactEmail,
			&s.Phone, &s.Address, &s.Verified, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepo) Update(ctx context.Context, s *models.Supplier) error {
	_, err := r.db.Exec(ctx, `
		UPDATE suppliers
		SET company_name=$2, description=$3, contact_email=$4, phone=$5, address=$6, verified=$7, updated_at=NOW()
		WHERE id=$1
	`,
		s.ID, s.CompanyName, s.Description, s.ContactEmail, s.Phone, s.Address, s.Verified,
	)
	return err
}
