package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Review, error)
	Update(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepo struct {
	db DB
}

func NewReviewRepository(db DB) ReviewRepository {
	return &reviewRepo{db: db}
}

const baseSelectReview = `
	SELECT id, user_id, product_id, rating, title, comment, created_at, updated_at
	FROM reviews
`

func scanReview(row pgx.Row) (*models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Title, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepo) Create(ctx context.Context, rv *models.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, user_id, product_id, rating, title, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`,
		rv.ID, rv.UserID, rv.ProductID, rv.Rating, rv.Title, rv.Comment,
	)
	return err
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return scanReview(r.db.QueryRow(ctx, baseSelectReview+" WHERE id = $1", id))
}

func (r *reviewRepo) GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		baseSelectReview+" WHERE user_id = $1 AND product_id = $2", userID, productID))
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, baseSelectReview+" WHERE product_id = $1 ORDER BY created_at DESC", productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Title, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Update(ctx context.Context, rv *models.Review) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reviews SET rating=$2, title=$3, comment=$4, updated_at=NOW() WHERE id=$1
	`, rv.ID, rv.Rating, rv.Title, rv.Comment)
	return err
}

func (r *reviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}
