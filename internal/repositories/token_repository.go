package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

// TokenRepository manages stored refresh-token records. Revocation flips
// is_revoked and keeps the row; only the expiry sweep deletes rows.
type TokenRepository interface {
	Create(ctx context.Context, rt *models.RefreshToken) error

	// GetByIDAndUser scopes the lookup to the owning user so one user
	// cannot act on another's session by guessing an id.
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.RefreshToken, error)

	// ListActiveByUser returns non-revoked records, newest first.
	// Naturally expired rows are still included; the service filters them.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.RefreshToken, error)

	// RevokeIfActive atomically flips is_revoked and reports whether this
	// call was the one that flipped it. A false return means the record
	// was already revoked or absent.
	RevokeIfActive(ctx context.Context, id, userID uuid.UUID) (bool, error)

	// Revoke flips is_revoked unconditionally (idempotent).
	Revoke(ctx context.Context, id, userID uuid.UUID) error

	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes rows past expires_at and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepo struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepo{db: db}
}

const baseSelectToken = `
	SELECT id, user_id, token, expires_at, is_revoked, device_info, ip_address, created_at
	FROM refresh_tokens
`

func (r *tokenRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, is_revoked, device_info, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`,
		rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.IsRevoked,
		rt.DeviceInfo, rt.IPAddress,
	)
	return err
}

func (r *tokenRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.RefreshToken, error) {
	row := r.db.QueryRow(ctx, baseSelectToken+" WHERE id = $1 AND user_id = $2", id, userID)

	var rt models.RefreshToken
	err := row.Scan(
		&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.IsRevoked,
		&rt.DeviceInfo, &rt.IPAddress, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *tokenRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.RefreshToken, error) {
	rows, err := r.db.Query(ctx,
		baseSelectToken+" WHERE user_id = $1 AND is_revoked = FALSE ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []*models.RefreshToken
	for rows.Next() {
		var rt models.RefreshToken
		if err := rows.Scan(
			&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.IsRevoked,
			&rt.DeviceInfo, &rt.IPAddress, &rt.CreatedAt,
		); err != nil {
			return nil, err
		}
		tokens = append(tokens, &rt)
	}
	return tokens, rows.Err()
}

func (r *tokenRepo) RevokeIfActive(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = TRUE WHERE id = $1 AND user_id = $2 AND is_revoked = FALSE`,
		id, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *tokenRepo) Revoke(ctx context.Context, id, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return err
}

func (r *tokenRepo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = TRUE WHERE user_id = $1 AND is_revoked = FALSE`,
		userID,
	)
	return err
}

func (r *tokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
