package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// AdvertiserRepository defines persistence access for advertiser profiles.
type AdvertiserRepository interface {
	Create(ctx context.Context, advertiser *domain.Advertiser) error
	Update(ctx context.Context, advertiser *domain.Advertiser) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Advertiser, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Advertiser, error)
}

type advertiserRepository struct {
	pool *pgxpool.Pool
}

// NewAdvertiserRepository returns a Postgres-backed implementation.
func NewAdvertiserRepository(pool *pgxpool.Pool) AdvertiserRepository {
	return &advertiserRepository{pool: pool}
}

func (r *advertiserRepository) Create(ctx context.Context, advertiser *domain.Advertiser) error {
	const query = `
        INSERT INTO advertisers (user_id, company_name, balance)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		advertiser.UserID,
		advertiser.CompanyName,
		advertiser.Balance,
	).Scan(&advertiser.ID, &advertiser.CreatedAt, &advertiser.UpdatedAt)
}

func (r *advertiserRepository) Update(ctx context.Context, advertiser *domain.Advertiser) error {
	const query = `
        UPDATE advertisers SET company_name=$1, balance=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, advertiser.CompanyName, advertiser.Balance, advertiser.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *advertiserRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM advertisers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *advertiserRepository) GetByID(ctx context.Context, id int64) (*domain.Advertiser, error) {
	const query = `
        SELECT id, user_id, company_name, balance, created_at, updated_at
        FROM advertisers WHERE id=$1`

	return scanAdvertiser(r.pool.QueryRow(ctx, query, id))
}

func (r *advertiserRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Advertiser, error) {
	const query = `
        SELECT id, user_id, company_name, balance, created_at, updated_at
        FROM advertisers WHERE user_id=$1`

	return scanAdvertiser(r.pool.QueryRow(ctx, query, userID))
}

func scanAdvertiser(row pgx.Row) (*domain.Advertiser, error) {
	var advertiser domain.Advertiser
	if err := row.Scan(
		&advertiser.ID,
		&advertiser.UserID,
		&advertiser.CompanyName,
		&advertiser.Balance,
		&advertiser.CreatedAt,
		&advertiser.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &advertiser, nil
}
