package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// PublisherRepository defines persistence access for publisher profiles.
type PublisherRepository interface {
	Create(ctx context.Context, publisher *domain.Publisher) error
	Update(ctx context.Context, publisher *domain.Publisher) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Publisher, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Publisher, error)
}

type publisherRepository struct {
	pool *pgxpool.Pool
}

// NewPublisherRepository returns a Postgres-backed implementation.
func NewPublisherRepository(pool *pgxpool.Pool) PublisherRepository {
	return &publisherRepository{pool: pool}
}

func (r *publisherRepository) Create(ctx context.Context, publisher *domain.Publisher) error {
	const query = `
        INSERT INTO publishers (user_id, company_name, payout_email)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		publisher.UserID,
		publisher.CompanyName,
		publisher.PayoutEmail,
	).Scan(&publisher.ID, &publisher.CreatedAt, &publisher.UpdatedAt)
}

func (r *publisherRepository) Update(ctx context.Context, publisher *domain.Publisher) error {
	const query = `
        UPDATE publishers SET company_name=$1, payout_email=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, publisher.CompanyName, publisher.PayoutEmail, publisher.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *publisherRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *publisherRepository) GetByID(ctx context.Context, id int64) (*domain.Publisher, error) {
	const query = `
        SELECT id, user_id, company_name, payout_email, created_at, updated_at
        FROM publishers WHERE id=$1`

	return scanPublisher(r.pool.QueryRow(ctx, query, id))
}

func (r *publisherRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Publisher, error) {
	const query = `
        SELECT id, user_id, company_name, payout_email, created_at, updated_at
        FROM publishers WHERE user_id=$1`

	return scanPublisher(r.pool.QueryRow(ctx, query, userID))
}

func scanPublisher(row pgx.Row) (*domain.Publisher, error) {
	var publisher domain.Publisher
	if err := row.Scan(
		&publisher.ID,
		&publisher.UserID,
		&publisher.CompanyName,
		&publisher.PayoutEmail,
		&publisher.CreatedAt,
		&publisher.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &publisher, nil
}
