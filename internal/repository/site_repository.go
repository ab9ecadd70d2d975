package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// SiteRepository defines persistence access for publisher sites.
type SiteRepository interface {
	Create(ctx context.Context, site *domain.Site) error
	Update(ctx context.Context, site *domain.Site) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
	ListByPublisher(ctx context.Context, publisherID int64) ([]domain.Site, error)
}

type siteRepository struct {
	pool *pgxpool.Pool
}

// NewSiteRepository returns a Postgres-backed implementation.
func NewSiteRepository(pool *pgxpool.Pool) SiteRepository {
	return &siteRepository{pool: pool}
}

func (r *siteRepository) Create(ctx context.Context, site *domain.Site) error {
	const query = `
        INSERT INTO sites (publisher_id, domain, category)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		site.PublisherID,
		site.Domain,
		site.Category,
	).Scan(&site.ID, &site.CreatedAt, &site.UpdatedAt)
}

func (r *siteRepository) Update(ctx context.Context, site *domain.Site) error {
	const query = `
        UPDATE sites SET domain=$1, category=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, site.Domain, site.Category, site.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sites WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *siteRepository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	const query = `
        SELECT id, publisher_id, domain, category, created_at, updated_at
        FROM sites WHERE id=$1`

	var site domain.Site
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&site.ID,
		&site.PublisherID,
		&site.Domain,
		&site.Category,
		&site.CreatedAt,
		&site.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) ListByPublisher(ctx context.Context, publisherID int64) ([]domain.Site, error) {
	const query = `
        SELECT id, publisher_id, domain, category, created_at, updated_at
        FROM sites WHERE publisher_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, publisherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []domain.Site
	for rows.Next() {
		var site domain.Site
		if err := rows.Scan(
			&site.ID,
			&site.PublisherID,
			&site.Domain,
			&site.Category,
			&site.CreatedAt,
			&site.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}
