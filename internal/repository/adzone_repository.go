package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// AdZoneRepository defines persistence access for ad zones.
type AdZoneRepository interface {
	Create(ctx context.Context, zone *domain.AdZone) error
	Update(ctx context.Context, zone *domain.AdZone) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.AdZone, error)
	ListBySite(ctx context.Context, siteID int64) ([]domain.AdZone, error)
}

type adZoneRepository struct {
	pool *pgxpool.Pool
}

// NewAdZoneRepository returns a Postgres-backed implementation.
func NewAdZoneRepository(pool *pgxpool.Pool) AdZoneRepository {
	return &adZoneRepository{pool: pool}
}

func (r *adZoneRepository) Create(ctx context.Context, zone *domain.AdZone) error {
	const query = `
        INSERT INTO ad_zones (site_id, name, width, height)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		zone.SiteID,
		zone.Name,
		zone.Width,
		zone.Height,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
}

func (r *adZoneRepository) Update(ctx context.Context, zone *domain.AdZone) error {
	const query = `
        UPDATE ad_zones SET name=$1, width=$2, height=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, zone.Name, zone.Width, zone.Height, zone.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adZoneRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ad_zones WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adZoneRepository) GetByID(ctx context.Context, id int64) (*domain.AdZone, error) {
	const query = `
        SELECT id, site_id, name, width, height, created_at, updated_at
        FROM ad_zones WHERE id=$1`

	var zone domain.AdZone
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&zone.ID,
		&zone.SiteID,
		&zone.Name,
		&zone.Width,
		&zone.Height,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *adZoneRepository) ListBySite(ctx context.Context, siteID int64) ([]domain.AdZone, error) {
	const query = `
        SELECT id, site_id, name, width, height, created_at, updated_at
        FROM ad_zones WHERE site_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []domain.AdZone
	for rows.Next() {
		var zone domain.AdZone
		if err := rows.Scan(
			&zone.ID,
			&zone.SiteID,
			&zone.Name,
			&zone.Width,
			&zone.Height,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}
