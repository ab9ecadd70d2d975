package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// CampaignRepository defines persistence access for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListByAdvertiser(ctx context.Context, advertiserID int64) ([]domain.Campaign, error)
}

type campaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a Postgres-backed implementation.
func NewCampaignRepository(pool *pgxpool.Pool) CampaignRepository {
	return &campaignRepository{pool: pool}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	const query = `
        INSERT INTO campaigns (advertiser_id, name, daily_budget, state)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		campaign.AdvertiserID,
		campaign.Name,
		campaign.DailyBudget,
		campaign.State,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	const query = `
        UPDATE campaigns SET name=$1, daily_budget=$2, state=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		campaign.Name,
		campaign.DailyBudget,
		campaign.State,
		campaign.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	const query = `
        SELECT id, advertiser_id, name, daily_budget, state, created_at, updated_at
        FROM campaigns WHERE id=$1`

	var campaign domain.Campaign
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.AdvertiserID,
		&campaign.Name,
		&campaign.DailyBudget,
		&campaign.State,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) ListByAdvertiser(ctx context.Context, advertiserID int64) ([]domain.Campaign, error) {
	const query = `
        SELECT id, advertiser_id, name, daily_budget, state, created_at, updated_at
        FROM campaigns WHERE advertiser_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, advertiserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		if err := rows.Scan(
			&campaign.ID,
			&campaign.AdvertiserID,
			&campaign.Name,
			&campaign.DailyBudget,
			&campaign.State,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}
