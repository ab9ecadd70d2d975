package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ad-platform/internal/auth"
	"github.com/spec-kit/ad-platform/internal/domain"
)

// ownershipRepository resolves the owning user of a resource by walking its
// foreign-key chain in a single query per resource type.
type ownershipRepository struct {
	pool *pgxpool.Pool
}

// NewOwnershipRepository returns a Postgres-backed auth.OwnerStore.
func NewOwnershipRepository(pool *pgxpool.Pool) auth.OwnerStore {
	return &ownershipRepository{pool: pool}
}

func (r *ownershipRepository) LookupOwner(ctx context.Context, resourceType domain.ResourceType, resourceID int64) (int64, error) {
	var query string
	switch resourceType {
	case domain.ResourceUser:
		query = `SELECT id FROM users WHERE id=$1`
	case domain.ResourcePublisher:
		query = `SELECT user_id FROM publishers WHERE id=$1`
	case domain.ResourceAdvertiser:
		query = `SELECT user_id FROM advertisers WHERE id=$1`
	case domain.ResourceCampaign:
		query = `
            SELECT a.user_id
            FROM campaigns c
            JOIN advertisers a ON a.id = c.advertiser_id
            WHERE c.id=$1`
	case domain.ResourceAdZone:
		query = `
            SELECT p.user_id
            FROM ad_zones z
            JOIN sites s ON s.id = z.site_id
            JOIN publishers p ON p.id = s.publisher_id
            WHERE z.id=$1`
	default:
		return 0, fmt.Errorf("lookup owner: unsupported resource type %q", resourceType)
	}

	var ownerID int64
	if err := r.pool.QueryRow(ctx, query, resourceID).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, auth.ErrOwnerNotFound
		}
		return 0, err
	}
	return ownerID, nil
}
