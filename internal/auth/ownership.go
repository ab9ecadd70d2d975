package auth

import (
	"context"
	"errors"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// ErrOwnerNotFound signals that the ownership target does not exist. The
// resolver collapses it into a plain "no access" answer so callers cannot
// distinguish missing resources from resources owned by somebody else.
var ErrOwnerNotFound = errors.New("resource owner not found")

// OwnerStore resolves the owning user id for a resource, following the
// foreign-key chain of the resource type. Implementations return
// ErrOwnerNotFound when the resource does not exist.
type OwnerStore interface {
	LookupOwner(ctx context.Context, resourceType domain.ResourceType, resourceID int64) (int64, error)
}

// OwnershipResolver answers whether a subject may act on a specific resource.
type OwnershipResolver struct {
	store OwnerStore
}

// NewOwnershipResolver builds a resolver over the given store.
func NewOwnershipResolver(store OwnerStore) *OwnershipResolver {
	return &OwnershipResolver{store: store}
}

// CanAccess reports whether the subject owns the resource. Admins bypass
// ownership entirely. Unknown resource types and missing resources are
// denied, not errored; only store failures other than not-found propagate.
func (r *OwnershipResolver) CanAccess(ctx context.Context, subject domain.Subject, resourceType domain.ResourceType, resourceID int64) (bool, error) {
	if subject.IsAdmin() {
		return true, nil
	}

	switch resourceType {
	case domain.ResourceUser:
		return subject.ID == resourceID, nil
	case domain.ResourcePublisher, domain.ResourceAdvertiser, domain.ResourceCampaign, domain.ResourceAdZone:
		ownerID, err := r.store.LookupOwner(ctx, resourceType, resourceID)
		if err != nil {
			if errors.Is(err, ErrOwnerNotFound) {
				return false, nil
			}
			return false, err
		}
		return subject.ID == ownerID, nil
	default:
		// Closed world: anything outside the known set is denied.
		return false, nil
	}
}
