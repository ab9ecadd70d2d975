package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// fakeOwnerStore resolves owners from a fixed table keyed by resource type
// and id.
type fakeOwnerStore struct {
	owners map[domain.ResourceType]map[int64]int64
	err    error
}

func (f *fakeOwnerStore) LookupOwner(_ context.Context, resourceType domain.ResourceType, resourceID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	byID, ok := f.owners[resourceType]
	if !ok {
		return 0, ErrOwnerNotFound
	}
	ownerID, ok := byID[resourceID]
	if !ok {
		return 0, ErrOwnerNotFound
	}
	return ownerID, nil
}

var (
	publisherUser  = domain.Subject{ID: 10, Username: "pub", Role: domain.RolePublisher}
	advertiserUser = domain.Subject{ID: 20, Username: "adv", Role: domain.RoleAdvertiser}
	adminUser      = domain.Subject{ID: 1, Username: "root", Role: domain.RoleAdmin}
)

func newTestResolver() *OwnershipResolver {
	// Zone 5 sits on a site owned by publisher-user 10; campaign 7 belongs
	// to advertiser-user 20.
	return NewOwnershipResolver(&fakeOwnerStore{owners: map[domain.ResourceType]map[int64]int64{
		domain.ResourcePublisher:  {3: 10},
		domain.ResourceAdvertiser: {4: 20},
		domain.ResourceCampaign:   {7: 20},
		domain.ResourceAdZone:     {5: 10},
	}})
}

func TestCanAccessAdminBypass(t *testing.T) {
	resolver := newTestResolver()

	for _, resourceType := range []domain.ResourceType{
		domain.ResourceUser, domain.ResourcePublisher, domain.ResourceAdvertiser,
		domain.ResourceCampaign, domain.ResourceAdZone, domain.ResourceType("widget"),
	} {
		allowed, err := resolver.CanAccess(context.Background(), adminUser, resourceType, 999)
		if err != nil {
			t.Fatalf("%s: %v", resourceType, err)
		}
		if !allowed {
			t.Fatalf("admin must bypass ownership for %s", resourceType)
		}
	}
}

func TestCanAccessUserSelf(t *testing.T) {
	resolver := newTestResolver()

	allowed, err := resolver.CanAccess(context.Background(), publisherUser, domain.ResourceUser, 10)
	if err != nil || !allowed {
		t.Fatalf("self access: allowed=%v err=%v", allowed, err)
	}
	allowed, err = resolver.CanAccess(context.Background(), publisherUser, domain.ResourceUser, 11)
	if err != nil || allowed {
		t.Fatalf("other user access: allowed=%v err=%v", allowed, err)
	}
}

func TestCanAccessOwnershipChain(t *testing.T) {
	resolver := newTestResolver()
	ctx := context.Background()

	// Ad zone chain resolves to publisher-user 10.
	allowed, err := resolver.CanAccess(ctx, publisherUser, domain.ResourceAdZone, 5)
	if err != nil || !allowed {
		t.Fatalf("owner denied: allowed=%v err=%v", allowed, err)
	}
	allowed, err = resolver.CanAccess(ctx, advertiserUser, domain.ResourceAdZone, 5)
	if err != nil || allowed {
		t.Fatalf("non-owner allowed: allowed=%v err=%v", allowed, err)
	}

	// Campaign chain resolves to advertiser-user 20.
	allowed, err = resolver.CanAccess(ctx, advertiserUser, domain.ResourceCampaign, 7)
	if err != nil || !allowed {
		t.Fatalf("owner denied: allowed=%v err=%v", allowed, err)
	}
	allowed, err = resolver.CanAccess(ctx, publisherUser, domain.ResourceCampaign, 7)
	if err != nil || allowed {
		t.Fatalf("non-owner allowed: allowed=%v err=%v", allowed, err)
	}
}

func TestCanAccessMissingResource(t *testing.T) {
	resolver := newTestResolver()

	allowed, err := resolver.CanAccess(context.Background(), advertiserUser, domain.ResourceCampaign, 12345)
	if err != nil {
		t.Fatalf("missing resource must not error: %v", err)
	}
	if allowed {
		t.Fatal("missing resource must be denied")
	}
}

func TestCanAccessUnknownResourceType(t *testing.T) {
	resolver := newTestResolver()

	allowed, err := resolver.CanAccess(context.Background(), advertiserUser, domain.ResourceType("widget"), 1)
	if err != nil {
		t.Fatalf("unknown type must not error: %v", err)
	}
	if allowed {
		t.Fatal("unknown type must be denied")
	}
}

func TestCanAccessStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := NewOwnershipResolver(&fakeOwnerStore{err: storeErr})

	_, err := resolver.CanAccess(context.Background(), advertiserUser, domain.ResourceCampaign, 7)
	if !errors.Is(err, storeErr) {
		t.Fatalf("got %v, want store error", err)
	}
}
