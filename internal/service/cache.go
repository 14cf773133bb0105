// internal/service/cache.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/cache"
	"github.com/questdeckhq/questdeck/internal/model"
)

// CacheService holds the short-lived per-organization snapshots the
// visibility engine reads on every request: the organization record (policy,
// active flag) and the curated quest-id set. Entries expire on a short TTL
// and are invalidated eagerly whenever the underlying record is written, so a
// stale read is bounded to the TTL even if an invalidation is missed.
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)

	// Start the cleanup routine
	ctx := context.Background()
	c.StartCleanup(ctx)

	return &CacheService{
		cache: c,
	}
}

func orgKey(id uuid.UUID) string     { return "org:" + id.String() }
func curatedKey(id uuid.UUID) string { return "curated:" + id.String() }

func (s *CacheService) GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, bool) {
	value, found := s.cache.Get(ctx, orgKey(id))
	if !found {
		return nil, false
	}
	org, ok := value.(*model.Organization)
	return org, ok
}

func (s *CacheService) SetOrganization(ctx context.Context, org *model.Organization) {
	s.cache.Set(ctx, orgKey(org.ID), org)
}

func (s *CacheService) InvalidateOrganization(ctx context.Context, id uuid.UUID) {
	s.cache.Delete(ctx, orgKey(id))
}

func (s *CacheService) GetCuratedIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, bool) {
	value, found := s.cache.Get(ctx, curatedKey(orgID))
	if !found {
		return nil, false
	}
	ids, ok := value.([]uuid.UUID)
	return ids, ok
}

func (s *CacheService) SetCuratedIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) {
	s.cache.Set(ctx, curatedKey(orgID), ids)
}

func (s *CacheService) InvalidateCuratedIDs(ctx context.Context, orgID uuid.UUID) {
	s.cache.Delete(ctx, curatedKey(orgID))
}

// Close stops the cleanup routine
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}
