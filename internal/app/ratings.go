package app

import (
	"context"

	"reviewboard/internal/domain"
)

// RatingsService owns the denormalized items.average_rating column. The API
// never recomputes it; cmd/ratings runs this as a batch job.
type RatingsService struct {
	items domain.ItemRepository
	cache domain.Cache
}

func NewRatingsService(items domain.ItemRepository, cache domain.Cache) *RatingsService {
	return &RatingsService{items: items, cache: cache}
}

func (s *RatingsService) ItemIDs(ctx context.Context) ([]int64, error) {
	return s.items.ListItemIDs(ctx)
}

// RecomputeItem refreshes one item's average and evicts its caches so the API
// stops serving the stale aggregate.
func (s *RatingsService) RecomputeItem(ctx context.Context, id int64) (float64, error) {
	avg, err := s.items.RecomputeItemRating(ctx, id)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, itemKey(id))
		// Listing pages embed the average too. Evict the first few pages at
		// the default limit; deeper pages expire by TTL.
		for page := 1; page <= 3; page++ {
			_ = s.cache.Del(ctx, itemsPageKey(page, domain.DefaultPageLimit))
		}
	}
	return avg, nil
}
