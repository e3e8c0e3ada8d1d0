package app

import (
	"context"
	"fmt"
	"time"

	"reviewboard/internal/domain"
)

type CatalogService struct {
	items    domain.ItemRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(items domain.ItemRepository, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{items: items, cache: cache, cacheTTL: ttl}
}

// ListItems serves a clamped page of the catalog, newest first. Raw page and
// limit values come straight from the query string; NewPageQuery bounds them.
func (s *CatalogService) ListItems(ctx context.Context, page, limit int) (domain.ItemPage, error) {
	pq := domain.NewPageQuery(page, limit)
	key := itemsPageKey(pq.Page, pq.Limit)
	var out domain.ItemPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	out, err := s.items.ListItems(ctx, pq)
	if err != nil {
		return domain.ItemPage{}, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	key := itemKey(id)
	var it domain.Item
	if ok, _ := s.cache.Get(ctx, key, &it); ok {
		return it, nil
	}

	it, err := s.items.GetItem(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	_ = s.cache.Set(ctx, key, it, int(s.cacheTTL.Seconds()))
	return it, nil
}

func itemKey(id int64) string          { return fmt.Sprintf("item:%d", id) }
func itemsPageKey(page, limit int) string { return fmt.Sprintf("items:%d:%d", page, limit) }
