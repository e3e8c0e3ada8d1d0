package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"reviewboard/internal/app"
	"reviewboard/internal/domain"
)

func seedItems(n int) *fakeItems {
	f := &fakeItems{avgs: map[int64]float64{}}
	// Newest first, as the store orders them.
	for i := n; i >= 1; i-- {
		f.items = append(f.items, domain.Item{ID: int64(i), Name: fmt.Sprintf("item %d", i)})
	}
	return f
}

func TestListItemsClampsQuery(t *testing.T) {
	repo := seedItems(5)
	svc := app.NewCatalogService(repo, &fakeCache{}, time.Minute)

	if _, err := svc.ListItems(context.Background(), 0, 1000); err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if repo.lastPQ.Page != 1 {
		t.Errorf("page 0 should clamp to 1, repo saw %d", repo.lastPQ.Page)
	}
	if repo.lastPQ.Limit != domain.MaxPageLimit {
		t.Errorf("limit 1000 should clamp to %d, repo saw %d", domain.MaxPageLimit, repo.lastPQ.Limit)
	}

	if _, err := svc.ListItems(context.Background(), -1, -1); err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if repo.lastPQ.Limit != domain.DefaultPageLimit {
		t.Errorf("negative limit should default to %d, repo saw %d", domain.DefaultPageLimit, repo.lastPQ.Limit)
	}
}

func TestListItemsPaging(t *testing.T) {
	svc := app.NewCatalogService(seedItems(25), &fakeCache{}, time.Minute)

	page, err := svc.ListItems(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if page.Total != 25 {
		t.Errorf("expected total 25, got %d", page.Total)
	}
	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	// Default ordering is newest first, so page 2 holds items 15..6.
	if page.Items[0].ID != 15 || page.Items[9].ID != 6 {
		t.Errorf("unexpected page window: first=%d last=%d", page.Items[0].ID, page.Items[9].ID)
	}
	if page.Page != 2 || page.Limit != 10 {
		t.Errorf("page metadata not echoed: %+v", page)
	}
}

func TestGetItem_CacheMissThenHit(t *testing.T) {
	repo := seedItems(1)
	cache := &fakeCache{}
	svc := app.NewCatalogService(repo, cache, 10*time.Minute)

	it, err := svc.GetItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if it.Name != "item 1" {
		t.Fatalf("unexpected item: %+v", it)
	}

	// Mutate repo to prove the second read comes from cache.
	repo.items[0].Name = "SHOULD NOT SEE THIS"

	it2, err := svc.GetItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if it2.Name != "item 1" {
		t.Fatalf("expected cached item, got %q", it2.Name)
	}
}

func TestGetItemNotFound(t *testing.T) {
	svc := app.NewCatalogService(seedItems(0), &fakeCache{}, time.Minute)
	if _, err := svc.GetItem(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecomputeItemEvictsCaches(t *testing.T) {
	repo := seedItems(1)
	repo.avgs[1] = 4.5
	cache := &fakeCache{}
	svc := app.NewRatingsService(repo, cache)

	avg, err := svc.RecomputeItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecomputeItem: %v", err)
	}
	if avg != 4.5 {
		t.Errorf("expected avg 4.5, got %v", avg)
	}

	want := map[string]bool{"item:1": false, "items:1:10": false}
	for _, k := range cache.dels {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected cache key %q to be evicted, deletes were %v", k, cache.dels)
		}
	}
}
