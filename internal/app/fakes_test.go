package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"reviewboard/internal/domain"
)

// ---- fakes ----

// fakeCache round-trips values through JSON so any cached type works, and
// records deletes for invalidation assertions.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakeUsers struct {
	seq  int64
	rows map[int64]domain.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[int64]domain.User{}} }

func (f *fakeUsers) CreateUser(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	for _, u := range f.rows {
		if u.Email == email || u.Username == username {
			return domain.User{}, fmt.Errorf("%w: duplicate user", domain.ErrConflict)
		}
	}
	f.seq++
	u := domain.User{ID: f.seq, Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.rows[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetUser(ctx context.Context, id int64) (domain.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// fakeItems keeps items pre-sorted newest first, matching the store's
// default ordering.
type fakeItems struct {
	items  []domain.Item
	lastPQ domain.PageQuery
	avgs   map[int64]float64
}

func (f *fakeItems) ListItems(ctx context.Context, pq domain.PageQuery) (domain.ItemPage, error) {
	f.lastPQ = pq
	out := domain.ItemPage{Items: []domain.Item{}, Total: int64(len(f.items)), Limit: pq.Limit, Page: pq.Page}
	lo := pq.Offset()
	for i := lo; i < len(f.items) && i < lo+pq.Limit; i++ {
		out.Items = append(out.Items, f.items[i])
	}
	return out, nil
}

func (f *fakeItems) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, domain.ErrNotFound
}

func (f *fakeItems) ListItemIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.items))
	for _, it := range f.items {
		ids = append(ids, it.ID)
	}
	return ids, nil
}

func (f *fakeItems) RecomputeItemRating(ctx context.Context, id int64) (float64, error) {
	return f.avgs[id], nil
}

type fakeReviews struct {
	seq  int64
	rows map[int64]domain.Review
}

func newFakeReviews() *fakeReviews { return &fakeReviews{rows: map[int64]domain.Review{}} }

func (f *fakeReviews) ListReviewsByItem(ctx context.Context, itemID int64) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, rv := range f.rows {
		if rv.ItemID == itemID {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeReviews) ListReviewsByUser(ctx context.Context, userID int64, order domain.SortOrder) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, rv := range f.rows {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if order == domain.SortAsc {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeReviews) CreateReview(ctx context.Context, itemID, userID int64, rating int, text *string) (domain.Review, error) {
	f.seq++
	now := time.Now()
	rv := domain.Review{ID: f.seq, ItemID: itemID, UserID: userID, Rating: rating, ReviewText: text, CreatedAt: now, UpdatedAt: now}
	f.rows[rv.ID] = rv
	return rv, nil
}

func (f *fakeReviews) UpdateReview(ctx context.Context, reviewID, userID int64, rating int, text *string) (domain.Review, error) {
	rv, ok := f.rows[reviewID]
	if !ok || rv.UserID != userID {
		return domain.Review{}, domain.ErrForbidden
	}
	rv.Rating = rating
	rv.ReviewText = text
	rv.UpdatedAt = time.Now()
	f.rows[reviewID] = rv
	return rv, nil
}

func (f *fakeReviews) DeleteReview(ctx context.Context, reviewID, userID int64) (int64, error) {
	rv, ok := f.rows[reviewID]
	if !ok || rv.UserID != userID {
		return 0, domain.ErrForbidden
	}
	delete(f.rows, reviewID)
	return rv.ItemID, nil
}

type fakeComments struct {
	seq  int64
	rows map[int64]domain.Comment
}

func newFakeComments() *fakeComments { return &fakeComments{rows: map[int64]domain.Comment{}} }

func (f *fakeComments) ListCommentsByReview(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for _, c := range f.rows {
		if c.ReviewID == reviewID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeComments) ListCommentsByUser(ctx context.Context, userID int64, order domain.SortOrder) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for _, c := range f.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if order == domain.SortAsc {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeComments) CreateComment(ctx context.Context, reviewID, userID int64, text string) (domain.Comment, error) {
	f.seq++
	now := time.Now()
	c := domain.Comment{ID: f.seq, ReviewID: reviewID, UserID: userID, CommentText: text, CreatedAt: now, UpdatedAt: now}
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakeComments) UpdateComment(ctx context.Context, commentID, userID int64, text string) (domain.Comment, error) {
	c, ok := f.rows[commentID]
	if !ok || c.UserID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}
	c.CommentText = text
	c.UpdatedAt = time.Now()
	f.rows[commentID] = c
	return c, nil
}

func (f *fakeComments) DeleteComment(ctx context.Context, commentID, userID int64) (int64, error) {
	c, ok := f.rows[commentID]
	if !ok || c.UserID != userID {
		return 0, domain.ErrForbidden
	}
	delete(f.rows, commentID)
	return c.ReviewID, nil
}

func ptr[T any](v T) *T { return &v }
