package app

import (
	"context"
	"fmt"
	"time"

	"reviewboard/internal/domain"
)

type ReviewService struct {
	reviews  domain.ReviewRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewReviewService(reviews domain.ReviewRepository, cache domain.Cache, ttl time.Duration) *ReviewService {
	return &ReviewService{reviews: reviews, cache: cache, cacheTTL: ttl}
}

func (s *ReviewService) ListByItem(ctx context.Context, itemID int64) ([]domain.Review, error) {
	key := itemReviewsKey(itemID)
	var out []domain.Review
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	out, err := s.reviews.ListReviewsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// ListByUser is self-only: the acting identity must be the listed user.
func (s *ReviewService) ListByUser(ctx context.Context, userID int64, acting domain.Identity, order domain.SortOrder) ([]domain.Review, error) {
	if acting.UserID != userID {
		return nil, fmt.Errorf("%w: cannot list another user's reviews", domain.ErrForbidden)
	}
	return s.reviews.ListReviewsByUser(ctx, userID, order)
}

func (s *ReviewService) Create(ctx context.Context, itemID int64, acting domain.Identity, rating int, text *string) (domain.Review, error) {
	if err := validateRating(rating); err != nil {
		return domain.Review{}, err
	}
	rv, err := s.reviews.CreateReview(ctx, itemID, acting.UserID, rating, text)
	if err != nil {
		return domain.Review{}, err
	}
	s.invalidateItem(ctx, itemID)
	return rv, nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID int64, acting domain.Identity, rating int, text *string) (domain.Review, error) {
	if err := validateRating(rating); err != nil {
		return domain.Review{}, err
	}
	rv, err := s.reviews.UpdateReview(ctx, reviewID, acting.UserID, rating, text)
	if err != nil {
		return domain.Review{}, err
	}
	s.invalidateItem(ctx, rv.ItemID)
	return rv, nil
}

// Delete is not idempotent: once the row is gone, a second delete reports
// ErrForbidden like any other zero-row mutation.
func (s *ReviewService) Delete(ctx context.Context, reviewID int64, acting domain.Identity) error {
	itemID, err := s.reviews.DeleteReview(ctx, reviewID, acting.UserID)
	if err != nil {
		return err
	}
	s.invalidateItem(ctx, itemID)
	return nil
}

func (s *ReviewService) invalidateItem(ctx context.Context, itemID int64) {
	_ = s.cache.Del(ctx, itemReviewsKey(itemID))
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalid)
	}
	return nil
}

func itemReviewsKey(itemID int64) string { return fmt.Sprintf("reviews:item:%d", itemID) }
