package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reviewboard/internal/domain"
)

type CommentService struct {
	comments domain.CommentRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCommentService(comments domain.CommentRepository, cache domain.Cache, ttl time.Duration) *CommentService {
	return &CommentService{comments: comments, cache: cache, cacheTTL: ttl}
}

func (s *CommentService) ListByReview(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	key := reviewCommentsKey(reviewID)
	var out []domain.Comment
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	out, err := s.comments.ListCommentsByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *CommentService) ListByUser(ctx context.Context, userID int64, acting domain.Identity, order domain.SortOrder) ([]domain.Comment, error) {
	if acting.UserID != userID {
		return nil, fmt.Errorf("%w: cannot list another user's comments", domain.ErrForbidden)
	}
	return s.comments.ListCommentsByUser(ctx, userID, order)
}

func (s *CommentService) Create(ctx context.Context, reviewID int64, acting domain.Identity, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment_text is required", domain.ErrInvalid)
	}
	c, err := s.comments.CreateComment(ctx, reviewID, acting.UserID, text)
	if err != nil {
		return domain.Comment{}, err
	}
	_ = s.cache.Del(ctx, reviewCommentsKey(reviewID))
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, commentID int64, acting domain.Identity, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment_text is required", domain.ErrInvalid)
	}
	c, err := s.comments.UpdateComment(ctx, commentID, acting.UserID, text)
	if err != nil {
		return domain.Comment{}, err
	}
	_ = s.cache.Del(ctx, reviewCommentsKey(c.ReviewID))
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID int64, acting domain.Identity) error {
	reviewID, err := s.comments.DeleteComment(ctx, commentID, acting.UserID)
	if err != nil {
		return err
	}
	_ = s.cache.Del(ctx, reviewCommentsKey(reviewID))
	return nil
}

func reviewCommentsKey(reviewID int64) string { return fmt.Sprintf("comments:review:%d", reviewID) }
