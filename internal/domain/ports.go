package domain

import "context"

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type ItemRepository interface {
	ListItems(ctx context.Context, pq PageQuery) (ItemPage, error)
	GetItem(ctx context.Context, id int64) (Item, error)

	// Ratings job paths
	ListItemIDs(ctx context.Context) ([]int64, error)
	RecomputeItemRating(ctx context.Context, id int64) (float64, error)
}

type ReviewRepository interface {
	ListReviewsByItem(ctx context.Context, itemID int64) ([]Review, error)
	ListReviewsByUser(ctx context.Context, userID int64, order SortOrder) ([]Review, error)
	CreateReview(ctx context.Context, itemID, userID int64, rating int, text *string) (Review, error)

	// Ownership-conditional mutations: a zero-row update/delete reports
	// ErrForbidden whether the row is missing or owned by someone else.
	UpdateReview(ctx context.Context, reviewID, userID int64, rating int, text *string) (Review, error)
	DeleteReview(ctx context.Context, reviewID, userID int64) (itemID int64, err error)
}

type CommentRepository interface {
	ListCommentsByReview(ctx context.Context, reviewID int64) ([]Comment, error)
	ListCommentsByUser(ctx context.Context, userID int64, order SortOrder) ([]Comment, error)
	CreateComment(ctx context.Context, reviewID, userID int64, text string) (Comment, error)
	UpdateComment(ctx context.Context, commentID, userID int64, text string) (Comment, error)
	DeleteComment(ctx context.Context, commentID, userID int64) (reviewID int64, err error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// TokenIssuer signs and verifies the stateless session tokens.
type TokenIssuer interface {
	Issue(id Identity) (string, error)
	Verify(token string) (Identity, error)
}
