package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"` // 1..5, also enforced by a CHECK constraint
	ReviewText *string   `json:"review_text"`
	ItemName   string    `json:"item_name,omitempty"` // denormalized display field, set on user listings only
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Comment struct {
	ID          int64     `json:"id"`
	ReviewID    int64     `json:"review_id"`
	UserID      int64     `json:"user_id"`
	CommentText string    `json:"comment_text"`
	ItemName    string    `json:"item_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SortOrder is the creation-time ordering for user listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder normalizes a query value, defaulting to newest first.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}
