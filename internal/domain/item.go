package domain

import "time"

type Item struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"image_url"`
	AverageRating float64   `json:"average_rating"` // maintained by cmd/ratings, never by the API
	CreatedAt     time.Time `json:"created_at"`
}

// PageQuery is a clamped page request. Build it with NewPageQuery so raw
// client values never reach the store.
type PageQuery struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// NewPageQuery applies defaults (page 1, limit 10) and clamps limit to
// MaxPageLimit. Zero and negative values fall back to the defaults.
func NewPageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

func (p PageQuery) Offset() int { return (p.Page - 1) * p.Limit }

type ItemPage struct {
	Items []Item `json:"items"`
	Total int64  `json:"total"`
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
}
