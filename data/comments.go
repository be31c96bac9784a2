package data

import (
	"time"

	"github.com/chinedum/bookverse/internal/validator"
)

// Comment defines a single user's review of a book. Each comment carries a
// rating between 1 and 5; at most one live comment exists per (book, user)
// pair.
type Comment struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Rating    int8      `json:"rating"`
	Content   string    `json:"content"`
	Version   int32     `json:"-"`
}

// RatingBreakdown is the per-star histogram returned alongside a book's
// comment list. Average and Total come from the book's stored aggregate, not
// from a rescan.
type RatingBreakdown struct {
	FiveStars  int64   `json:"fivestars"`
	FourStars  int64   `json:"fourstars"`
	ThreeStars int64   `json:"threestars"`
	TwoStars   int64   `json:"twostars"`
	OneStar    int64   `json:"onestar"`
	Average    float64 `json:"average"`
	Total      int64   `json:"total"`
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	v.Check(comment.Rating >= 1, "rating", "must be at least one")
	v.Check(comment.Rating <= 5, "rating", "must not be greater than five")
	v.Check(comment.Content != "", "content", "must be provided")
	v.Check(len(comment.Content) <= 5000, "content", "must not be more than 5000 bytes long")
}
