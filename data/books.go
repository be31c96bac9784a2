package data

import (
	"time"

	"github.com/chinedum/bookverse/internal/validator"
)

const (
	ScopeCover = "cover"
	ScopeBook  = "book"
)

// Book defines a book model. The Aggregate fields are owned exclusively by
// the comment lifecycle operations; no other code path writes them.
type Book struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      []string  `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Language    string    `json:"language,omitempty"`
	Year        int32     `json:"year,omitempty"`
	CoverPath   string    `json:"cover_path,omitempty"`
	S3FileKey   string    `json:"s3_file_key"`
	Filename    string    `json:"filename"`
	Extension   string    `json:"extension"`
	Size        int64     `json:"size"`
	Aggregate
	Version int32 `json:"-"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) >= 4, "title", "must be at least four characters long")
	v.Check(len(book.Title) <= 500, "title", "must not be more than 500 bytes long")
	v.Check(len(book.Description) <= 5000, "description", "must not be more than 5000 bytes long")
	v.Check(len(book.Author) <= 4, "author", "must not contain more than 4 authors")
	v.Check(validator.Unique(book.Author), "author", "must not contain duplicate values")
	if book.Year != 0 {
		v.Check(book.Year >= 1900, "year", "must be greater than 1900")
		v.Check(book.Year <= int32(time.Now().Year()), "year", "must not be in the future")
	}
}
