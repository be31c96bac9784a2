package dto

import "github.com/chinedum/bookverse/data"

// QsListBooks defines the query strings used for listing books.
type QsListBooks struct {
	Search  string
	Filters data.Filters
}

// UpdateBookRequestBody defines the request body for UpdateBook service. The fields are set
// to a pointer type to allow partial updates based on whether the value if set to nil.
type UpdateBookRequestBody struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Author      []string `json:"author"`
	Category    *string  `json:"category"`
	Language    *string  `json:"language"`
	Year        *int32   `json:"year"`
}

// QsListUserBooks defines query strings for ListUserBooks service.
type QsListUserBooks struct {
	Filters data.Filters
}
