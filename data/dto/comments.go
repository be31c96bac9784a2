package dto

import "github.com/chinedum/bookverse/data"

// CreateCommentRequestBody defines a request body for CreateComment service.
type CreateCommentRequestBody struct {
	Rating  int8   `json:"rating"`
	Content string `json:"content"`
}

// UpdateCommentRequestBody defines a request body for UpdateComment service.
type UpdateCommentRequestBody struct {
	Rating  *int8   `json:"rating"`
	Content *string `json:"content"`
}

// QsListComments defines the query strings used for listing comments.
type QsListComments struct {
	Filters data.Filters
}
