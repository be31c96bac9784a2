package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chinedum/bookverse/data/dto"
	"github.com/chinedum/bookverse/internal/validator"
	"github.com/chinedum/bookverse/service"
)

// CreateComment godoc
// @Summary Create a new book comment
// @Description This endpoint creates a new comment with a rating for a book. A user may leave only one comment per book.
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book to comment on"
// @Param body body dto.CreateCommentRequestBody true "JSON payload required to create a book comment"
// @Success 201 {object} data.Comment
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/comments [post]
func (h *Handler) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCommentRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	comment, err := h.service.CreateComment(user.ID, bookID, user.Name, requestBody.Rating, requestBody.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		case errors.Is(err, service.ErrLockConflict):
			h.lockConflictResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/books/%d/comments/%d", bookID, comment.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"comment": comment}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowComment godoc
// @Summary Show details of a book comment
// @Description This endpoint shows the details of a specific book comment
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of commented book"
// @Param commentId path int true "ID of comment to show"
// @Success 200 {object} data.Comment
// @Failure 404
// @Failure 500
// @Router /v1/books/{bookId}/comments/{commentId} [get]
func (h *Handler) showCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil || commentID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	comment, err := h.service.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateComment godoc
// @Summary Update a book comment
// @Description This endpoint updates the rating and content of a specific book comment
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of commented book"
// @Param commentId path int true "ID of comment to update"
// @Param body body dto.UpdateCommentRequestBody true "JSON payload required to update a book comment"
// @Success 200 {object} data.Comment
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/comments/{commentId} [patch]
func (h *Handler) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateCommentRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	comment, err := h.service.UpdateComment(commentID, requestBody.Rating, requestBody.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		case errors.Is(err, service.ErrLockConflict):
			h.lockConflictResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteComment godoc
// @Summary Delete a book comment
// @Description This endpoint deletes a book comment and removes its rating from the book
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of commented book"
// @Param commentId path int true "ID of comment to delete"
// @Success 200
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /v1/books/{bookId}/comments/{commentId} [delete]
func (h *Handler) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrLockConflict):
			h.lockConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "comment deleted successfully"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListComments godoc
// @Summary List all comments for a book
// @Description This endpoint lists all comments for a book alongside the book's rating breakdown
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of commented book"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: id, rating, created_at. Desc: -id, -rating, -created_at"
// @Success 200 {array} data.Comment
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/comments [get]
func (h *Handler) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var qsInput dto.QsListComments
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "rating", "created_at", "-id", "-rating", "-created_at"}
	breakdown, comments, metadata, err := h.service.ListComments(bookID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"ratings": breakdown, "comments": comments, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
