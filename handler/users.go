package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chinedum/bookverse/data/dto"
	"github.com/chinedum/bookverse/internal/validator"
	"github.com/chinedum/bookverse/service"
)

// RegisterUser godoc
// @Summary Register a new user
// @Description This endpoint registers a new user as a reader or an author and sends an activation email
// @Tags users
// @Accept  json
// @Produce json
// @Param body body dto.RegisterUserRequestBody true "JSON payload required to register a user"
// @Success 202 {object} data.User
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /v1/users [post]
func (h *Handler) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.RegisterUser(requestBody.Name, requestBody.Email, requestBody.Password, requestBody.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/users/%d", user.ID))
	err = h.encodeJSON(w, http.StatusAccepted, envelope{"user": user}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ActivateUser godoc
// @Summary Activate a registered user
// @Description This endpoint activates a registered user via the token sent to the user's email
// @Tags users
// @Accept  json
// @Produce json
// @Param body body dto.ActivateUserRequestBody true "JSON payload required to activate a user"
// @Success 200 {object} data.User
// @Failure 400
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/users/activated [put]
func (h *Handler) activateUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.ActivateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.ActivateUser(requestBody.TokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Show user profile
// @Description This endpoint shows the profile of the authenticated user
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200 {object} data.User
// @Failure 404
// @Failure 500
// @Router /v1/users/profile [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	user, err := h.service.ShowUser(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListUserBooks godoc
// @Summary List books uploaded by the authenticated user
// @Description This endpoint lists all books uploaded by the authenticated user
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: id, title, created_at. Desc: -id, -title, -created_at"
// @Success 200 {array} data.Book
// @Failure 422
// @Failure 500
// @Router /v1/users/books [get]
func (h *Handler) listUserBooksHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	var qsInput dto.QsListUserBooks
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "title", "created_at", "-id", "-title", "-created_at"}
	books, metadata, err := h.service.ListUserBooks(user.ID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListUserComments godoc
// @Summary List comments left by the authenticated user
// @Description This endpoint lists all comments the authenticated user has left across all books
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: id, rating, created_at. Desc: -id, -rating, -created_at"
// @Success 200 {array} data.Comment
// @Failure 422
// @Failure 500
// @Router /v1/users/comments [get]
func (h *Handler) listUserCommentsHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	var qsInput dto.QsListUserComments
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "rating", "created_at", "-id", "-rating", "-created_at"}
	comments, metadata, err := h.service.ListUserComments(user.ID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comments": comments, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
