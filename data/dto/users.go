package dto

import "github.com/chinedum/bookverse/data"

// RegisterUserRequestBody defines a request body for RegisterUser service.
type RegisterUserRequestBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ActivateUserRequestBody defines a request body for ActivateUser service.
type ActivateUserRequestBody struct {
	TokenPlaintext string `json:"token"`
}

// QsListUserComments defines query strings for ListUserComments service.
type QsListUserComments struct {
	Filters data.Filters
}
