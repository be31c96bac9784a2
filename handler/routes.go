package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/books", h.requireActivatedUser(h.listBooksHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books", h.requireAuthorRole(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.requireActivatedUser(h.showBookHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId", h.requireBookOwnerPermission(h.updateBookHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/books/:bookId", h.requireBookOwnerPermission(h.deleteBookHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId/cover", h.requireBookOwnerPermission(h.updateBookCoverHandler))

	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId/comments", h.requireActivatedUser(h.listCommentsHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/comments", h.requireActivatedUser(h.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId/comments/:commentId", h.requireActivatedUser(h.showCommentHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId/comments/:commentId", h.requireCommentOwnerPermission(h.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/books/:bookId/comments/:commentId", h.requireCommentOwnerPermission(h.deleteCommentHandler))

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/activated", h.activateUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/users/profile", h.requireActivatedUser(h.showUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/books", h.requireActivatedUser(h.listUserBooksHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/comments", h.requireActivatedUser(h.listUserCommentsHandler))

	router.HandlerFunc(http.MethodPost, "/v1/tokens/activation", h.createActivationTokenHandler)
	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
