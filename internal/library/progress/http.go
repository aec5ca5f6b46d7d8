// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vuminhdang/pagemark/internal/platform/request"
	"github.com/vuminhdang/pagemark/internal/platform/respond"
	"github.com/vuminhdang/pagemark/internal/platform/validate"
	"github.com/vuminhdang/pagemark/pkg/pagination"
)

// Handler implements reading progress HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the progress endpoints. All routes are
// scoped to the authenticated user; the gate is applied by the composition root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.setProgress)
	router.Get("/", handler.listProgress)

	return router
}

type setProgressRequest struct {
	BookID      string `json:"book_id"`
	CurrentPage int    `json:"current_page"`
}

/*
SetProgress records the caller's position in a book.

POST /api/v1/progress

Description: Upserts the (user, book) progress row. Repeating the request
is harmless; a different page overwrites the stored position.

Response:
  - 200: Progress: The resulting row with its book summary
  - 400: ErrInvalidJSON: Bad input or negative page
  - 404: ErrNotFound: Unknown book ID
*/
func (handler *Handler) setProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setProgressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBookID, input.BookID).
		UUID(FieldBookID, input.BookID).
		Min(FieldCurrentPage, input.CurrentPage, 0)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.SetProgress(request.Context(), userID, input.BookID, input.CurrentPage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
ListProgress returns the caller's reading shelf.

GET /api/v1/progress?page=&limit=

Response:
  - 200: []Progress with pagination metadata, newest activity first
*/
func (handler *Handler) listProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.Shelf(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
