// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vuminhdang/pagemark/internal/platform/request"
	"github.com/vuminhdang/pagemark/internal/platform/respond"
	"github.com/vuminhdang/pagemark/internal/platform/validate"
	"github.com/vuminhdang/pagemark/pkg/pagination"
)

// Handler implements catalog HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints. All routes
// require an authenticated user; the gate is applied by the composition root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createBook)
	router.Get("/", handler.listBooks)
	router.Get("/{id}", handler.getBook)
	router.Delete("/{id}", handler.deleteBook)

	return router
}

type createBookRequest struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	TotalPages int    `json:"total_pages"`
	CoverURL   string `json:"cover_url"`
}

/*
CreateBook adds a title to the shared catalog.

POST /api/v1/books

Response:
  - 201: Book: Created catalog entry
  - 400: ErrInvalidJSON: Bad input or validation failure
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input createBookRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Required(FieldAuthor, input.Author).
		MaxLen(FieldAuthor, input.Author, MaxAuthorLength).
		Min(FieldTotalPages, input.TotalPages, 1)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Create(request.Context(), CreateInput{
		Title:      input.Title,
		Author:     input.Author,
		TotalPages: input.TotalPages,
		CoverURL:   input.CoverURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, book)
}

/*
ListBooks returns a page of the catalog.

GET /api/v1/books?page=&limit=

Response:
  - 200: []Book with pagination metadata
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	books, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GetBook returns a single catalog entry.

GET /api/v1/books/{id}

Response:
  - 200: Book
  - 404: ErrNotFound: Unknown book ID
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, FieldID)

	validator := &validate.Validator{}
	validator.UUID(FieldID, bookID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Get(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

/*
DeleteBook removes a catalog entry and every member's progress against it.

DELETE /api/v1/books/{id}

Response:
  - 204: No Content
  - 404: ErrNotFound: Unknown book ID
*/
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, FieldID)

	validator := &validate.Validator{}
	validator.UUID(FieldID, bookID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
