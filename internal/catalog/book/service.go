// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package book

import (
	"context"
	"fmt"

	"github.com/vuminhdang/pagemark/pkg/slug"
	"github.com/vuminhdang/pagemark/pkg/uuidv7"
)

// Service implements catalog use cases on top of [Repository].
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data required to add a book to the catalog.
type CreateInput struct {
	Title      string
	Author     string
	TotalPages int
	CoverURL   string
}

/*
Create adds a new title to the shared catalog.

Description: Derives a URL-safe slug from the title and persists the book
with a time-sortable primary key.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Book: Created entity
  - error: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Book, error) {
	book := &Book{
		ID:         uuidv7.New(),
		Title:      input.Title,
		Author:     input.Author,
		Slug:       slug.From(input.Title),
		TotalPages: input.TotalPages,
		CoverURL:   input.CoverURL,
	}

	if err := service.repository.Create(context, book); err != nil {
		return nil, fmt.Errorf("book_service_create_failed: %w", err)
	}

	return book, nil
}

/*
Get retrieves a single book by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Book: Hydrated catalog entity
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Get(context context.Context, id string) (*Book, error) {
	return service.repository.FindByID(context, id)
}

/*
List returns a page of the catalog plus the total title count.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Book: Page of catalog entities
  - int: Total count
  - error: Storage failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*Book, int, error) {
	return service.repository.List(context, limit, offset)
}

/*
ResolveBook verifies that a book exists without returning it.

Description: Implements the resolver contract consumed by the progress
domain, keeping that package decoupled from catalog entities.

Parameters:
  - context: context.Context
  - bookID: string

Returns:
  - error: apperr.NotFound when the book is unknown
*/
func (service *Service) ResolveBook(context context.Context, bookID string) error {
	_, err := service.repository.FindByID(context, bookID)
	return err
}

/*
Delete removes a book from the catalog.

Description: Cascades to every member's reading progress for that book, since
progress rows are meaningless without their catalog entry.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	return service.repository.Delete(context, id)
}
