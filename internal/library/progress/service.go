// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package progress

import (
	"context"
	"fmt"
)

// BookResolver is the catalog dependency used to verify a book exists
// before recording progress against it.
type BookResolver interface {
	// ResolveBook returns apperr.NotFound when the book does not exist.
	ResolveBook(ctx context.Context, bookID string) error
}

// Service implements reading progress use cases.
type Service struct {
	repository   Repository
	bookResolver BookResolver
}

// NewService constructs a new [Service].
func NewService(repository Repository, bookResolver BookResolver) *Service {
	return &Service{
		repository:   repository,
		bookResolver: bookResolver,
	}
}

/*
SetProgress records the member's current page in a book.

Description: Idempotent upsert keyed on (user, book). Submitting the same
payload twice yields the same row; submitting a new page for an existing
pair overwrites the stored position, including moves backward (re-reading
is a legitimate state).

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - currentPage: int

Returns:
  - *Progress: Resulting row with embedded book summary
  - error: apperr.NotFound when the book is unknown, or storage failures
*/
func (service *Service) SetProgress(context context.Context, userID, bookID string, currentPage int) (*Progress, error) {

	// Reject progress against unknown books up front for a clean 404. The
	// foreign key constraint remains the backstop for races with deletes.
	if err := service.bookResolver.ResolveBook(context, bookID); err != nil {
		return nil, err
	}

	entry, err := service.repository.Upsert(context, userID, bookID, currentPage)
	if err != nil {
		return nil, fmt.Errorf("progress_service_set_failed: %w", err)
	}

	return entry, nil
}

/*
Shelf returns a page of the member's reading progress, newest activity first.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Progress: Page of progress rows
  - int: Total count for this member
  - error: Storage failures
*/
func (service *Service) Shelf(context context.Context, userID string, limit, offset int) ([]*Progress, int, error) {
	return service.repository.ListByUser(context, userID, limit, offset)
}
