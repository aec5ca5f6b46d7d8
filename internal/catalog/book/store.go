// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package book

import (
	"context"
)

// Repository defines persistence operations for the book catalog.
type Repository interface {
	// Create persists a new book row.
	Create(ctx context.Context, book *Book) error

	// FindByID retrieves a book by primary key.
	FindByID(ctx context.Context, id string) (*Book, error)

	// List returns a page of books ordered by creation time, plus the total count.
	List(ctx context.Context, limit, offset int) ([]*Book, int, error)

	// Delete removes a book by ID. Progress rows referencing it are removed by
	// the database cascade. Returns apperr.NotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
