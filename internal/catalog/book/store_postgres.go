// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package book

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuminhdang/pagemark/internal/platform/apperr"
	"github.com/vuminhdang/pagemark/internal/platform/database/schema"
	"github.com/vuminhdang/pagemark/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// bookColumns is the canonical SELECT column list for catalog.book.
func bookColumns() string {
	t := schema.CatalogBook
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Title, t.Author, t.Slug, t.TotalPages, t.CoverURL, t.CreatedAt, t.UpdatedAt)
}

func scanBook(row interface{ Scan(...any) error }, book *Book) error {
	return row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Slug,
		&book.TotalPages,
		&book.CoverURL,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}

/*
Create persists a new book row into the catalog.book table.

Parameters:
  - context: context.Context
  - book: *Book (Entity to persist)

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	t := schema.CatalogBook
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.Table, bookColumns())

	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		book.ID,
		book.Title,
		book.Author,
		book.Slug,
		book.TotalPages,
		book.CoverURL,
		book.CreatedAt,
		book.UpdatedAt,
	)

	return dberr.Wrap(err, "book_create")
}

/*
FindByID retrieves a single book by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Book: The hydrated catalog entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Book, error) {
	t := schema.CatalogBook
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, bookColumns(), t.Table, t.ID)

	book := &Book{}
	if err := scanBook(repository.db.QueryRow(context, query, id), book); err != nil {
		return nil, dberr.Wrap(err, "book_find_by_id")
	}

	return book, nil
}

/*
List retrieves a page of catalog entries, newest first.

Description: Runs a windowed SELECT plus a COUNT so the HTTP layer can build
pagination metadata. UUIDv7 primary keys are time-ordered, so sorting by id
descending yields newest-first without a separate index on createdat.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Book: Page of catalog entities
  - int: Total row count across all pages
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Book, int, error) {
	t := schema.CatalogBook
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		bookColumns(), t.Table, t.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "book_list")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		book := &Book{}
		if err := scanBook(rows, book); err != nil {
			return nil, 0, dberr.Wrap(err, "book_scan")
		}
		books = append(books, book)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "book_count")
	}

	return books, total, nil
}

/*
Delete removes a book from the catalog.

Description: Relies on the ON DELETE CASCADE constraint to clean up any
reading progress rows referencing the book.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound when no row matched, or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.CatalogBook
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "book_delete")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}

	return nil
}
