// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuminhdang/pagemark/internal/platform/database/schema"
	"github.com/vuminhdang/pagemark/internal/platform/dberr"
	"github.com/vuminhdang/pagemark/pkg/uuidv7"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Upsert records a member's position in a book.

Description: A single INSERT ... ON CONFLICT statement keyed on the
(userid, bookid) unique constraint, so two devices writing concurrently can
never produce duplicate rows: the second writer updates the first's row.
The freshly generated ID is only used on insert; on conflict the existing
row keeps its original ID.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - currentPage: int

Returns:
  - *Progress: The resulting row with catalog summary attached
  - error: apperr.NotFound when the book vanished mid-write, or execution errors
*/
func (repository *PostgresRepository) Upsert(context context.Context, userID, bookID string, currentPage int) (*Progress, error) {
	t := schema.LibraryReadingProgress
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s, %s)
		DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s, %s, %s, %s, %s`,
		t.Table, t.ID, t.UserID, t.BookID, t.CurrentPage, t.UpdatedAt,
		t.UserID, t.BookID,
		t.CurrentPage, t.CurrentPage, t.UpdatedAt, t.UpdatedAt,
		t.ID, t.UserID, t.BookID, t.CurrentPage, t.UpdatedAt)

	entry := &Progress{}
	err := repository.db.QueryRow(context, query,
		uuidv7.New(),
		userID,
		bookID,
		currentPage,
		time.Now(),
	).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.BookID,
		&entry.CurrentPage,
		&entry.UpdatedAt,
	)

	if err != nil {
		// A foreign key violation here means the book was deleted between the
		// service-level existence check and this write.
		return nil, dberr.Wrap(err, "progress_upsert")
	}

	// Hydrate the catalog summary in a second query. The row is already
	// committed, so a concurrent book delete cascades the progress row away
	// and this lookup surfaces NotFound.
	b := schema.CatalogBook
	bookQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		b.ID, b.Title, b.Author, b.TotalPages, b.Table, b.ID)

	err = repository.db.QueryRow(context, bookQuery, bookID).Scan(
		&entry.Book.ID,
		&entry.Book.Title,
		&entry.Book.Author,
		&entry.Book.TotalPages,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "progress_book_lookup")
	}

	return entry, nil
}

/*
ListByUser retrieves a page of the member's reading progress.

Description: Joins each progress row to its catalog entry so clients can
render the shelf without per-row lookups. Ordered by most recent activity.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Progress: Page of progress rows with embedded book summaries
  - int: Total row count for this member
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Progress, int, error) {
	t := schema.LibraryReadingProgress
	b := schema.CatalogBook
	query := fmt.Sprintf(`
		SELECT
			rp.%s, rp.%s, rp.%s, rp.%s, rp.%s,
			b.%s, b.%s, b.%s, b.%s
		FROM %s rp
		JOIN %s b ON b.%s = rp.%s
		WHERE rp.%s = $1
		ORDER BY rp.%s DESC
		LIMIT $2 OFFSET $3`,
		t.ID, t.UserID, t.BookID, t.CurrentPage, t.UpdatedAt,
		b.ID, b.Title, b.Author, b.TotalPages,
		t.Table,
		b.Table, b.ID, t.BookID,
		t.UserID,
		t.UpdatedAt)

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "progress_list")
	}
	defer rows.Close()

	entries := make([]*Progress, 0)
	for rows.Next() {
		entry := &Progress{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.BookID,
			&entry.CurrentPage,
			&entry.UpdatedAt,
			&entry.Book.ID,
			&entry.Book.Title,
			&entry.Book.Author,
			&entry.Book.TotalPages,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "progress_scan")
		}
		entries = append(entries, entry)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.UserID)
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "progress_count")
	}

	return entries, total, nil
}
