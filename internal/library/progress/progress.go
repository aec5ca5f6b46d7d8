// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

/*
Package progress implements per-member reading progress.

Each (user, book) pair has at most one progress row, enforced by a unique
constraint. Writes are upserts, so recording progress is idempotent and safe
under concurrent submissions from multiple devices.
*/
package progress

import (
	"time"
)

// BookSummary is the denormalized catalog view embedded in progress rows.
type BookSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	TotalPages int    `json:"total_pages"`
}

// Progress represents one member's position in one book.
type Progress struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	BookID      string      `json:"book_id"`
	CurrentPage int         `json:"current_page"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Book        BookSummary `json:"book"`
}

// # Field Identifiers

const (
	FieldBookID      = "book_id"
	FieldCurrentPage = "current_page"
)
