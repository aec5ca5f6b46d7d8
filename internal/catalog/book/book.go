// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

/*
Package book implements the shared book catalog.

Books are global resources: any authenticated member may add one, and every
member tracks their own reading progress against the same catalog row.
*/
package book

import (
	"time"
)

// Book represents a single title in the shared catalog.
type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Slug       string    `json:"slug"`
	TotalPages int       `json:"total_pages"`
	CoverURL   string    `json:"cover_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTitle      = "title"
	FieldAuthor     = "author"
	FieldTotalPages = "total_pages"
	FieldCoverURL   = "cover_url"
	FieldID         = "id"
)

// # Validation Limits

const (
	MaxTitleLength  = 512
	MaxAuthorLength = 256
)
