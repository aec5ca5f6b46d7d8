// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table      string
	ID         string
	Title      string
	Author     string
	Slug       string
	TotalPages string
	CoverURL   string
	CreatedAt  string
	UpdatedAt  string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:      "catalog.book",
	ID:         "id",
	Title:      "title",
	Author:     "author",
	Slug:       "slug",
	TotalPages: "totalpages",
	CoverURL:   "coverurl",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
