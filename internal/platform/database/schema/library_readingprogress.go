// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package schema

// LibraryReadingProgressTable represents the 'library.readingprogress' table
type LibraryReadingProgressTable struct {
	Table       string
	ID          string
	UserID      string
	BookID      string
	CurrentPage string
	UpdatedAt   string
}

// LibraryReadingProgress is the schema definition for library.readingprogress
//
// A unique index over (userid, bookid) backs the upsert-on-write semantics.
var LibraryReadingProgress = LibraryReadingProgressTable{
	Table:       "library.readingprogress",
	ID:          "id",
	UserID:      "userid",
	BookID:      "bookid",
	CurrentPage: "currentpage",
	UpdatedAt:   "updatedat",
}
