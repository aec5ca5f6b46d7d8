// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package challenge

import (
	"context"
)

// Repository defines persistence operations for challenges and entries.
type Repository interface {
	// Create persists a new challenge.
	Create(ctx context.Context, challenge *Challenge) error

	// FindByID retrieves a challenge by primary key.
	FindByID(ctx context.Context, id string) (*Challenge, error)

	// List returns a page of challenges, newest first, plus the total count.
	List(ctx context.Context, limit, offset int) ([]*Challenge, int, error)

	// Join inserts an entry for (userID, challengeID).
	// Returns dberr.ErrDuplicate when the member has already joined, and
	// apperr.NotFound when the challenge does not exist.
	Join(ctx context.Context, entry *Entry) error

	// ListEntriesByUser returns a page of the member's entries with their
	// challenges attached, plus the total count.
	ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*Entry, int, error)
}
