// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package progress

import (
	"context"
)

// Repository defines persistence operations for reading progress.
type Repository interface {
	// Upsert atomically inserts or updates the progress row for (userID, bookID)
	// and returns the resulting row with its catalog summary attached.
	Upsert(ctx context.Context, userID, bookID string, currentPage int) (*Progress, error)

	// ListByUser returns a page of the member's progress rows, most recently
	// updated first, plus the total count.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Progress, int, error)
}
