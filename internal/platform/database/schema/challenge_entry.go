// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package schema

// ChallengeEntryTable represents the 'challenge.entry' table
type ChallengeEntryTable struct {
	Table       string
	ID          string
	UserID      string
	ChallengeID string
	Status      string
	JoinedAt    string
}

// ChallengeEntry is the schema definition for challenge.entry
//
// A unique index over (userid, challengeid) enforces join-once semantics.
var ChallengeEntry = ChallengeEntryTable{
	Table:       "challenge.entry",
	ID:          "id",
	UserID:      "userid",
	ChallengeID: "challengeid",
	Status:      "status",
	JoinedAt:    "joinedat",
}
