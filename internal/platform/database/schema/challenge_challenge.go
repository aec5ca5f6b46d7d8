// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package schema

// ChallengeTable represents the 'challenge.challenge' table
type ChallengeTable struct {
	Table     string
	ID        string
	Title     string
	GoalBooks string
	StartDate string
	EndDate   string
	CreatedAt string
}

// Challenge is the schema definition for challenge.challenge
var Challenge = ChallengeTable{
	Table:     "challenge.challenge",
	ID:        "id",
	Title:     "title",
	GoalBooks: "goalbooks",
	StartDate: "startdate",
	EndDate:   "enddate",
	CreatedAt: "createdat",
}
