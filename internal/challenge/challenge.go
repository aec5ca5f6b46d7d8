// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

/*
Package challenge implements reading challenges.

A challenge is a shared goal ("read N books between two dates") that any
member may create and any member may join exactly once. Membership is a
(user, challenge) entry row guarded by a unique constraint.
*/
package challenge

import (
	"time"
)

// Challenge represents a shared reading goal.
type Challenge struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	GoalBooks int       `json:"goal_books"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry represents one member's participation in a challenge.
type Entry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ChallengeID string    `json:"challenge_id"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joined_at"`
	Challenge   Challenge `json:"challenge"`
}

// # Entry Status

const (
	// StatusInProgress is the initial state of every entry.
	StatusInProgress = "in_progress"
)

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldGoalBooks   = "goal_books"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldChallengeID = "challenge_id"
)

// MaxTitleLength bounds challenge titles.
const MaxTitleLength = 256
