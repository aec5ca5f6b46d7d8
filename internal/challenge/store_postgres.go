// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package challenge

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuminhdang/pagemark/internal/platform/database/schema"
	"github.com/vuminhdang/pagemark/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// challengeColumns is the canonical SELECT column list for challenge.challenge.
func challengeColumns() string {
	t := schema.Challenge
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		t.ID, t.Title, t.GoalBooks, t.StartDate, t.EndDate, t.CreatedAt)
}

func scanChallenge(row interface{ Scan(...any) error }, challenge *Challenge) error {
	return row.Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.GoalBooks,
		&challenge.StartDate,
		&challenge.EndDate,
		&challenge.CreatedAt,
	)
}

/*
Create persists a new challenge row into the challenge.challenge table.

Parameters:
  - context: context.Context
  - challenge: *Challenge (Entity to persist)

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, challenge *Challenge) error {
	t := schema.Challenge
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.Table, challengeColumns())

	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		challenge.ID,
		challenge.Title,
		challenge.GoalBooks,
		challenge.StartDate,
		challenge.EndDate,
		challenge.CreatedAt,
	)

	return dberr.Wrap(err, "challenge_create")
}

/*
FindByID retrieves a single challenge by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Challenge: The hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Challenge, error) {
	t := schema.Challenge
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, challengeColumns(), t.Table, t.ID)

	challenge := &Challenge{}
	if err := scanChallenge(repository.db.QueryRow(context, query, id), challenge); err != nil {
		return nil, dberr.Wrap(err, "challenge_find_by_id")
	}

	return challenge, nil
}

/*
List retrieves a page of challenges, newest first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Challenge: Page of entities
  - int: Total row count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Challenge, int, error) {
	t := schema.Challenge
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		challengeColumns(), t.Table, t.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "challenge_list")
	}
	defer rows.Close()

	challenges := make([]*Challenge, 0)
	for rows.Next() {
		challenge := &Challenge{}
		if err := scanChallenge(rows, challenge); err != nil {
			return nil, 0, dberr.Wrap(err, "challenge_scan")
		}
		challenges = append(challenges, challenge)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "challenge_count")
	}

	return challenges, total, nil
}

/*
Join inserts a membership entry for (user, challenge).

Description: A single INSERT guarded by the (userid, challengeid) unique
constraint, so two concurrent joins by the same member cannot both succeed:
the loser surfaces as dberr.ErrDuplicate. A foreign key violation maps to
NotFound, covering joins against a challenge deleted mid-flight.

Parameters:
  - context: context.Context
  - entry: *Entry

Returns:
  - error: dberr.ErrDuplicate, apperr.NotFound, or execution errors
*/
func (repository *PostgresRepository) Join(context context.Context, entry *Entry) error {
	t := schema.ChallengeEntry
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		t.Table, t.ID, t.UserID, t.ChallengeID, t.Status, t.JoinedAt)

	if entry.JoinedAt.IsZero() {
		entry.JoinedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		entry.ID,
		entry.UserID,
		entry.ChallengeID,
		entry.Status,
		entry.JoinedAt,
	)

	return dberr.Wrap(err, "challenge_join")
}

/*
ListEntriesByUser retrieves a page of the member's challenge entries.

Description: Joins each entry to its challenge so clients can render the
member's challenge list without per-row lookups.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Entry: Page of entries with embedded challenges
  - int: Total entry count for this member
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListEntriesByUser(context context.Context, userID string, limit, offset int) ([]*Entry, int, error) {
	t := schema.ChallengeEntry
	c := schema.Challenge
	query := fmt.Sprintf(`
		SELECT
			e.%s, e.%s, e.%s, e.%s, e.%s,
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s
		FROM %s e
		JOIN %s c ON c.%s = e.%s
		WHERE e.%s = $1
		ORDER BY e.%s DESC
		LIMIT $2 OFFSET $3`,
		t.ID, t.UserID, t.ChallengeID, t.Status, t.JoinedAt,
		c.ID, c.Title, c.GoalBooks, c.StartDate, c.EndDate, c.CreatedAt,
		t.Table,
		c.Table, c.ID, t.ChallengeID,
		t.UserID,
		t.JoinedAt)

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "entry_list")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ChallengeID,
			&entry.Status,
			&entry.JoinedAt,
			&entry.Challenge.ID,
			&entry.Challenge.Title,
			&entry.Challenge.GoalBooks,
			&entry.Challenge.StartDate,
			&entry.Challenge.EndDate,
			&entry.Challenge.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "entry_scan")
		}
		entries = append(entries, entry)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.UserID)
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "entry_count")
	}

	return entries, total, nil
}
