// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vuminhdang/pagemark/internal/platform/apperr"
	"github.com/vuminhdang/pagemark/internal/platform/dberr"
	"github.com/vuminhdang/pagemark/pkg/uuidv7"
)

// Service implements challenge use cases on top of [Repository].
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data required to open a new challenge.
type CreateInput struct {
	Title     string
	GoalBooks int
	StartDate time.Time
	EndDate   time.Time
}

/*
Create opens a new reading challenge.

Description: Validates the date window (a challenge may not end before it
starts) and persists the challenge with a time-sortable primary key.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Challenge: Created entity
  - error: Validation or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Challenge, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperr.ValidationError("End date must not precede start date")
	}

	challenge := &Challenge{
		ID:        uuidv7.New(),
		Title:     input.Title,
		GoalBooks: input.GoalBooks,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	if err := service.repository.Create(context, challenge); err != nil {
		return nil, fmt.Errorf("challenge_service_create_failed: %w", err)
	}

	return challenge, nil
}

/*
List returns a page of challenges plus the total count.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Challenge: Page of entities
  - int: Total count
  - error: Storage failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*Challenge, int, error) {
	return service.repository.List(context, limit, offset)
}

/*
Join enrolls the member in a challenge.

Description: Verifies the challenge exists for a clean 404, then inserts the
entry. The unique constraint is the source of truth for double joins: a
concurrent duplicate surfaces from the insert and maps to Conflict.

Parameters:
  - context: context.Context
  - userID: string
  - challengeID: string

Returns:
  - *Entry: The new membership entry with its challenge attached
  - error: apperr.NotFound, apperr.Conflict, or storage failures
*/
func (service *Service) Join(context context.Context, userID, challengeID string) (*Entry, error) {
	challenge, err := service.repository.FindByID(context, challengeID)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:          uuidv7.New(),
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      StatusInProgress,
	}

	if err := service.repository.Join(context, entry); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("Already joined this challenge")
		}
		return nil, fmt.Errorf("challenge_service_join_failed: %w", err)
	}

	entry.Challenge = *challenge
	return entry, nil
}

/*
MyEntries returns a page of the member's challenge entries.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Entry: Page of entries with embedded challenges
  - int: Total count for this member
  - error: Storage failures
*/
func (service *Service) MyEntries(context context.Context, userID string, limit, offset int) ([]*Entry, int, error) {
	return service.repository.ListEntriesByUser(context, userID, limit, offset)
}
