// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package challenge

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuminhdang/pagemark/internal/platform/apperr"
	"github.com/vuminhdang/pagemark/internal/platform/dberr"
)

// fakeRepository mimics the postgres constraints in memory.
type fakeRepository struct {
	challenges map[string]*Challenge
	entries    map[[2]string]*Entry // keyed by (userID, challengeID)
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		challenges: make(map[string]*Challenge),
		entries:    make(map[[2]string]*Entry),
	}
}

func (repo *fakeRepository) Create(_ context.Context, challenge *Challenge) error {
	repo.challenges[challenge.ID] = challenge
	return nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Challenge, error) {
	if challenge, ok := repo.challenges[id]; ok {
		return challenge, nil
	}
	return nil, apperr.NotFound("Challenge")
}

func (repo *fakeRepository) List(_ context.Context, limit, offset int) ([]*Challenge, int, error) {
	all := make([]*Challenge, 0, len(repo.challenges))
	for _, challenge := range repo.challenges {
		all = append(all, challenge)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := len(all)
	if offset >= total {
		return []*Challenge{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (repo *fakeRepository) Join(_ context.Context, entry *Entry) error {
	if _, ok := repo.challenges[entry.ChallengeID]; !ok {
		return apperr.NotFound("Challenge")
	}
	key := [2]string{entry.UserID, entry.ChallengeID}
	if _, ok := repo.entries[key]; ok {
		return dberr.ErrDuplicate
	}
	repo.entries[key] = entry
	return nil
}

func (repo *fakeRepository) ListEntriesByUser(_ context.Context, userID string, limit, offset int) ([]*Entry, int, error) {
	var mine []*Entry
	for key, entry := range repo.entries {
		if key[0] == userID {
			hydrated := *entry
			hydrated.Challenge = *repo.challenges[entry.ChallengeID]
			mine = append(mine, &hydrated)
		}
	}

	total := len(mine)
	if offset >= total {
		return []*Entry{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return mine[offset:end], total, nil
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

/*
TestCreateChallenge verifies the happy path and the date window rule.
*/
func TestCreateChallenge(t *testing.T) {
	service := NewService(newFakeRepository())

	challenge, err := service.Create(context.Background(), CreateInput{
		Title:     "Summer Reading",
		GoalBooks: 10,
		StartDate: date("2026-06-01"),
		EndDate:   date("2026-08-31"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, challenge.ID)
	assert.Equal(t, 10, challenge.GoalBooks)

	// A single-day challenge is valid (end == start)
	_, err = service.Create(context.Background(), CreateInput{
		Title:     "Readathon",
		GoalBooks: 1,
		StartDate: date("2026-06-01"),
		EndDate:   date("2026-06-01"),
	})
	assert.NoError(t, err)
}

/*
TestCreateChallenge_InvertedWindow verifies end-before-start is rejected.
*/
func TestCreateChallenge_InvertedWindow(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{
		Title:     "Backwards",
		GoalBooks: 3,
		StartDate: date("2026-08-31"),
		EndDate:   date("2026-06-01"),
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

/*
TestJoin verifies membership creation and the hydrated challenge on the entry.
*/
func TestJoin(t *testing.T) {
	service := NewService(newFakeRepository())

	challenge, err := service.Create(context.Background(), CreateInput{
		Title: "Summer Reading", GoalBooks: 10,
		StartDate: date("2026-06-01"), EndDate: date("2026-08-31"),
	})
	require.NoError(t, err)

	entry, err := service.Join(context.Background(), "user-1", challenge.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, entry.Status)
	assert.Equal(t, challenge.ID, entry.Challenge.ID)
	assert.Equal(t, "Summer Reading", entry.Challenge.Title)
}

/*
TestJoin_Twice verifies the second join maps to a 409 Conflict.
*/
func TestJoin_Twice(t *testing.T) {
	service := NewService(newFakeRepository())

	challenge, err := service.Create(context.Background(), CreateInput{
		Title: "Summer Reading", GoalBooks: 10,
		StartDate: date("2026-06-01"), EndDate: date("2026-08-31"),
	})
	require.NoError(t, err)

	_, err = service.Join(context.Background(), "user-1", challenge.ID)
	require.NoError(t, err)

	_, err = service.Join(context.Background(), "user-1", challenge.ID)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)

	// A different member can still join
	_, err = service.Join(context.Background(), "user-2", challenge.ID)
	assert.NoError(t, err)
}

/*
TestJoin_UnknownChallenge verifies a 404 for absent challenges.
*/
func TestJoin_UnknownChallenge(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Join(context.Background(), "user-1", "0190a1b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestMyEntries verifies entries are scoped to the requesting member.
*/
func TestMyEntries(t *testing.T) {
	service := NewService(newFakeRepository())

	challenge, err := service.Create(context.Background(), CreateInput{
		Title: "Summer Reading", GoalBooks: 10,
		StartDate: date("2026-06-01"), EndDate: date("2026-08-31"),
	})
	require.NoError(t, err)

	_, err = service.Join(context.Background(), "user-1", challenge.ID)
	require.NoError(t, err)
	_, err = service.Join(context.Background(), "user-2", challenge.ID)
	require.NoError(t, err)

	mine, total, err := service.MyEntries(context.Background(), "user-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].UserID)
	assert.Equal(t, "Summer Reading", mine[0].Challenge.Title)
}
