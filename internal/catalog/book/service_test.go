// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package book

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuminhdang/pagemark/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository implementation.
type fakeRepository struct {
	books map[string]*Book
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[string]*Book)}
}

func (repo *fakeRepository) Create(_ context.Context, book *Book) error {
	repo.books[book.ID] = book
	return nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Book, error) {
	if book, ok := repo.books[id]; ok {
		return book, nil
	}
	return nil, apperr.NotFound("Book")
}

func (repo *fakeRepository) List(_ context.Context, limit, offset int) ([]*Book, int, error) {
	all := make([]*Book, 0, len(repo.books))
	for _, book := range repo.books {
		all = append(all, book)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := len(all)
	if offset >= total {
		return []*Book{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.books[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(repo.books, id)
	return nil
}

/*
TestCreate verifies slug derivation and ID assignment.
*/
func TestCreate(t *testing.T) {
	service := NewService(newFakeRepository())

	book, err := service.Create(context.Background(), CreateInput{
		Title:      "A Wizard of Earthsea",
		Author:     "Ursula K. Le Guin",
		TotalPages: 224,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "a-wizard-of-earthsea", book.Slug)
	assert.Equal(t, 224, book.TotalPages)
}

/*
TestGet_NotFound verifies unknown IDs map to a 404.
*/
func TestGet_NotFound(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Get(context.Background(), "0190a1b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestList verifies pagination slicing over the fake store.
*/
func TestList(t *testing.T) {
	service := NewService(newFakeRepository())

	for i := 0; i < 5; i++ {
		_, err := service.Create(context.Background(), CreateInput{
			Title:      "Book",
			Author:     "Author",
			TotalPages: 100,
		})
		require.NoError(t, err)
	}

	page, total, err := service.List(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	lastPage, _, err := service.List(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Len(t, lastPage, 1)
}

/*
TestDelete verifies removal and the 404 on repeat deletion.
*/
func TestDelete(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	book, err := service.Create(context.Background(), CreateInput{
		Title: "Dune", Author: "Frank Herbert", TotalPages: 412,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), book.ID))
	assert.Empty(t, repo.books)

	err = service.Delete(context.Background(), book.ID)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestResolveBook verifies the resolver contract used by the progress domain.
*/
func TestResolveBook(t *testing.T) {
	service := NewService(newFakeRepository())

	book, err := service.Create(context.Background(), CreateInput{
		Title: "Dune", Author: "Frank Herbert", TotalPages: 412,
	})
	require.NoError(t, err)

	assert.NoError(t, service.ResolveBook(context.Background(), book.ID))
	assert.Error(t, service.ResolveBook(context.Background(), "0190a1b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b"))
}
