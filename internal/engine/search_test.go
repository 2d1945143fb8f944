package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"library-catalog/internal/engine"
	"library-catalog/internal/errs"
	"library-catalog/internal/model"
)

func seedCatalog(t *testing.T, e *engine.Engine) {
	t.Helper()
	ctx := context.Background()
	books := []model.Book{
		{ISBN: "111", Title: "Borges", Pages: 200, Quantity: 3, Authors: []string{"X"}},
		{ISBN: "222", Title: "Austen", Pages: 400, Quantity: 1, Authors: []string{"Y", "Z"}},
		{ISBN: "333", Title: "Calvino", Pages: 200, Quantity: 2, Authors: []string{"X"}},
	}
	for _, b := range books {
		require.NoError(t, e.AddBook(ctx, b))
	}
	users := []model.User{
		{Username: "bob", Name: "Bob", Phone: 200},
		{Username: "alice", Name: "Alice", Phone: 100},
	}
	for _, u := range users {
		require.NoError(t, e.AddUser(ctx, u))
	}
}

func TestEngine_FindBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	seedCatalog(t, e)

	byPages, err := e.FindBooks(ctx, "pages", []string{"200"})
	require.NoError(t, err)
	require.Len(t, byPages, 2)
	for _, p := range byPages {
		require.Equal(t, 200, p.Book.Pages)
		require.Equal(t, "X", p.Author)
	}

	byTitle, err := e.FindBooks(ctx, "title", []string{"Austen"})
	require.NoError(t, err)
	require.Len(t, byTitle, 2) // one pair per author
	require.ElementsMatch(t, []string{"Y", "Z"}, []string{byTitle[0].Author, byTitle[1].Author})

	// authors accepts several values, one membership probe each
	byAuthors, err := e.FindBooks(ctx, "authors", []string{"X", "Y"})
	require.NoError(t, err)
	require.Len(t, byAuthors, 3)

	none, err := e.FindBooks(ctx, "isbn", []string{"404"})
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = e.FindBooks(ctx, "color", []string{"red"})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.FindBooks(ctx, "title", []string{"a", "b"})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.FindBooks(ctx, "pages", []string{"many"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEngine_FindUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	seedCatalog(t, e)

	byName, err := e.FindUsers(ctx, "name", "Alice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "alice", byName[0].Username)

	byPhone, err := e.FindUsers(ctx, "phone", "200")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	require.Equal(t, "bob", byPhone[0].Username)

	_, err = e.FindUsers(ctx, "age", "30")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.FindUsers(ctx, "phone", "nope")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEngine_SortBooksBy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	seedCatalog(t, e)

	byTitle, err := e.SortBooksBy(ctx, "title")
	require.NoError(t, err)
	require.Len(t, byTitle, 4) // 111:X, 222:Y, 222:Z, 333:X
	titles := make([]string, 0, len(byTitle))
	for _, p := range byTitle {
		titles = append(titles, p.Book.Title)
	}
	require.Equal(t, []string{"Austen", "Austen", "Borges", "Calvino"}, titles)

	byQuantity, err := e.SortBooksBy(ctx, "quantity")
	require.NoError(t, err)
	require.Equal(t, 1, byQuantity[0].Book.Quantity)
	require.Equal(t, 3, byQuantity[len(byQuantity)-1].Book.Quantity)

	byAuthor, err := e.SortBooksBy(ctx, "authors")
	require.NoError(t, err)
	require.Equal(t, "X", byAuthor[0].Author)
	require.Equal(t, "Z", byAuthor[len(byAuthor)-1].Author)

	_, err = e.SortBooksBy(ctx, "color")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEngine_SortUsersBy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	seedCatalog(t, e)

	byUsername, err := e.SortUsersBy(ctx, "username")
	require.NoError(t, err)
	require.Equal(t, "alice", byUsername[0].Username)
	require.Equal(t, "bob", byUsername[1].Username)

	byPhone, err := e.SortUsersBy(ctx, "phone")
	require.NoError(t, err)
	require.Equal(t, 100, byPhone[0].Phone)
	require.Equal(t, 200, byPhone[1].Phone)

	_, err = e.SortUsersBy(ctx, "age")
	require.ErrorIs(t, err, errs.ErrValidation)
}
