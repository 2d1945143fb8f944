package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-catalog/internal/engine"
	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	"library-catalog/internal/store/memory"
)

func testLogger() *zap.Logger {
	return zap.NewExample().Named("test")
}

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	return engine.New(memory.New(), testLogger(), opts...)
}

func addBook(t *testing.T, e *engine.Engine, isbn string, quantity int, authors ...string) {
	t.Helper()
	require.NoError(t, e.AddBook(context.Background(), model.Book{
		ISBN:     isbn,
		Title:    "title-" + isbn,
		Pages:    100,
		Quantity: quantity,
		Authors:  authors,
	}))
}

func addUser(t *testing.T, e *engine.Engine, username string) {
	t.Helper()
	require.NoError(t, e.AddUser(context.Background(), model.User{
		Username: username,
		Name:     "name-" + username,
		Phone:    89991112233,
	}))
}

func TestEngine_AddBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)

	require.NoError(t, e.AddBook(ctx, model.Book{
		ISBN: "111", Title: "Go", Pages: 300, Quantity: 2, Authors: []string{"Donovan", "Kernighan"},
	}))

	book, err := e.GetBook(ctx, "111")
	require.NoError(t, err)
	require.Equal(t, "Go", book.Title)
	require.Equal(t, 2, book.Quantity)
	require.ElementsMatch(t, []string{"Donovan", "Kernighan"}, book.Authors)

	err = e.AddBook(ctx, model.Book{ISBN: "111", Title: "dup", Pages: 1, Quantity: 0})
	require.True(t, errs.IsStore(err))
}

func TestEngine_AddBook_SharedAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)

	addBook(t, e, "111", 1, "Knuth")
	addBook(t, e, "222", 1, "Knuth")

	pairs, err := e.FindBooks(ctx, "authors", []string{"Knuth"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
}

func TestEngine_AddBook_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)

	tests := []struct {
		name string
		book model.Book
	}{
		{name: "missing isbn", book: model.Book{Title: "t", Pages: 1, Quantity: 1}},
		{name: "missing title", book: model.Book{ISBN: "1", Pages: 1, Quantity: 1}},
		{name: "zero pages", book: model.Book{ISBN: "1", Title: "t", Quantity: 1}},
		{name: "negative quantity", book: model.Book{ISBN: "1", Title: "t", Pages: 1, Quantity: -1}},
		{name: "empty author name", book: model.Book{ISBN: "1", Title: "t", Pages: 1, Quantity: 1, Authors: []string{""}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := e.AddBook(ctx, tt.book)
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestEngine_GetBook_NotFound(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	_, err := e.GetBook(context.Background(), "404")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Contains(t, err.Error(), "isbn=404")
}

func TestEngine_EditBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	addBook(t, e, "111", 2, "Old")

	require.NoError(t, e.EditBook(ctx, "111", "title", []string{"New Title"}))
	require.NoError(t, e.EditBook(ctx, "111", "pages", []string{"512"}))

	book, err := e.GetBook(ctx, "111")
	require.NoError(t, err)
	require.Equal(t, "New Title", book.Title)
	require.Equal(t, 512, book.Pages)

	err = e.EditBook(ctx, "111", "pages", []string{"twelve"})
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditBook(ctx, "111", "pages", []string{"-1"})
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditBook(ctx, "111", "title", []string{"a", "b"})
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditBook(ctx, "111", "isbn", []string{"222"})
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditBook(ctx, "404", "title", []string{"x"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEngine_EditBook_Authors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)

	// B stays shared, A becomes orphaned and is cleaned up, C is created
	addBook(t, e, "111", 1, "A", "B")
	addBook(t, e, "222", 1, "B")

	require.NoError(t, e.EditBook(ctx, "111", "authors", []string{"B", "C"}))

	book, err := e.GetBook(ctx, "111")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"B", "C"}, book.Authors)

	gone, err := e.FindBooks(ctx, "authors", []string{"A"})
	require.NoError(t, err)
	require.Empty(t, gone)

	shared, err := e.FindBooks(ctx, "authors", []string{"B"})
	require.NoError(t, err)
	require.Len(t, shared, 2)
}

func TestEngine_AddUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)

	require.NoError(t, e.AddUser(ctx, model.User{Username: "alice", Name: "Alice", Phone: 5551234}))

	user, err := e.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, 5551234, user.Phone)

	err = e.AddUser(ctx, model.User{Username: "alice", Name: "dup", Phone: 1})
	require.True(t, errs.IsStore(err))

	err = e.AddUser(ctx, model.User{Username: "bob", Name: "Bob"})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = e.GetUser(ctx, "nobody")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEngine_EditUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t)
	addUser(t, e, "alice")

	require.NoError(t, e.EditUser(ctx, "alice", "name", "Alice Cooper"))
	require.NoError(t, e.EditUser(ctx, "alice", "phone", "5550000"))

	user, err := e.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", user.Name)
	require.Equal(t, 5550000, user.Phone)

	err = e.EditUser(ctx, "alice", "phone", "abc")
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditUser(ctx, "alice", "username", "bob")
	require.ErrorIs(t, err, errs.ErrValidation)
	err = e.EditUser(ctx, "nobody", "name", "x")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
