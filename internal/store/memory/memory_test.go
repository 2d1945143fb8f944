package memory_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/errs"
	"library-catalog/internal/store"
	"library-catalog/internal/store/memory"
)

func TestStore_CreateNode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	n, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111", "title": "Go", "pages": 300, "quantity": 2})
	require.NoError(t, err)
	require.NotEmpty(t, n.Ref)
	require.Equal(t, store.LabelBook, n.Label)
	require.Equal(t, "Go", n.Props.String("title"))

	_, err = s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111", "title": "dup"})
	require.Error(t, err)
	require.True(t, errs.IsStore(err))

	_, err = s.CreateNode(ctx, store.LabelBook, store.Props{"title": "no isbn"})
	require.Error(t, err)
	require.True(t, errs.IsStore(err))

	_, err = s.CreateNode(ctx, "Publisher", store.Props{"name": "acme"})
	require.Error(t, err)
	require.True(t, errs.IsStore(err))
}

func TestStore_CreateRelation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	book, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111"})
	require.NoError(t, err)
	user, err := s.CreateNode(ctx, store.LabelUser, store.Props{"username": "alice"})
	require.NoError(t, err)

	rel, err := s.CreateRelation(ctx, user.Ref, store.RelBorrows, book.Ref, store.Props{"count": 1})
	require.NoError(t, err)
	require.Equal(t, store.RelBorrows, rel.Type)
	require.Equal(t, 1, rel.Props.Int("count"))

	_, err = s.CreateRelation(ctx, "missing", store.RelBorrows, book.Ref, nil)
	require.True(t, errs.IsStore(err))

	_, err = s.CreateRelation(ctx, user.Ref, store.RelAny, book.Ref, nil)
	require.True(t, errs.IsStore(err))
}

func TestStore_Match_Nodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	_, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111", "pages": 300})
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "222", "pages": 100})
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, store.LabelUser, store.Props{"username": "alice"})
	require.NoError(t, err)

	all, err := s.Match(ctx, store.Pattern{From: store.NodeSpec{Label: store.LabelBook}})
	require.NoError(t, err)
	require.Len(t, all, 2)

	byPages, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"pages": 300}},
	})
	require.NoError(t, err)
	require.Len(t, byPages, 1)
	require.Equal(t, "111", byPages[0].From.Props.String("isbn"))

	none, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": "333"}},
	})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestStore_Match_Hop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	book, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111"})
	require.NoError(t, err)
	author, err := s.CreateNode(ctx, store.LabelAuthor, store.Props{"name": "Knuth"})
	require.NoError(t, err)
	_, err = s.CreateRelation(ctx, author.Ref, store.RelAuthorOf, book.Ref, nil)
	require.NoError(t, err)

	// stored direction: author -> book
	forward, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	require.NoError(t, err)
	require.Len(t, forward, 1)
	require.Equal(t, "Knuth", forward[0].From.Props.String("name"))
	require.Equal(t, "111", forward[0].To.Props.String("isbn"))

	// matching is undirected: From can bind the relation's To node
	reverse, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": "111"}},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelAuthor},
	})
	require.NoError(t, err)
	require.Len(t, reverse, 1)
	require.Equal(t, "111", reverse[0].From.Props.String("isbn"))
	require.Equal(t, "Knuth", reverse[0].To.Props.String("name"))

	wrongType, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor},
		Rel:  &store.RelSpec{Type: store.RelBorrows},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	require.NoError(t, err)
	require.Empty(t, wrongType)

	_, err = s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
	})
	require.True(t, errs.IsStore(err))
}

func TestStore_Match_RelProps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	book, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111"})
	require.NoError(t, err)
	alice, err := s.CreateNode(ctx, store.LabelUser, store.Props{"username": "alice"})
	require.NoError(t, err)
	bob, err := s.CreateNode(ctx, store.LabelUser, store.Props{"username": "bob"})
	require.NoError(t, err)
	_, err = s.CreateRelation(ctx, alice.Ref, store.RelRates, book.Ref, store.Props{"score": 5})
	require.NoError(t, err)
	_, err = s.CreateRelation(ctx, bob.Ref, store.RelRates, book.Ref, store.Props{"score": 3})
	require.NoError(t, err)

	fives, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser},
		Rel:  &store.RelSpec{Type: store.RelRates, Props: store.Props{"score": 5}},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	require.NoError(t, err)
	require.Len(t, fives, 1)
	require.Equal(t, "alice", fives[0].From.Props.String("username"))
}

func TestStore_DeleteNode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	book, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111"})
	require.NoError(t, err)
	user, err := s.CreateNode(ctx, store.LabelUser, store.Props{"username": "alice"})
	require.NoError(t, err)
	rel, err := s.CreateRelation(ctx, user.Ref, store.RelBorrows, book.Ref, store.Props{"count": 1})
	require.NoError(t, err)

	err = s.DeleteNode(ctx, book.Ref)
	require.True(t, errs.IsStore(err))

	require.NoError(t, s.DeleteRelation(ctx, rel.Ref))
	require.NoError(t, s.DeleteNode(ctx, book.Ref))

	err = s.DeleteNode(ctx, book.Ref)
	require.ErrorIs(t, err, errs.ErrNotFound)
	err = s.DeleteRelation(ctx, rel.Ref)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStore_UpdateProperty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	book, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111", "quantity": 2})
	require.NoError(t, err)
	require.NoError(t, s.UpdateProperty(ctx, book.Ref, "quantity", 1))

	recs, err := s.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": "111"}},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 1, recs[0].From.Props.Int("quantity"))

	err = s.UpdateProperty(ctx, "missing", "quantity", 0)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStore_WithinTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	_, err := s.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "111", "quantity": 2})
	require.NoError(t, err)

	err = s.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		if _, err := st.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "222"}); err != nil {
			return err
		}
		recs, err := st.Match(ctx, store.Pattern{
			From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": "111"}},
		})
		if err != nil {
			return err
		}
		if err := st.UpdateProperty(ctx, recs[0].From.Ref, "quantity", 0); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	// failed tx leaves no partial effects
	books, err := s.Match(ctx, store.Pattern{From: store.NodeSpec{Label: store.LabelBook}})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, 2, books[0].From.Props.Int("quantity"))

	err = s.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		_, err := st.CreateNode(ctx, store.LabelBook, store.Props{"isbn": "222"})
		return err
	})
	require.NoError(t, err)

	books, err = s.Match(ctx, store.Pattern{From: store.NodeSpec{Label: store.LabelBook}})
	require.NoError(t, err)
	require.Len(t, books, 2)
}
