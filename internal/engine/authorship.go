package engine

import (
	"context"

	"go.uber.org/zap"

	"library-catalog/internal/store"
	"library-catalog/pkg/logger"
)

// SetAuthors replaces the full author set of a book: every current
// authorship link is removed (cleaning up authors orphaned by it), then each
// new name is linked, creating the author node when needed. Without atomic
// operations a failing step leaves the previous steps committed.
func (e *Engine) SetAuthors(ctx context.Context, isbn string, names []string) error {
	log := logger.NewOp(e.log, "set-authors")
	log.Info("replacing authors", zap.String("isbn", isbn), zap.Strings("authors", names))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		book, err := bookNode(ctx, st, isbn)
		if err != nil {
			return err
		}

		current, err := st.Match(ctx, store.Pattern{
			From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
			Rel:  &store.RelSpec{Type: store.RelAuthorOf},
			To:   &store.NodeSpec{Label: store.LabelAuthor},
		})
		if err != nil {
			return err
		}
		for _, rec := range current {
			if err := st.DeleteRelation(ctx, rec.Rel.Ref); err != nil {
				return err
			}
			if err := removeAuthorIfOrphan(ctx, st, log, rec.To); err != nil {
				return err
			}
		}

		for _, name := range names {
			if err := linkAuthor(ctx, st, log, book, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("set authors", zap.Error(err))
		return err
	}

	log.Success("replaced authors", zap.String("isbn", isbn))
	e.publishAudit(ctx, "set-authors", "book", isbn)
	return nil
}

// linkAuthor ensures the author node exists and is linked to the book.
// Idempotent: an existing link is left alone.
func linkAuthor(ctx context.Context, st store.Store, log logger.Op, book store.Node, name string) error {
	recs, err := st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor, Props: store.Props{"name": name}},
	})
	if err != nil {
		return err
	}
	var author store.Node
	if len(recs) == 0 {
		log.Info("creating author", zap.String("name", name))
		if author, err = st.CreateNode(ctx, store.LabelAuthor, store.Props{"name": name}); err != nil {
			return err
		}
	} else {
		author = recs[0].From
	}

	links, err := st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor, Props: store.Props{"name": name}},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": book.Props.String("isbn")}},
	})
	if err != nil {
		return err
	}
	if len(links) > 0 {
		return nil
	}
	_, err = st.CreateRelation(ctx, author.Ref, store.RelAuthorOf, book.Ref, nil)
	return err
}

// removeAuthorIfOrphan deletes the author node once its last authorship
// link is gone. The check is scoped to this author only.
func removeAuthorIfOrphan(ctx context.Context, st store.Store, log logger.Op, author store.Node) error {
	name := author.Props.String("name")
	remaining, err := st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelAuthor, Props: store.Props{"name": name}},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return nil
	}
	log.Info("deleting orphaned author", zap.String("name", name))
	return st.DeleteNode(ctx, author.Ref)
}
