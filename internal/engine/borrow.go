package engine

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	"library-catalog/internal/store"
	"library-catalog/pkg/logger"
)

func borrowsBetween(ctx context.Context, st store.Store, username, isbn string) ([]store.Record, error) {
	return st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
		Rel:  &store.RelSpec{Type: store.RelBorrows},
		To:   &store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
	})
}

// CheckOut hands one copy of the book to the user: the borrow count for the
// pair goes up by one (the relation is created at count 1 when absent) and
// the book's stock goes down by one. All preconditions are checked before
// anything is written.
func (e *Engine) CheckOut(ctx context.Context, isbn, username string) error {
	log := logger.NewOp(e.log, "checkout")
	if err := e.validateStruct(model.CheckoutRequest{ISBN: isbn, Username: username}); err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	log.Info("checking out", zap.String("isbn", isbn), zap.String("username", username))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		book, err := bookNode(ctx, st, isbn)
		if err != nil {
			return err
		}
		quantity := book.Props.Int("quantity")
		if quantity <= 0 {
			return errors.Wrapf(errs.ErrOutOfStock, "book isbn=%s", isbn)
		}
		user, err := userNode(ctx, st, username)
		if err != nil {
			return err
		}

		held, err := borrowsBetween(ctx, st, username, isbn)
		if err != nil {
			return err
		}
		if len(held) == 0 {
			if _, err := st.CreateRelation(ctx, user.Ref, store.RelBorrows, book.Ref, store.Props{"count": 1}); err != nil {
				return err
			}
		} else {
			rel := held[0].Rel
			if err := st.UpdateProperty(ctx, rel.Ref, "count", rel.Props.Int("count")+1); err != nil {
				return err
			}
		}
		return st.UpdateProperty(ctx, book.Ref, "quantity", quantity-1)
	})
	if err != nil {
		log.Error("checkout", zap.Error(err))
		return err
	}

	log.Success("checked out", zap.String("isbn", isbn), zap.String("username", username))
	e.publishAudit(ctx, "checkout", "book", isbn)
	return nil
}

// ReturnBook takes one copy back: borrow count down by one (the relation is
// deleted when it would reach zero), stock up by one.
func (e *Engine) ReturnBook(ctx context.Context, isbn, username string) error {
	log := logger.NewOp(e.log, "return")
	if err := e.validateStruct(model.CheckoutRequest{ISBN: isbn, Username: username}); err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	log.Info("returning", zap.String("isbn", isbn), zap.String("username", username))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		held, err := borrowsBetween(ctx, st, username, isbn)
		if err != nil {
			return err
		}
		if len(held) == 0 {
			return errors.Wrapf(errs.ErrNotBorrowed, "book isbn=%s user username=%s", isbn, username)
		}
		rel, book := held[0].Rel, held[0].To

		if count := rel.Props.Int("count"); count == 1 {
			log.Info("deleting borrow relation, all copies returned", zap.String("isbn", isbn))
			if err := st.DeleteRelation(ctx, rel.Ref); err != nil {
				return err
			}
		} else {
			if err := st.UpdateProperty(ctx, rel.Ref, "count", count-1); err != nil {
				return err
			}
		}
		return st.UpdateProperty(ctx, book.Ref, "quantity", book.Props.Int("quantity")+1)
	})
	if err != nil {
		log.Error("return", zap.Error(err))
		return err
	}

	log.Success("returned", zap.String("isbn", isbn), zap.String("username", username))
	e.publishAudit(ctx, "return", "book", isbn)
	return nil
}

// BookStats lists the users currently borrowing the book with their counts.
func (e *Engine) BookStats(ctx context.Context, isbn string) ([]model.BookBorrower, error) {
	if _, err := bookNode(ctx, e.st, isbn); err != nil {
		return nil, err
	}
	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
		Rel:  &store.RelSpec{Type: store.RelBorrows},
		To:   &store.NodeSpec{Label: store.LabelUser},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.BookBorrower, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.BookBorrower{
			User:  nodeToUser(rec.To),
			Count: rec.Rel.Props.Int("count"),
		})
	}
	return out, nil
}

// UserStats lists the books the user currently holds with their counts.
func (e *Engine) UserStats(ctx context.Context, username string) ([]model.BorrowedBook, error) {
	if _, err := userNode(ctx, e.st, username); err != nil {
		return nil, err
	}
	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
		Rel:  &store.RelSpec{Type: store.RelBorrows},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.BorrowedBook, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.BorrowedBook{
			Book:  nodeToBook(rec.To),
			Count: rec.Rel.Props.Int("count"),
		})
	}
	return out, nil
}
