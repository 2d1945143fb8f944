package engine

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-catalog/internal/errs"
	"library-catalog/internal/store"
	"library-catalog/pkg/logger"
)

// RemoveBook deletes a book that no user currently borrows. Authorship
// links are removed first, cleaning up authors this orphans. Ratings block
// the removal only when the rating-blocks-delete policy is on.
func (e *Engine) RemoveBook(ctx context.Context, isbn string) error {
	log := logger.NewOp(e.log, "remove-book")
	log.Info("removing book", zap.String("isbn", isbn))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		book, err := bookNode(ctx, st, isbn)
		if err != nil {
			return err
		}
		if err := e.guardRelations(ctx, st, store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}}, store.LabelUser); err != nil {
			return errors.Wrapf(err, "book isbn=%s", isbn)
		}

		links, err := st.Match(ctx, store.Pattern{
			From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
			Rel:  &store.RelSpec{Type: store.RelAuthorOf},
			To:   &store.NodeSpec{Label: store.LabelAuthor},
		})
		if err != nil {
			return err
		}
		for _, rec := range links {
			if err := st.DeleteRelation(ctx, rec.Rel.Ref); err != nil {
				return err
			}
			if err := removeAuthorIfOrphan(ctx, st, log, rec.To); err != nil {
				return err
			}
		}

		// ratings are history, not a block, unless policy says otherwise;
		// without the policy they are dropped with the book
		if !e.ratingBlocksDelete {
			ratings, err := st.Match(ctx, store.Pattern{
				From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
				Rel:  &store.RelSpec{Type: store.RelRates},
				To:   &store.NodeSpec{Label: store.LabelUser},
			})
			if err != nil {
				return err
			}
			for _, rec := range ratings {
				if err := st.DeleteRelation(ctx, rec.Rel.Ref); err != nil {
					return err
				}
			}
		}

		return st.DeleteNode(ctx, book.Ref)
	})
	if err != nil {
		log.Error("remove book", zap.Error(err))
		return err
	}

	log.Success("removed book", zap.String("isbn", isbn))
	e.publishAudit(ctx, "remove-book", "book", isbn)
	return nil
}

// RemoveUser deletes a user holding no borrowed copies. Ratings block the
// removal only under the rating-blocks-delete policy.
func (e *Engine) RemoveUser(ctx context.Context, username string) error {
	log := logger.NewOp(e.log, "remove-user")
	log.Info("removing user", zap.String("username", username))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		user, err := userNode(ctx, st, username)
		if err != nil {
			return err
		}
		if err := e.guardRelations(ctx, st, store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}}, store.LabelBook); err != nil {
			return errors.Wrapf(err, "user username=%s", username)
		}

		// ratings are history, not a block, unless policy says otherwise;
		// without the policy they are dropped with the user
		if !e.ratingBlocksDelete {
			ratings, err := st.Match(ctx, store.Pattern{
				From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
				Rel:  &store.RelSpec{Type: store.RelRates},
				To:   &store.NodeSpec{Label: store.LabelBook},
			})
			if err != nil {
				return err
			}
			for _, rec := range ratings {
				if err := st.DeleteRelation(ctx, rec.Rel.Ref); err != nil {
					return err
				}
			}
		}

		return st.DeleteNode(ctx, user.Ref)
	})
	if err != nil {
		log.Error("remove user", zap.Error(err))
		return err
	}

	log.Success("removed user", zap.String("username", username))
	e.publishAudit(ctx, "remove-user", "user", username)
	return nil
}

// guardRelations fails with a conflict while deletion-blocking relations to
// nodes of the other label exist: borrows always block, ratings only under
// the rating-blocks-delete policy.
func (e *Engine) guardRelations(ctx context.Context, st store.Store, spec store.NodeSpec, other store.Label) error {
	borrows, err := st.Match(ctx, store.Pattern{
		From: spec,
		Rel:  &store.RelSpec{Type: store.RelBorrows},
		To:   &store.NodeSpec{Label: other},
	})
	if err != nil {
		return err
	}
	if len(borrows) > 0 {
		return errors.Wrapf(errs.ErrConflict, "%d active borrows", len(borrows))
	}

	if e.ratingBlocksDelete {
		ratings, err := st.Match(ctx, store.Pattern{
			From: spec,
			Rel:  &store.RelSpec{Type: store.RelRates},
			To:   &store.NodeSpec{Label: other},
		})
		if err != nil {
			return err
		}
		if len(ratings) > 0 {
			return errors.Wrapf(errs.ErrConflict, "%d ratings", len(ratings))
		}
	}
	return nil
}
