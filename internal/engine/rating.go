package engine

import (
	"context"

	"go.uber.org/zap"

	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	"library-catalog/internal/store"
	"library-catalog/pkg/logger"
)

// Rate records the user's score for a book. A pair is rated at most once;
// the relation is immutable afterwards and a duplicate attempt reports the
// stored score.
func (e *Engine) Rate(ctx context.Context, username, isbn string, score int) error {
	log := logger.NewOp(e.log, "rate")
	if err := e.validateStruct(model.Rating{Username: username, ISBN: isbn, Score: score}); err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	log.Info("rating", zap.String("isbn", isbn), zap.String("username", username), zap.Int("score", score))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		user, err := userNode(ctx, st, username)
		if err != nil {
			return err
		}
		book, err := bookNode(ctx, st, isbn)
		if err != nil {
			return err
		}

		existing, err := st.Match(ctx, store.Pattern{
			From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
			Rel:  &store.RelSpec{Type: store.RelRates},
			To:   &store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
		})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return &errs.DuplicateRatingError{Score: existing[0].Rel.Props.Int("score")}
		}

		_, err = st.CreateRelation(ctx, user.Ref, store.RelRates, book.Ref, store.Props{"score": score})
		return err
	})
	if err != nil {
		log.Error("rate", zap.Error(err))
		return err
	}

	log.Success("rated", zap.String("isbn", isbn), zap.String("username", username), zap.Int("score", score))
	e.publishAudit(ctx, "rate", "book", isbn)
	return nil
}
