package engine

import (
	"context"

	"go.uber.org/zap"

	"library-catalog/internal/model"
	"library-catalog/internal/store"
	"library-catalog/pkg/logger"
)

const recommendScoreThreshold = 3

// Recommend walks three hops: books the user rated, other users who rated
// the same book with the same score, then everything those aligned raters
// scored at or above the threshold. The result keeps duplicates and has no
// defined order; callers post-process as they see fit.
func (e *Engine) Recommend(ctx context.Context, username string) ([]model.Book, error) {
	log := logger.NewOp(e.log, "recommend")
	log.Info("collecting recommendations", zap.String("username", username))

	mine, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
		Rel:  &store.RelSpec{Type: store.RelRates},
		To:   &store.NodeSpec{Label: store.LabelBook},
	})
	if err != nil {
		return nil, err
	}

	var out []model.Book
	for _, r1 := range mine {
		score := r1.Rel.Props.Int("score")
		raters, err := e.st.Match(ctx, store.Pattern{
			From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": r1.To.Props.String("isbn")}},
			Rel:  &store.RelSpec{Type: store.RelRates},
			To:   &store.NodeSpec{Label: store.LabelUser},
		})
		if err != nil {
			return nil, err
		}
		for _, r2 := range raters {
			// skip the user's own rating edge; rating uniqueness per
			// (user, book) makes every other edge belong to someone else
			if r2.Rel.Ref == r1.Rel.Ref {
				continue
			}
			if r2.Rel.Props.Int("score") != score {
				continue
			}
			theirs, err := e.st.Match(ctx, store.Pattern{
				From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": r2.To.Props.String("username")}},
				Rel:  &store.RelSpec{Type: store.RelRates},
				To:   &store.NodeSpec{Label: store.LabelBook},
			})
			if err != nil {
				return nil, err
			}
			for _, r3 := range theirs {
				if r3.Rel.Ref == r2.Rel.Ref {
					continue
				}
				if r3.Rel.Props.Int("score") < recommendScoreThreshold {
					continue
				}
				out = append(out, nodeToBook(r3.To))
			}
		}
	}

	log.Success("collected recommendations", zap.String("username", username), zap.Int("count", len(out)))
	return out, nil
}
