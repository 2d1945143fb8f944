// Package engine implements the catalog's integrity and workflow rules on
// top of the store contract: checkout and return accounting, derived author
// lifecycle, rating uniqueness, recommendation traversal and deletion
// guards.
package engine

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-catalog/internal/audit"
	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	"library-catalog/internal/store"
)

type Engine struct {
	st       store.Store
	log      *zap.Logger
	validate *validator.Validate
	audit    audit.Publisher

	atomicOps          bool
	ratingBlocksDelete bool
}

type Option func(*Engine)

// WithAtomicOps makes multi-step operations run inside one store
// transaction when the backend supports it. Off by default: steps then
// apply one by one and a mid-sequence failure leaves earlier writes
// committed.
func WithAtomicOps(on bool) Option {
	return func(e *Engine) {
		e.atomicOps = on
	}
}

// WithRatingBlocksDelete makes existing ratings block book and user
// removal, the same way borrows always do.
func WithRatingBlocksDelete(on bool) Option {
	return func(e *Engine) {
		e.ratingBlocksDelete = on
	}
}

func WithAuditPublisher(p audit.Publisher) Option {
	return func(e *Engine) {
		e.audit = p
	}
}

func New(st store.Store, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		st:       st,
		log:      log.Named("engine"),
		validate: validator.New(),
		audit:    audit.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// runSteps executes one operation's store sequence. With atomic operations
// enabled and a transactional backend the sequence commits or rolls back as
// a unit; otherwise fn runs against the plain store.
func (e *Engine) runSteps(ctx context.Context, fn func(ctx context.Context, st store.Store) error) error {
	if e.atomicOps {
		if tx, ok := e.st.(store.Transactional); ok {
			return tx.WithinTx(ctx, fn)
		}
	}
	return fn(ctx, e.st)
}

func (e *Engine) publishAudit(ctx context.Context, op, entity, key string) {
	_ = e.audit.Publish(ctx, audit.NewEvent(op, entity, key))
}

func bookNode(ctx context.Context, st store.Store, isbn string) (store.Node, error) {
	recs, err := st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
	})
	if err != nil {
		return store.Node{}, err
	}
	if len(recs) == 0 {
		return store.Node{}, errors.Wrapf(errs.ErrNotFound, "book isbn=%s", isbn)
	}
	return recs[0].From, nil
}

func userNode(ctx context.Context, st store.Store, username string) (store.Node, error) {
	recs, err := st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{"username": username}},
	})
	if err != nil {
		return store.Node{}, err
	}
	if len(recs) == 0 {
		return store.Node{}, errors.Wrapf(errs.ErrNotFound, "user username=%s", username)
	}
	return recs[0].From, nil
}

func nodeToBook(n store.Node) model.Book {
	return model.Book{
		ISBN:     n.Props.String("isbn"),
		Title:    n.Props.String("title"),
		Pages:    n.Props.Int("pages"),
		Quantity: n.Props.Int("quantity"),
	}
}

func nodeToUser(n store.Node) model.User {
	return model.User{
		Username: n.Props.String("username"),
		Name:     n.Props.String("name"),
		Phone:    n.Props.Int("phone"),
	}
}
