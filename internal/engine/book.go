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

// AddBook creates the book node and links every listed author, creating
// author nodes on demand.
func (e *Engine) AddBook(ctx context.Context, book model.Book) error {
	log := logger.NewOp(e.log, "add-book")
	if err := e.validateStruct(book); err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	log.Info("adding book", zap.String("isbn", book.ISBN), zap.Strings("authors", book.Authors))

	err := e.runSteps(ctx, func(ctx context.Context, st store.Store) error {
		node, err := st.CreateNode(ctx, store.LabelBook, store.Props{
			"isbn":     book.ISBN,
			"title":    book.Title,
			"pages":    book.Pages,
			"quantity": book.Quantity,
		})
		if err != nil {
			return err
		}
		for _, name := range book.Authors {
			if err := linkAuthor(ctx, st, log, node, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("add book", zap.Error(err))
		return err
	}

	log.Success("added book", zap.String("isbn", book.ISBN))
	e.publishAudit(ctx, "add-book", "book", book.ISBN)
	return nil
}

// GetBook returns the book with its current author set.
func (e *Engine) GetBook(ctx context.Context, isbn string) (model.Book, error) {
	node, err := bookNode(ctx, e.st, isbn)
	if err != nil {
		return model.Book{}, err
	}
	book := nodeToBook(node)

	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{"isbn": isbn}},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelAuthor},
	})
	if err != nil {
		return model.Book{}, err
	}
	for _, rec := range recs {
		book.Authors = append(book.Authors, rec.To.Props.String("name"))
	}
	return book, nil
}

var editableBookFields = map[string]bool{
	"title":    true,
	"pages":    true,
	"quantity": true,
	"authors":  true,
}

// EditBook updates a single book field. The authors field replaces the full
// author set; pages and quantity must be non-negative integers.
func (e *Engine) EditBook(ctx context.Context, isbn, field string, values []string) error {
	log := logger.NewOp(e.log, "edit-book")
	if !editableBookFields[field] {
		return errors.Wrapf(errs.ErrValidation, "unknown book field %q", field)
	}
	if field == "authors" {
		return e.SetAuthors(ctx, isbn, values)
	}

	raw, err := requireSingle(field, values)
	if err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	var value any = raw
	if field == "pages" || field == "quantity" {
		n, err := parseNonNegativeInt(field, raw)
		if err != nil {
			log.Warn("rejected", zap.Error(err))
			return err
		}
		value = n
	}

	log.Info("editing book", zap.String("isbn", isbn), zap.String("field", field))
	node, err := bookNode(ctx, e.st, isbn)
	if err != nil {
		return err
	}
	if err := e.st.UpdateProperty(ctx, node.Ref, field, value); err != nil {
		log.Error("edit book", zap.Error(err))
		return err
	}

	log.Success("edited book", zap.String("isbn", isbn), zap.String("field", field))
	e.publishAudit(ctx, "edit-book", "book", isbn)
	return nil
}
