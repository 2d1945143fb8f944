package engine

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	"library-catalog/internal/store"
)

var findableBookFields = map[string]bool{
	"isbn":     true,
	"title":    true,
	"pages":    true,
	"quantity": true,
	"authors":  true,
}

var findableUserFields = map[string]bool{
	"username": true,
	"name":     true,
	"phone":    true,
}

// FindBooks matches books on a single field, or on authorship membership
// when the field is authors. Results are (book, author) pairs, one per
// authorship link.
func (e *Engine) FindBooks(ctx context.Context, field string, values []string) ([]model.BookAuthor, error) {
	if !findableBookFields[field] {
		return nil, errors.Wrapf(errs.ErrValidation, "unknown book field %q", field)
	}

	if field == "authors" {
		var out []model.BookAuthor
		for _, name := range values {
			recs, err := e.st.Match(ctx, store.Pattern{
				From: store.NodeSpec{Label: store.LabelAuthor, Props: store.Props{"name": name}},
				Rel:  &store.RelSpec{Type: store.RelAuthorOf},
				To:   &store.NodeSpec{Label: store.LabelBook},
			})
			if err != nil {
				return nil, err
			}
			for _, rec := range recs {
				out = append(out, model.BookAuthor{Book: nodeToBook(rec.To), Author: name})
			}
		}
		return out, nil
	}

	raw, err := requireSingle(field, values)
	if err != nil {
		return nil, err
	}
	var value any = raw
	if field == "pages" || field == "quantity" {
		if value, err = parseNonNegativeInt(field, raw); err != nil {
			return nil, err
		}
	}

	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook, Props: store.Props{field: value}},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelAuthor},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.BookAuthor, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.BookAuthor{Book: nodeToBook(rec.From), Author: rec.To.Props.String("name")})
	}
	return out, nil
}

// FindUsers matches users on a single field.
func (e *Engine) FindUsers(ctx context.Context, field, value string) ([]model.User, error) {
	if !findableUserFields[field] {
		return nil, errors.Wrapf(errs.ErrValidation, "unknown user field %q", field)
	}
	var val any = value
	if field == "phone" {
		n, err := parseNonNegativeInt(field, value)
		if err != nil {
			return nil, err
		}
		val = n
	}

	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser, Props: store.Props{field: val}},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(recs))
	for _, rec := range recs {
		out = append(out, nodeToUser(rec.From))
	}
	return out, nil
}

// SortBooksBy scans every authorship pair and orders it ascending by the
// given field. The store has no ordering primitive, so ordering happens
// here.
func (e *Engine) SortBooksBy(ctx context.Context, field string) ([]model.BookAuthor, error) {
	if !findableBookFields[field] {
		return nil, errors.Wrapf(errs.ErrValidation, "unknown book field %q", field)
	}

	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelBook},
		Rel:  &store.RelSpec{Type: store.RelAuthorOf},
		To:   &store.NodeSpec{Label: store.LabelAuthor},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.BookAuthor, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.BookAuthor{Book: nodeToBook(rec.From), Author: rec.To.Props.String("name")})
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch field {
		case "authors":
			return out[i].Author < out[j].Author
		case "pages":
			return out[i].Book.Pages < out[j].Book.Pages
		case "quantity":
			return out[i].Book.Quantity < out[j].Book.Quantity
		case "title":
			return out[i].Book.Title < out[j].Book.Title
		default:
			return out[i].Book.ISBN < out[j].Book.ISBN
		}
	})
	return out, nil
}

// SortUsersBy scans every user and orders ascending by the given field.
func (e *Engine) SortUsersBy(ctx context.Context, field string) ([]model.User, error) {
	if !findableUserFields[field] {
		return nil, errors.Wrapf(errs.ErrValidation, "unknown user field %q", field)
	}

	recs, err := e.st.Match(ctx, store.Pattern{
		From: store.NodeSpec{Label: store.LabelUser},
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(recs))
	for _, rec := range recs {
		out = append(out, nodeToUser(rec.From))
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch field {
		case "name":
			return out[i].Name < out[j].Name
		case "phone":
			return out[i].Phone < out[j].Phone
		default:
			return out[i].Username < out[j].Username
		}
	})
	return out, nil
}
