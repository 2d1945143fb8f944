package engine

import (
	"strconv"

	"github.com/pkg/errors"

	"library-catalog/internal/errs"
)

// validateStruct rejects malformed input before any store call is made.
func (e *Engine) validateStruct(v any) error {
	if err := e.validate.Struct(v); err != nil {
		return errors.Wrap(errs.ErrValidation, err.Error())
	}
	return nil
}

func requireSingle(field string, values []string) (string, error) {
	if len(values) != 1 {
		return "", errors.Wrapf(errs.ErrValidation, "field %s accepts exactly 1 value but got %d", field, len(values))
	}
	return values[0], nil
}

func parseNonNegativeInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(errs.ErrValidation, "field %s requires an integer value but got %q", field, value)
	}
	if n < 0 {
		return 0, errors.Wrapf(errs.ErrValidation, "field %s requires a non-negative integer but got %d", field, n)
	}
	return n, nil
}
