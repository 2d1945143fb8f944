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

func (e *Engine) AddUser(ctx context.Context, user model.User) error {
	log := logger.NewOp(e.log, "add-user")
	if err := e.validateStruct(user); err != nil {
		log.Warn("rejected", zap.Error(err))
		return err
	}
	log.Info("adding user", zap.String("username", user.Username))

	_, err := e.st.CreateNode(ctx, store.LabelUser, store.Props{
		"username": user.Username,
		"name":     user.Name,
		"phone":    user.Phone,
	})
	if err != nil {
		log.Error("add user", zap.Error(err))
		return err
	}

	log.Success("added user", zap.String("username", user.Username))
	e.publishAudit(ctx, "add-user", "user", user.Username)
	return nil
}

func (e *Engine) GetUser(ctx context.Context, username string) (model.User, error) {
	node, err := userNode(ctx, e.st, username)
	if err != nil {
		return model.User{}, err
	}
	return nodeToUser(node), nil
}

var editableUserFields = map[string]bool{
	"name":  true,
	"phone": true,
}

// EditUser updates a single user field; phone must be a non-negative
// integer.
func (e *Engine) EditUser(ctx context.Context, username, field, value string) error {
	log := logger.NewOp(e.log, "edit-user")
	if !editableUserFields[field] {
		return errors.Wrapf(errs.ErrValidation, "unknown user field %q", field)
	}
	var val any = value
	if field == "phone" {
		n, err := parseNonNegativeInt(field, value)
		if err != nil {
			log.Warn("rejected", zap.Error(err))
			return err
		}
		val = n
	}

	log.Info("editing user", zap.String("username", username), zap.String("field", field))
	node, err := userNode(ctx, e.st, username)
	if err != nil {
		return err
	}
	if err := e.st.UpdateProperty(ctx, node.Ref, field, val); err != nil {
		log.Error("edit user", zap.Error(err))
		return err
	}

	log.Success("edited user", zap.String("username", username), zap.String("field", field))
	e.publishAudit(ctx, "edit-user", "user", username)
	return nil
}
