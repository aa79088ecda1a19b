package user

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrUserNotFound = fmt.Errorf("%w: user not found", apperr.ErrNotFound)

	ErrUsernameRequired   = fmt.Errorf("%w: username is required", apperr.ErrValidation)
	ErrEmailRequired      = fmt.Errorf("%w: email is required", apperr.ErrValidation)
	ErrFullNameRequired   = fmt.Errorf("%w: full name is required", apperr.ErrValidation)
	ErrPasswordRequired   = fmt.Errorf("%w: password is required", apperr.ErrValidation)
	ErrPasswordMismatch   = fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	ErrInvalidRole        = fmt.Errorf("%w: invalid role", apperr.ErrValidation)
	ErrEmailExists        = fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting a user must be confirmed", apperr.ErrConfirmationRequired)
)
