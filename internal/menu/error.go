package menu

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrDishNotFound = fmt.Errorf("%w: dish not found", apperr.ErrNotFound)

	ErrNameRequired       = fmt.Errorf("%w: dish name is required", apperr.ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	ErrCategoryRequired   = fmt.Errorf("%w: dish category is required", apperr.ErrValidation)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting a dish must be confirmed", apperr.ErrConfirmationRequired)
)
