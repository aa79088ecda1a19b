package category

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrCategoryNotFound   = fmt.Errorf("%w: category not found", apperr.ErrNotFound)
	ErrNameRequired       = fmt.Errorf("%w: category name is required", apperr.ErrValidation)
	ErrInvalidDishCount   = fmt.Errorf("%w: dish count must not be negative", apperr.ErrValidation)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting a category must be confirmed", apperr.ErrConfirmationRequired)
)
