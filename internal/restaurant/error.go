package restaurant

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrRestaurantNotFound = fmt.Errorf("%w: restaurant not found", apperr.ErrNotFound)

	ErrNameRequired       = fmt.Errorf("%w: restaurant name is required", apperr.ErrValidation)
	ErrEmailRequired      = fmt.Errorf("%w: admin email is required", apperr.ErrValidation)
	ErrPasswordRequired   = fmt.Errorf("%w: admin password is required", apperr.ErrValidation)
	ErrPasswordMismatch   = fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	ErrAddressRequired    = fmt.Errorf("%w: address is required", apperr.ErrValidation)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting a restaurant must be confirmed", apperr.ErrConfirmationRequired)
)
