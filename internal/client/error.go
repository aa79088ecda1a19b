package client

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrClientNotFound     = fmt.Errorf("%w: client not found", apperr.ErrNotFound)
	ErrNameRequired       = fmt.Errorf("%w: client name is required", apperr.ErrValidation)
	ErrEmailRequired      = fmt.Errorf("%w: client email is required", apperr.ErrValidation)
	ErrPhoneRequired      = fmt.Errorf("%w: client phone is required", apperr.ErrValidation)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting a client must be confirmed", apperr.ErrConfirmationRequired)
)
