package order

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrOrderNotFound = fmt.Errorf("%w: order not found", apperr.ErrNotFound)

	// -- Validation & Input --
	ErrTableRequired        = fmt.Errorf("%w: table id is required", apperr.ErrValidation)
	ErrNoItems              = fmt.Errorf("%w: order must contain at least one item", apperr.ErrValidation)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be greater than zero", apperr.ErrValidation)
	ErrUnknownDish          = fmt.Errorf("%w: unknown dish", apperr.ErrValidation)
	ErrInvalidLine          = fmt.Errorf("%w: line item needs a dish id, a name and a non-negative price", apperr.ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: invalid order status", apperr.ErrValidation)
	ErrInvalidPaymentStatus = fmt.Errorf("%w: invalid payment status", apperr.ErrValidation)

	// -- Resource State --
	ErrIllegalTransition  = fmt.Errorf("%w: illegal status transition", apperr.ErrConflict)
	ErrVersionConflict    = fmt.Errorf("%w: order was modified by someone else", apperr.ErrConflict)
	ErrDeleteNotConfirmed = fmt.Errorf("%w: deleting an order must be confirmed", apperr.ErrConfirmationRequired)
)
