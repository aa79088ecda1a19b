package purchase

import (
	"fmt"

	"comandas-be/internal/apperr"
)

var (
	ErrPurchaseNotFound = fmt.Errorf("%w: purchase not found", apperr.ErrNotFound)

	ErrSupplierRequired = fmt.Errorf("%w: supplier is required", apperr.ErrValidation)
	ErrInvoiceRequired  = fmt.Errorf("%w: invoice number is required", apperr.ErrValidation)
	ErrNoItems          = fmt.Errorf("%w: purchase must contain at least one item", apperr.ErrValidation)
	ErrInvalidItem      = fmt.Errorf("%w: item needs a name, a positive quantity and a non-negative price", apperr.ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid purchase status", apperr.ErrValidation)
)
