package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"Validation", fmt.Errorf("%w: table is required", ErrValidation), ErrValidation},
		{"NotFound", fmt.Errorf("%w: order", ErrNotFound), ErrNotFound},
		{"Confirmation", ErrConfirmationRequired, ErrConfirmationRequired},
		{"Conflict wrapped twice", fmt.Errorf("update: %w", fmt.Errorf("%w: stale", ErrConflict)), ErrConflict},
		{"Unclassified", errors.New("boom"), nil},
		{"Nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.err))
		})
	}
}
