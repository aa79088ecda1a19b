package order

import (
	"testing"

	"comandas-be/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("IN_PREPARATION")
	assert.NoError(t, err)
	assert.Equal(t, StatusInPreparation, st)
	assert.Equal(t, "En preparación", st.Label())

	_, err = ParseStatus("SERVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestParsePaymentStatus(t *testing.T) {
	ps, err := ParsePaymentStatus("PAID")
	assert.NoError(t, err)
	assert.Equal(t, PaymentPaid, ps)
	assert.Equal(t, "Pagado", ps.Label())

	_, err = ParsePaymentStatus("paid")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestPermissiveGate(t *testing.T) {
	gate := PermissiveGate{}
	all := []Status{StatusPending, StatusInPreparation, StatusReady, StatusCompleted, StatusCancelled}

	for _, from := range all {
		for _, to := range all {
			assert.NoError(t, gate.CheckStatus(from, to), "%s -> %s", from, to)
		}
	}

	assert.NoError(t, gate.CheckPayment(PaymentPaid, PaymentPending))
	assert.ErrorIs(t, gate.CheckStatus(StatusPending, "BOGUS"), ErrInvalidStatus)
	assert.ErrorIs(t, gate.CheckPayment(PaymentPending, "BOGUS"), ErrInvalidPaymentStatus)
}

func TestLifecycleGate(t *testing.T) {
	gate := LifecycleGate{}

	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusInPreparation, true},
		{StatusInPreparation, StatusReady, true},
		{StatusReady, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusReady, StatusCancelled, true},
		{StatusReady, StatusReady, true},
		{StatusPending, StatusReady, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		err := gate.CheckStatus(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tt.from, tt.to)
			assert.ErrorIs(t, err, apperr.ErrConflict)
		}
	}

	assert.NoError(t, gate.CheckPayment(PaymentPending, PaymentPaid))
	assert.ErrorIs(t, gate.CheckPayment(PaymentPaid, PaymentPending), ErrIllegalTransition)
}

func TestNewGate(t *testing.T) {
	assert.IsType(t, LifecycleGate{}, NewGate("strict"))
	assert.IsType(t, PermissiveGate{}, NewGate("permissive"))
	assert.IsType(t, PermissiveGate{}, NewGate(""))
}
