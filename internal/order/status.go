package order

import "fmt"

type Status string

const (
	StatusPending       Status = "PENDING"
	StatusInPreparation Status = "IN_PREPARATION"
	StatusReady         Status = "READY"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
)

var statusLabels = map[Status]string{
	StatusPending:       "Pendiente",
	StatusInPreparation: "En preparación",
	StatusReady:         "Listo",
	StatusCompleted:     "Completado",
	StatusCancelled:     "Cancelado",
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label is the text printed on tickets.
func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

var paymentLabels = map[PaymentStatus]string{
	PaymentPending:   "Pendiente",
	PaymentPaid:      "Pagado",
	PaymentCancelled: "Cancelado",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
	}
	return ps, nil
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentLabels[s]
	return ok
}

func (s PaymentStatus) Label() string {
	return paymentLabels[s]
}

// Gate decides whether a status change is allowed.
type Gate interface {
	CheckStatus(from, to Status) error
	CheckPayment(from, to PaymentStatus) error
}

// PermissiveGate only requires the target to be a known value; any state may follow any
// other. Order status and payment status are independent.
type PermissiveGate struct{}

func (PermissiveGate) CheckStatus(_, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	return nil
}

func (PermissiveGate) CheckPayment(_, to PaymentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, to)
	}
	return nil
}

// LifecycleGate enforces Pending -> InPreparation -> Ready -> Completed with Cancelled
// reachable from any non-terminal state. Re-applying the current state is a no-op.
type LifecycleGate struct{}

var statusEdges = map[Status][]Status{
	StatusPending:       {StatusInPreparation, StatusCancelled},
	StatusInPreparation: {StatusReady, StatusCancelled},
	StatusReady:         {StatusCompleted, StatusCancelled},
}

var paymentEdges = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentCancelled},
}

func (LifecycleGate) CheckStatus(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	for _, next := range statusEdges[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

func (LifecycleGate) CheckPayment(from, to PaymentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, to)
	}
	if from == to {
		return nil
	}
	for _, next := range paymentEdges[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: payment %s -> %s", ErrIllegalTransition, from, to)
}

// NewGate maps a policy name ("permissive" or "strict") to a Gate.
func NewGate(policy string) Gate {
	if policy == "strict" {
		return LifecycleGate{}
	}
	return PermissiveGate{}
}
