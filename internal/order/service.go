package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"comandas-be/internal/apperr"
	"comandas-be/internal/events"
	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the order lifecycle. Mutating methods accept an optional expected version;
// nil means "whatever is stored now".
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	CreateFromLines(ctx context.Context, input ImportOrderInput) (*Order, error)
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, expectedVersion *int) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus, expectedVersion *int) (*Order, error)
	EditLines(ctx context.Context, id uuid.UUID, lines []LineItem, expectedVersion *int) (*Order, error)
	AddItem(ctx context.Context, id uuid.UUID, dishID string, expectedVersion *int) (*Order, error)
	SetItemQuantity(ctx context.Context, id uuid.UUID, dishID string, quantity int, expectedVersion *int) (*Order, error)
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
	Ticket(ctx context.Context, id uuid.UUID) (string, error)
}

type service struct {
	repo           Repository
	seq            Sequence
	catalog        Catalog
	gate           Gate
	publisher      events.Publisher
	restaurantName string
	now            func() time.Time
}

func NewService(
	repo Repository,
	seq Sequence,
	catalog Catalog,
	gate Gate,
	publisher events.Publisher,
	restaurantName string,
) Service {
	if gate == nil {
		gate = PermissiveGate{}
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &service{
		repo:           repo,
		seq:            seq,
		catalog:        catalog,
		gate:           gate,
		publisher:      publisher,
		restaurantName: restaurantName,
		now:            time.Now,
	}
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (order *Order, err error) {
	defer func() { metrics.RecordOperation("order", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("table_id", input.TableID),
		zap.Int("item_count", len(input.Items)),
	)
	log.Info("create order started")

	// 1. Validate header fields
	tableID := strings.TrimSpace(input.TableID)
	if tableID == "" {
		log.Warn("create order validation failed: empty table")
		return nil, ErrTableRequired
	}

	// 2. Fold requested items into priced lines
	var lines []LineItem
	for i, item := range input.Items {
		logItem := log.With(zap.Int("index", i), zap.String("dish_id", item.DishID))

		if item.Quantity <= 0 {
			logItem.Warn("invalid quantity", zap.Int("quantity", item.Quantity))
			return nil, ErrInvalidQuantity
		}

		entry, err := s.resolve(ctx, item.DishID)
		if err != nil {
			logItem.Warn("dish lookup failed", zap.Error(err))
			return nil, err
		}

		existing := quantityOf(lines, entry.ID)
		lines = AddLine(lines, entry)
		lines = SetLineQuantity(lines, entry.ID, existing+item.Quantity)
	}

	if len(lines) == 0 {
		log.Warn("create order validation failed: no items")
		return nil, ErrNoItems
	}

	// 3. Number and persist
	n, err := s.seq.Next(ctx)
	if err != nil {
		log.Error("failed to get order number", zap.Error(err))
		return nil, err
	}

	order = &Order{
		ID:            uuid.New(),
		Number:        n,
		Label:         FormatLabel(n),
		CustomerName:  normalizeName(input.CustomerName),
		TableID:       tableID,
		Lines:         lines,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     s.now(),
		StaffID:       strings.TrimSpace(input.StaffID),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("label", order.Label),
		zap.String("total", order.Total().StringFixed(2)),
	)
	s.publish(ctx, events.OrderCreated, order)

	return order, nil
}

// CreateFromLines stores an order whose lines are already priced, e.g. historical orders.
// Status and payment status default to pending, CreatedAt to now.
func (s *service) CreateFromLines(ctx context.Context, input ImportOrderInput) (order *Order, err error) {
	defer func() { metrics.RecordOperation("order", "import", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateFromLines"),
		zap.String("table_id", input.TableID),
	)

	tableID := strings.TrimSpace(input.TableID)
	if tableID == "" {
		return nil, ErrTableRequired
	}

	lines, err := normalizeLines(input.Lines)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoItems
	}

	status := input.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	payment := input.PaymentStatus
	if payment == "" {
		payment = PaymentPending
	}
	if !payment.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, payment)
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	completedAt := input.CompletedAt
	if status == StatusCompleted && completedAt == nil {
		completedAt = &createdAt
	}

	n, err := s.seq.Next(ctx)
	if err != nil {
		log.Error("failed to get order number", zap.Error(err))
		return nil, err
	}

	order = &Order{
		ID:            uuid.New(),
		Number:        n,
		Label:         FormatLabel(n),
		CustomerName:  normalizeName(input.CustomerName),
		TableID:       tableID,
		Lines:         lines,
		Status:        status,
		PaymentStatus: payment,
		CreatedAt:     createdAt,
		CompletedAt:   completedAt,
		StaffID:       strings.TrimSpace(input.StaffID),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		log.Error("failed to import order", zap.Error(err))
		return nil, err
	}

	log.Info("order imported", zap.String("label", order.Label))
	s.publish(ctx, events.OrderCreated, order)
	return order, nil
}

func (s *service) resolve(ctx context.Context, dishID string) (CatalogEntry, error) {
	entry, err := s.catalog.Resolve(ctx, dishID)
	if errors.Is(err, apperr.ErrNotFound) {
		return CatalogEntry{}, fmt.Errorf("%w: %s", ErrUnknownDish, dishID)
	}
	return entry, err
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Order, error) {
	return s.repo.List(ctx, filter)
}

// mutate loads the order, applies fn to it and stores the result under optimistic
// versioning. fn must not keep references to the order.
func (s *service) mutate(
	ctx context.Context,
	op string,
	id uuid.UUID,
	expectedVersion *int,
	eventType events.EventType,
	fn func(o *Order) error,
) (order *Order, err error) {
	defer func() { metrics.RecordOperation("order", op, err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", op),
		zap.String("order_id", id.String()),
	)

	order, err = s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("order lookup failed", zap.Error(err))
		return nil, err
	}

	if expectedVersion != nil && *expectedVersion != order.Version {
		log.Warn("stale version", zap.Int("expected", *expectedVersion), zap.Int("current", order.Version))
		return nil, ErrVersionConflict
	}

	if err := fn(order); err != nil {
		log.Warn("order mutation rejected", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Update(ctx, order, order.Version); err != nil {
		log.Error("failed to store order", zap.Error(err))
		return nil, err
	}

	log.Info("order updated", zap.Int("version", order.Version))
	s.publish(ctx, eventType, order)
	return order, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, expectedVersion *int) (*Order, error) {
	return s.mutate(ctx, "update_status", id, expectedVersion, events.OrderStatusChanged, func(o *Order) error {
		if err := s.gate.CheckStatus(o.Status, status); err != nil {
			return err
		}
		o.Status = status
		if status == StatusCompleted && o.CompletedAt == nil {
			at := s.now()
			o.CompletedAt = &at
		}
		return nil
	})
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus, expectedVersion *int) (*Order, error) {
	return s.mutate(ctx, "update_payment", id, expectedVersion, events.OrderPaymentChanged, func(o *Order) error {
		if err := s.gate.CheckPayment(o.PaymentStatus, status); err != nil {
			return err
		}
		o.PaymentStatus = status
		return nil
	})
}

// EditLines replaces the lines wholesale. An empty result is allowed and totals zero.
func (s *service) EditLines(ctx context.Context, id uuid.UUID, lines []LineItem, expectedVersion *int) (*Order, error) {
	normalized, err := normalizeLines(lines)
	if err != nil {
		metrics.RecordOperation("order", "edit_lines", false)
		return nil, err
	}

	return s.mutate(ctx, "edit_lines", id, expectedVersion, events.OrderLinesEdited, func(o *Order) error {
		o.Lines = normalized
		return nil
	})
}

func (s *service) AddItem(ctx context.Context, id uuid.UUID, dishID string, expectedVersion *int) (*Order, error) {
	entry, err := s.resolve(ctx, dishID)
	if err != nil {
		metrics.RecordOperation("order", "add_item", false)
		return nil, err
	}

	return s.mutate(ctx, "add_item", id, expectedVersion, events.OrderLinesEdited, func(o *Order) error {
		o.Lines = AddLine(o.Lines, entry)
		return nil
	})
}

func (s *service) SetItemQuantity(ctx context.Context, id uuid.UUID, dishID string, quantity int, expectedVersion *int) (*Order, error) {
	return s.mutate(ctx, "set_item_quantity", id, expectedVersion, events.OrderLinesEdited, func(o *Order) error {
		o.Lines = SetLineQuantity(o.Lines, dishID, quantity)
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("order", "delete", err == nil) }()

	log := logger.FromCtx(ctx).With(zap.String("order_id", id.String()))

	if !confirmed {
		log.Warn("delete order not confirmed")
		return ErrDeleteNotConfirmed
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return err
	}

	log.Info("order deleted", zap.String("label", order.Label))
	s.publish(ctx, events.OrderDeleted, order)
	return nil
}

func (s *service) Ticket(ctx context.Context, id uuid.UUID) (string, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return FormatTicket(s.restaurantName, order), nil
}

// publish never fails the caller: the order is already stored.
func (s *service) publish(ctx context.Context, eventType events.EventType, o *Order) {
	event := events.OrderEvent{
		OrderID:       o.ID.String(),
		Label:         o.Label,
		Type:          eventType,
		TableID:       o.TableID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Total:         o.Total().StringFixed(2),
		Occurred:      s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.FromCtx(ctx).Warn("order event not published",
			zap.String("order_id", event.OrderID),
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
	}
}
