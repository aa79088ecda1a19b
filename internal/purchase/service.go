package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input PurchaseInput) (*Purchase, error)
	Get(ctx context.Context, id string) (*Purchase, error)
	List(ctx context.Context) ([]*Purchase, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Purchase, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, input PurchaseInput) (p *Purchase, err error) {
	defer func() { metrics.RecordOperation("purchase", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreatePurchase"),
		zap.String("supplier", input.Supplier),
		zap.String("invoice_number", input.InvoiceNumber),
	)
	log.Info("create purchase started")

	// 1. Validate header
	supplier := strings.TrimSpace(input.Supplier)
	if supplier == "" {
		return nil, ErrSupplierRequired
	}
	invoice := strings.TrimSpace(input.InvoiceNumber)
	if invoice == "" {
		return nil, ErrInvoiceRequired
	}
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	status := input.Status
	if status == "" {
		status = StatusPending
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	// 2. Price items
	items := make([]Item, 0, len(input.Items))
	total := decimal.Zero
	for i, in := range input.Items {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
			log.Warn("invalid purchase item", zap.Int("index", i))
			return nil, fmt.Errorf("%w: item %d", ErrInvalidItem, i)
		}
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		items = append(items, Item{
			Name:      name,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	// 3. Persist
	p = &Purchase{
		ID:            uuid.NewString(),
		Supplier:      supplier,
		InvoiceNumber: invoice,
		Items:         items,
		TotalAmount:   total,
		Date:          date,
		Status:        status,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.Error("failed to create purchase", zap.Error(err))
		return nil, err
	}

	log.Info("purchase created",
		zap.String("purchase_id", p.ID),
		zap.String("total", total.StringFixed(2)),
	)
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Purchase, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Purchase, error) {
	return s.repo.List(ctx)
}

// UpdateStatus accepts any known status from any other.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (p *Purchase, err error) {
	defer func() { metrics.RecordOperation("purchase", "update_status", err == nil) }()

	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	p, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Status = status
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("purchase status updated",
		zap.String("purchase_id", id),
		zap.String("status", string(status)),
	)
	return p, nil
}
