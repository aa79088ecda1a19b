package client

import (
	"context"
	"strings"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input ClientInput) (*Client, error)
	Get(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	Update(ctx context.Context, id string, input ClientInput) (*Client, error)
	ToggleStatus(ctx context.Context, id string) (*Client, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func normalize(input *ClientInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	switch {
	case input.Name == "":
		return ErrNameRequired
	case input.Email == "":
		return ErrEmailRequired
	case input.Phone == "":
		return ErrPhoneRequired
	}

	if input.Address != nil {
		addr := strings.TrimSpace(*input.Address)
		if addr == "" {
			input.Address = nil
		} else {
			input.Address = &addr
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, input ClientInput) (c *Client, err error) {
	defer func() { metrics.RecordOperation("client", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateClient"),
	)

	if err := normalize(&input); err != nil {
		log.Warn("create client validation failed", zap.Error(err))
		return nil, err
	}

	c = &Client{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		TotalSpent: decimal.Zero,
		LastVisit:  s.now(),
		Status:     StatusActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("failed to create client", zap.Error(err))
		return nil, err
	}

	log.Info("client created", zap.String("client_id", c.ID))
	return c, nil
}

func (s *service) Get(ctx context.Context, id string) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

// Update replaces contact details only; counters and status are kept.
func (s *service) Update(ctx context.Context, id string, input ClientInput) (c *Client, err error) {
	defer func() { metrics.RecordOperation("client", "update", err == nil) }()

	if err := normalize(&input); err != nil {
		return nil, err
	}

	c, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.Email = input.Email
	c.Phone = input.Phone
	c.Address = input.Address

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("client updated", zap.String("client_id", id))
	return c, nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (c *Client, err error) {
	defer func() { metrics.RecordOperation("client", "toggle_status", err == nil) }()

	c, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status == StatusActive {
		c.Status = StatusInactive
	} else {
		c.Status = StatusActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("client status toggled",
		zap.String("client_id", id),
		zap.String("status", string(c.Status)),
	)
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("client", "delete", err == nil) }()

	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	return s.repo.Delete(ctx, id)
}
