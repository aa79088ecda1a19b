package restaurant

import (
	"context"
	"strings"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"
	"comandas-be/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Restaurant, error)
	Get(ctx context.Context, id string) (*Restaurant, error)
	List(ctx context.Context) ([]*Restaurant, error)
	ToggleStatus(ctx context.Context, id string) (*Restaurant, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func public(r *Restaurant) *Restaurant {
	r.AdminPasswordHash = ""
	return r
}

func (s *service) Register(ctx context.Context, input RegisterInput) (r *Restaurant, err error) {
	defer func() { metrics.RecordOperation("restaurant", "register", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RegisterRestaurant"),
		zap.String("name", input.Name),
	)
	log.Info("register restaurant started")

	// 1. Validate
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.AdminEmail)
	address := strings.TrimSpace(input.Address)

	switch {
	case name == "":
		return nil, ErrNameRequired
	case email == "":
		return nil, ErrEmailRequired
	case input.Password == "":
		return nil, ErrPasswordRequired
	case input.Password != input.ConfirmPassword:
		return nil, ErrPasswordMismatch
	case address == "":
		return nil, ErrAddressRequired
	}

	// 2. Hash admin password
	hashed, err := user.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	// 3. Persist
	r = &Restaurant{
		ID:                uuid.NewString(),
		Name:              name,
		AdminEmail:        email,
		AdminPasswordHash: hashed,
		Address:           address,
		Phone:             input.Phone,
		IsActive:          true,
		CreatedAt:         s.now(),
		TotalSales:        decimal.Zero,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		log.Error("failed to register restaurant", zap.Error(err))
		return nil, err
	}

	log.Info("restaurant registered", zap.String("restaurant_id", r.ID))
	return public(r), nil
}

func (s *service) Get(ctx context.Context, id string) (*Restaurant, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return public(r), nil
}

func (s *service) List(ctx context.Context) ([]*Restaurant, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		public(r)
	}
	return list, nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (r *Restaurant, err error) {
	defer func() { metrics.RecordOperation("restaurant", "toggle_status", err == nil) }()

	r, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.IsActive = !r.IsActive
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("restaurant status toggled",
		zap.String("restaurant_id", id),
		zap.Bool("is_active", r.IsActive),
	)
	return public(r), nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("restaurant", "delete", err == nil) }()

	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Total: len(list), TotalSales: decimal.Zero}
	for _, r := range list {
		if r.IsActive {
			sum.Active++
		}
		sum.TotalSales = sum.TotalSales.Add(r.TotalSales)
		sum.TotalOrders += r.TotalOrders
	}
	return sum, nil
}
