package menu

import (
	"context"
	"strings"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"
	"comandas-be/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input DishInput) (*Dish, error)
	Get(ctx context.Context, id string) (*Dish, error)
	List(ctx context.Context, filter Filter) ([]*Dish, error)
	Update(ctx context.Context, id string, input DishInput) (*Dish, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	// Resolve implements order.Catalog.
	Resolve(ctx context.Context, id string) (order.CatalogEntry, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func validate(input *DishInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)

	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if input.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

func (s *service) Create(ctx context.Context, input DishInput) (dish *Dish, err error) {
	defer func() { metrics.RecordOperation("dish", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateDish"),
		zap.String("name", input.Name),
	)

	if err := validate(&input); err != nil {
		log.Warn("create dish validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	dish = &Dish{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, dish); err != nil {
		log.Error("failed to create dish", zap.Error(err))
		return nil, err
	}

	log.Info("dish created", zap.String("dish_id", dish.ID))
	return dish, nil
}

func (s *service) Get(ctx context.Context, id string) (*Dish, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Dish, error) {
	return s.repo.List(ctx, filter)
}

// Update never touches lines already on orders: those keep the price they were added with.
func (s *service) Update(ctx context.Context, id string, input DishInput) (dish *Dish, err error) {
	defer func() { metrics.RecordOperation("dish", "update", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateDish"),
		zap.String("dish_id", id),
	)

	if err := validate(&input); err != nil {
		log.Warn("update dish validation failed", zap.Error(err))
		return nil, err
	}

	dish, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dish.Name = input.Name
	dish.Price = input.Price
	dish.Category = input.Category
	dish.Description = input.Description
	dish.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, dish); err != nil {
		log.Error("failed to update dish", zap.Error(err))
		return nil, err
	}

	log.Info("dish updated")
	return dish, nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("dish", "delete", err == nil) }()

	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("dish deleted", zap.String("dish_id", id))
	return nil
}

func (s *service) Resolve(ctx context.Context, id string) (order.CatalogEntry, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return order.CatalogEntry{}, err
	}
	return order.CatalogEntry{
		ID:          d.ID,
		Name:        d.Name,
		UnitPrice:   d.Price,
		CategoryTag: d.Category,
	}, nil
}
