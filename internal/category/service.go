package category

import (
	"context"
	"strings"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for menu categories.
type Service interface {
	Create(ctx context.Context, input CategoryInput) (*Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*Category, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func normalize(input *CategoryInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.DishCount < 0 {
		return ErrInvalidDishCount
	}
	if strings.TrimSpace(input.Color) == "" {
		input.Color = DefaultColor
	}
	if strings.TrimSpace(input.Icon) == "" {
		input.Icon = DefaultIcon
	}
	return nil
}

func (s *service) Create(ctx context.Context, input CategoryInput) (c *Category, err error) {
	defer func() { metrics.RecordOperation("category", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
		zap.String("name", input.Name),
	)
	log.Info("CreateCategory started")

	if err := normalize(&input); err != nil {
		log.Warn("CreateCategory validation failed", zap.Error(err))
		return nil, err
	}

	c = &Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Color:     input.Color,
		Icon:      input.Icon,
		DishCount: input.DishCount,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("CreateCategory success", zap.String("category_id", c.ID))
	return c, nil
}

func (s *service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, input CategoryInput) (c *Category, err error) {
	defer func() { metrics.RecordOperation("category", "update", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateCategory"),
		zap.String("category_id", id),
	)

	if err := normalize(&input); err != nil {
		log.Warn("UpdateCategory validation failed", zap.Error(err))
		return nil, err
	}

	c, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.Color = input.Color
	c.Icon = input.Icon
	c.DishCount = input.DishCount

	if err := s.repo.Update(ctx, c); err != nil {
		log.Error("failed to update category", zap.Error(err))
		return nil, err
	}

	log.Info("UpdateCategory success")
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("category", "delete", err == nil) }()

	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("category deleted", zap.String("category_id", id))
	return nil
}
