package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages staff accounts. Returned users never carry the password hash.
type Service interface {
	Create(ctx context.Context, input UserInput) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id string, input UserInput) (*User, error)
	ToggleActive(ctx context.Context, id string) (*User, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func public(u *User) *User {
	u.PasswordHash = ""
	return u
}

func normalize(input *UserInput) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)

	switch {
	case input.Username == "":
		return ErrUsernameRequired
	case input.Email == "":
		return ErrEmailRequired
	case input.FullName == "":
		return ErrFullNameRequired
	}

	if input.Role == "" {
		input.Role = RoleWaiter
	}
	if _, err := ParseRole(string(input.Role)); err != nil {
		return err
	}

	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func (s *service) emailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *service) Create(ctx context.Context, input UserInput) (u *User, err error) {
	defer func() { metrics.RecordOperation("user", "create", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateUser"),
		zap.String("username", input.Username),
	)

	// 1. Validate
	if err := normalize(&input); err != nil {
		log.Warn("create user validation failed", zap.Error(err))
		return nil, err
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	taken, err := s.emailTaken(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		log.Warn("email already registered", zap.String("email", input.Email))
		return nil, ErrEmailExists
	}

	// 2. Hash password
	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	// 3. Persist
	u = &User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		PasswordHash: hashed,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return public(u), nil
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return public(u), nil
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		public(u)
	}
	return users, nil
}

// Update keeps the stored password unless a new one is given.
func (s *service) Update(ctx context.Context, id string, input UserInput) (u *User, err error) {
	defer func() { metrics.RecordOperation("user", "update", err == nil) }()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateUser"),
		zap.String("user_id", id),
	)

	if err := normalize(&input); err != nil {
		log.Warn("update user validation failed", zap.Error(err))
		return nil, err
	}

	u, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(ctx, input.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailExists
	}

	u.Username = input.Username
	u.Email = input.Email
	u.FullName = input.FullName
	u.Phone = input.Phone
	u.Role = input.Role

	if input.Password != "" {
		hashed, err := HashPassword(input.Password)
		if err != nil {
			log.Error("failed to hash password", zap.Error(err))
			return nil, err
		}
		u.PasswordHash = hashed
	}

	if err := s.repo.Update(ctx, u); err != nil {
		log.Error("failed to update user", zap.Error(err))
		return nil, err
	}

	log.Info("user updated")
	return public(u), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (u *User, err error) {
	defer func() { metrics.RecordOperation("user", "toggle_active", err == nil) }()

	u, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.IsActive = !u.IsActive
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("user active flag toggled",
		zap.String("user_id", id),
		zap.Bool("is_active", u.IsActive),
	)
	return public(u), nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	defer func() { metrics.RecordOperation("user", "delete", err == nil) }()

	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	return s.repo.Delete(ctx, id)
}
