package restaurant

import (
	"context"
	"testing"

	"comandas-be/internal/apperr"
	"comandas-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Name:            "Pizzería Roma",
		AdminEmail:      "admin@pizzeriaroma.com",
		Password:        "roma456",
		ConfirmPassword: "roma456",
		Address:         "Calle Roma 456, Norte",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := NewRepository()
		svc := NewService(repo)

		r, err := svc.Register(ctx, registerInput())
		require.NoError(t, err)
		assert.True(t, r.IsActive)
		assert.Empty(t, r.AdminPasswordHash)
		assert.True(t, r.TotalSales.IsZero())

		stored, _ := repo.GetByID(ctx, r.ID)
		assert.True(t, user.CheckPasswordHash("roma456", stored.AdminPasswordHash))
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewService(NewRepository())

		tests := []struct {
			name   string
			mutate func(*RegisterInput)
			err    error
		}{
			{"NoName", func(in *RegisterInput) { in.Name = "" }, ErrNameRequired},
			{"NoEmail", func(in *RegisterInput) { in.AdminEmail = " " }, ErrEmailRequired},
			{"NoPassword", func(in *RegisterInput) { in.Password = "" }, ErrPasswordRequired},
			{"Mismatch", func(in *RegisterInput) { in.ConfirmPassword = "x" }, ErrPasswordMismatch},
			{"NoAddress", func(in *RegisterInput) { in.Address = "" }, ErrAddressRequired},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := registerInput()
				tt.mutate(&in)
				_, err := svc.Register(ctx, in)
				assert.ErrorIs(t, err, tt.err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
			})
		}
	})
}

func TestService_ToggleDeleteSummary(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	svc := NewService(repo)

	require.NoError(t, repo.Create(ctx, &Restaurant{
		ID: "1", Name: "Restaurante La Plaza", IsActive: true,
		TotalSales: decimal.RequireFromString("15420.50"), TotalOrders: 324,
	}))
	require.NoError(t, repo.Create(ctx, &Restaurant{
		ID: "3", Name: "Café Central", IsActive: false,
		TotalSales: decimal.RequireFromString("3250.00"), TotalOrders: 87,
	}))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Active)
	assert.Equal(t, "18670.50", sum.TotalSales.StringFixed(2))
	assert.Equal(t, 411, sum.TotalOrders)

	toggled, err := svc.ToggleStatus(ctx, "3")
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	assert.ErrorIs(t, svc.Delete(ctx, "1", false), ErrDeleteNotConfirmed)
	require.NoError(t, svc.Delete(ctx, "1", true))

	sum, _ = svc.Summary(ctx)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Active)

	_, err = svc.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
