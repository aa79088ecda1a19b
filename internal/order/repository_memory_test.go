package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(n int64, table string) *Order {
	return &Order{
		ID:            uuid.New(),
		Number:        n,
		Label:         FormatLabel(n),
		TableID:       table,
		Lines:         AddLine(nil, burger),
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := newTestOrder(1, "5")
	second := newTestOrder(2, "3")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	t.Run("GetReturnsCopy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)

		got.Lines[0].Quantity = 99
		got.TableID = "changed"

		again, _ := repo.GetByID(ctx, first.ID)
		assert.Equal(t, 1, again.Lines[0].Quantity)
		assert.Equal(t, "5", again.TableID)
	})

	t.Run("ListInCreationOrder", func(t *testing.T) {
		orders, err := repo.List(ctx, Filter{})
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "#001", orders[0].Label)
		assert.Equal(t, "#002", orders[1].Label)
	})

	t.Run("ListFiltered", func(t *testing.T) {
		table := "3"
		orders, err := repo.List(ctx, Filter{TableID: &table})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, second.ID, orders[0].ID)

		paid := PaymentPaid
		orders, err = repo.List(ctx, Filter{PaymentStatus: &paid})
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("UpdateBumpsVersion", func(t *testing.T) {
		o, _ := repo.GetByID(ctx, first.ID)
		o.Status = StatusReady

		require.NoError(t, repo.Update(ctx, o, 0))
		assert.Equal(t, 1, o.Version)

		stored, _ := repo.GetByID(ctx, first.ID)
		assert.Equal(t, StatusReady, stored.Status)
		assert.Equal(t, 1, stored.Version)
	})

	t.Run("UpdateStaleVersion", func(t *testing.T) {
		o, _ := repo.GetByID(ctx, first.ID)
		err := repo.Update(ctx, o, 0)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		err := repo.Update(ctx, newTestOrder(9, "1"), 0)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))

		_, err := repo.GetByID(ctx, first.ID)
		assert.ErrorIs(t, err, ErrOrderNotFound)

		orders, _ := repo.List(ctx, Filter{})
		assert.Len(t, orders, 1)

		assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrOrderNotFound)
	})
}
