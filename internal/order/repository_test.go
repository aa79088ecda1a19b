package order

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id", "number", "customer_name", "table_id", "status", "payment_status",
	"created_at", "completed_at", "staff_id", "version",
}

var itemRowColumns = []string{"order_id", "dish_id", "name", "unit_price", "quantity"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	o := newTestOrder(1, "5")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO orders`).
			WithArgs(o.ID, o.Number, nil, "5", StatusPending, PaymentPending, sqlmock.AnyArg(), nil, "", 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(o.ID, 0, "d1", "Burger", sqlmock.AnyArg(), 1).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Create(context.Background(), o))
	})

	t.Run("ItemInsertFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO orders`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		assert.Error(t, repo.Create(context.Background(), o))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders o WHERE o.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(id.String(), 7, "Ana", "2", "READY", "PAID", now, nil, "u1", 3))
		mock.ExpectQuery(`SELECT order_id, dish_id, name, unit_price, quantity FROM order_items`).
			WillReturnRows(sqlmock.NewRows(itemRowColumns).
				AddRow(id.String(), "d1", "Burger", "12.50", 2).
				AddRow(id.String(), "d2", "Fries", "5.00", 1))

		o, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "#007", o.Label)
		assert.Equal(t, "Ana", o.DisplayCustomer())
		assert.Equal(t, StatusReady, o.Status)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		assert.Equal(t, 3, o.Version)
		assert.Nil(t, o.CompletedAt)
		require.Len(t, o.Lines, 2)
		assert.True(t, o.Total().Equal(decimal.NewFromInt(30)))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders o`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Filters", func(t *testing.T) {
		status := StatusPending
		table := "4"

		mock.ExpectQuery(`SELECT .* FROM orders o WHERE o.status = \$1 AND o.table_id = \$2 ORDER BY o.number ASC`).
			WithArgs(StatusPending, "4").
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(id.String(), 1, nil, "4", "PENDING", "PENDING", time.Now(), nil, "", 0))
		mock.ExpectQuery(`FROM order_items`).
			WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(id.String(), "d3", "Soda", "2.75", 1))

		orders, err := repo.List(context.Background(), Filter{Status: &status, TableID: &table})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Cliente", orders[0].DisplayCustomer())
		assert.Len(t, orders[0].Lines, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders o ORDER BY o.number ASC`).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		orders, err := repo.List(context.Background(), Filter{})
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders`).WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background(), Filter{})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		o := newTestOrder(1, "5")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(nil, "5", StatusPending, PaymentPending, nil, "", o.ID, 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM order_items WHERE order_id = \$1`).
			WithArgs(o.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO order_items`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Update(context.Background(), o, 0))
		assert.Equal(t, 1, o.Version)
	})

	t.Run("VersionConflict", func(t *testing.T) {
		o := newTestOrder(1, "5")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(o.ID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Update(context.Background(), o, 0), ErrVersionConflict)
		assert.Equal(t, 0, o.Version)
	})

	t.Run("NotFound", func(t *testing.T) {
		o := newTestOrder(1, "5")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Update(context.Background(), o, 0), ErrOrderNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrOrderNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
