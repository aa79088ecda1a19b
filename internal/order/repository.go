package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"comandas-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	// Update stores o only if the stored version still equals expectedVersion, then sets
	// o.Version to the new version.
	Update(ctx context.Context, o *Order, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

// NewRepository returns the postgres backed repository.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `o.id, o.number, o.customer_name, o.table_id, o.status, o.payment_status,
		o.created_at, o.completed_at, o.staff_id, o.version`

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", o.ID.String()),
		zap.String("label", o.Label),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	// 1. Insert order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, number, customer_name, table_id, status, payment_status,
			created_at, completed_at, staff_id, version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		o.ID, o.Number, o.CustomerName, o.TableID, o.Status, o.PaymentStatus,
		o.CreatedAt, o.CompletedAt, o.StaffID, o.Version,
	)
	if err != nil {
		log.Error("insert order failed", zap.Error(err))
		return fmt.Errorf("create order: %w", err)
	}

	// 2. Insert lines
	if err := insertLines(ctx, tx, o); err != nil {
		log.Error("insert order items failed", zap.Error(err))
		return err
	}

	return tx.Commit()
}

func insertLines(ctx context.Context, tx *sql.Tx, o *Order) error {
	for i, l := range o.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, position, dish_id, name, unit_price, quantity
			) VALUES ($1,$2,$3,$4,$5,$6)
		`, o.ID, i, l.ID, l.Name, l.UnitPrice, l.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", i, err)
		}
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.fetchLines(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	return o, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Order, error) {
	log := logger.FromCtx(ctx)

	query := `SELECT ` + orderColumns + ` FROM orders o`
	where := []string{}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.PaymentStatus != nil {
		args = append(args, *filter.PaymentStatus)
		where = append(where, fmt.Sprintf("o.payment_status = $%d", len(args)))
	}
	if filter.TableID != nil {
		args = append(args, *filter.TableID)
		where = append(where, fmt.Sprintf("o.table_id = $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY o.number ASC"

	log.Debug("executing list orders query", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("list orders query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	var ids []uuid.UUID
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.fetchLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Lines = lines[o.ID]
	}
	return orders, nil
}

func (r *repository) fetchLines(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]LineItem, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, dish_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, position
	`, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]LineItem, len(ids))
	for rows.Next() {
		var (
			orderID uuid.UUID
			l       LineItem
		)
		if err := rows.Scan(&orderID, &l.ID, &l.Name, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], newLine(l.ID, l.Name, l.UnitPrice, l.Quantity))
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (*Order, error) {
	var (
		o           Order
		customer    sql.NullString
		completedAt sql.NullTime
	)
	err := s.Scan(&o.ID, &o.Number, &customer, &o.TableID, &o.Status, &o.PaymentStatus,
		&o.CreatedAt, &completedAt, &o.StaffID, &o.Version)
	if err != nil {
		return nil, err
	}

	o.Label = FormatLabel(o.Number)
	if customer.Valid {
		o.CustomerName = &customer.String
	}
	if completedAt.Valid {
		o.CompletedAt = &completedAt.Time
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, o *Order, expectedVersion int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", o.ID.String()),
		zap.Int("expected_version", expectedVersion),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET customer_name = $1, table_id = $2, status = $3, payment_status = $4,
			completed_at = $5, staff_id = $6, version = version + 1
		WHERE id = $7 AND version = $8
	`,
		o.CustomerName, o.TableID, o.Status, o.PaymentStatus,
		o.CompletedAt, o.StaffID, o.ID, expectedVersion,
	)
	if err != nil {
		log.Error("update order failed", zap.Error(err))
		return fmt.Errorf("update order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, o.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrOrderNotFound
		}
		log.Warn("stale order version")
		return ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	if err := insertLines(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	o.Version = expectedVersion + 1
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
