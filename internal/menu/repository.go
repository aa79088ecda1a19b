package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comandas-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, d *Dish) error
	GetByID(ctx context.Context, id string) (*Dish, error)
	List(ctx context.Context, filter Filter) ([]*Dish, error)
	Update(ctx context.Context, d *Dish) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

// NewRepository returns the postgres backed repository over the dishes table.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const dishColumns = `id, name, price, category, description, created_at, updated_at`

func (r *repository) Create(ctx context.Context, d *Dish) error {
	log := logger.FromCtx(ctx).With(zap.String("dish_id", d.ID))

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dishes (`+dishColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, d.ID, d.Name, d.Price, d.Category, d.Description, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		log.Error("insert dish failed", zap.Error(err))
		return fmt.Errorf("create dish: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Dish, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id)

	d, err := scanDish(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDishNotFound
	}
	return d, err
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Dish, error) {
	log := logger.FromCtx(ctx)

	query := `SELECT ` + dishColumns + ` FROM dishes`
	args := []interface{}{}
	if filter.Category != nil {
		query += ` WHERE category = $1`
		args = append(args, *filter.Category)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("list dishes query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	dishes := []*Dish{}
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDish(s scanner) (*Dish, error) {
	var (
		d           Dish
		description sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Name, &d.Price, &d.Category, &description, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		d.Description = &description.String
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, d *Dish) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dishes
		SET name = $1, price = $2, category = $3, description = $4, updated_at = $5
		WHERE id = $6
	`, d.Name, d.Price, d.Category, d.Description, d.UpdatedAt, d.ID)
	if err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	return expectOneRow(res)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDishNotFound
	}
	return nil
}
