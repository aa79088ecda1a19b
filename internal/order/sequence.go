package order

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
)

// Sequence hands out the numbers behind order labels.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// MemorySequence is process local: numbering restarts from zero on every start.
type MemorySequence struct {
	n atomic.Int64
}

func NewMemorySequence() *MemorySequence {
	return &MemorySequence{}
}

func (s *MemorySequence) Next(context.Context) (int64, error) {
	return s.n.Add(1), nil
}

// PostgresSequence reads from the order_number_seq database sequence, which survives
// restarts.
type PostgresSequence struct {
	db *sql.DB
}

func NewPostgresSequence(db *sql.DB) *PostgresSequence {
	return &PostgresSequence{db: db}
}

func (s *PostgresSequence) Next(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT nextval('order_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}
