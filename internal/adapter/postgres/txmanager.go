package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner opens transactions; *pgxpool.Pool and pgxmock pools satisfy it.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxOption adjusts the options every transaction of a TxManager starts with.
type TxOption func(*pgx.TxOptions)

// WithIsolation sets the isolation level; the server default is read committed.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(o *pgx.TxOptions) { o.IsoLevel = level }
}

// TxManager runs callbacks inside a transaction carried by the context.
// Repositories pick it up through QuerierFromCtx. RunInTx does not nest:
// an inner call opens a second, independent transaction.
type TxManager struct {
	db   Beginner
	opts pgx.TxOptions
}

func NewTxManager(db Beginner, opts ...TxOption) *TxManager {
	m := &TxManager{db: db}
	for _, o := range opts {
		o(&m.opts)
	}
	return m
}

// RunInTx commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back and propagates.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	settled := false
	defer func() {
		if !settled {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		settled = true
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	settled = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
