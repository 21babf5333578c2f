package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs callbacks inside one transaction carried through the
// context; repositories pick it up with QuerierFromCtx.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption configures a TxManager.
type TxOption func(*pgx.TxOptions)

// WithIsolation sets the isolation level. The default is Read Committed.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(o *pgx.TxOptions) { o.IsoLevel = level }
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// RunInTx executes fn in a transaction. It commits when fn returns nil and
// rolls back when fn returns an error or panics. When ctx already carries a
// transaction, fn joins it and the outermost call decides the outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		return fn(withTx(ctx, tx))
	})
}
