package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is what repositories run statements against: the pool, an open
// pgx.Tx, or a pgxmock pool in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns the shared squirrel builder with $N placeholders.
func Builder() sq.StatementBuilderType { return psql }

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// QuerierFromCtx prefers the transaction opened by TxManager.RunInTx, so an
// activity lookup and its completion see the same snapshot.
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return fallback
	}
	return tx
}
