package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// txKey is an unexported context key for the per-request transaction.
type txKey struct{}

// WithTx stores a transaction in the context. Repositories prefer the
// transaction over their own connection pool when one is present.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
