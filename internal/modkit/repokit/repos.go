// Package repokit holds the query seams repos are written against
package repokit

import (
	"context"

	"workmonitor/internal/platform/store"
)

type (
	// Queryer is the read and write surface repos bind to
	Queryer = store.RowQuerier

	// TxRunner runs a function inside a transaction
	TxRunner = store.TxRunner

	// Rows is a result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag is the result of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
