package duckdb

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction makes tx visible to store calls made under the returned
// context. The importer uses this to write a whole export batch atomically:
// either every record of the export lands, or none do.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction returns the transaction carried by ctx, or nil when the
// caller did not open one; stores then execute against the plain connection.
func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
