package services

import "context"

// Store is the table-oriented boundary with the persistent store.
// dest arguments are pointers to slices of the table's record type.
type Store interface {
	SelectAll(ctx context.Context, table, order string, dest any) error
	SelectWhere(ctx context.Context, table, column string, value any, dest any) error
	Count(ctx context.Context, table string) (int64, error)
	Insert(ctx context.Context, table string, record any) error
	Update(ctx context.Context, table, id string, fields map[string]any) error
	Delete(ctx context.Context, table, id string) error
	Report(ctx context.Context, source string, dest any) error
}
