package services

import (
	"context"

	"backend_tigo/models"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Gateway issues the reads and writes of one table
type Gateway[T models.Record] struct {
	store    Store
	table    string
	order    string
	gate     *DeleteGate
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewGateway creates the gateway for T's table; order is the read ordering, empty for none
func NewGateway[T models.Record](store Store, order string, logger *logrus.Logger) *Gateway[T] {
	var zero T
	return &Gateway[T]{
		store:    store,
		table:    zero.TableName(),
		order:    order,
		gate:     NewDeleteGate(store),
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns every row of the table that passes the edge check
func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := g.store.SelectAll(ctx, g.table, g.order, &rows); err != nil {
		return nil, &FetchError{Table: g.table, Err: err}
	}
	return g.conform(rows), nil
}

// Find returns the row with the given id
func (g *Gateway[T]) Find(ctx context.Context, id string) (T, error) {
	var rows []T
	if err := g.store.SelectWhere(ctx, g.table, "id", id, &rows); err != nil {
		var zero T
		return zero, &FetchError{Table: g.table, Err: err}
	}
	rows = g.conform(rows)
	if len(rows) == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Into returns a fetch that stores the listed rows in dest, for use with LoadAll
func (g *Gateway[T]) Into(dest *[]T) func(context.Context) error {
	return func(ctx context.Context) error {
		rows, err := g.List(ctx)
		if err != nil {
			return err
		}
		*dest = rows
		return nil
	}
}

// conform drops rows that do not match the record schema
func (g *Gateway[T]) conform(rows []T) []T {
	valid := rows[:0]
	for _, row := range rows {
		if err := g.validate.Struct(row); err != nil {
			g.logger.WithFields(logrus.Fields{
				"table": g.table,
				"id":    row.GetID(),
			}).WithError(err).Warn("dropping malformed row")
			continue
		}
		valid = append(valid, row)
	}
	return valid
}

// Insert writes a new row. The store assigns id and created_at; any values
// the record carries for them are cleared first.
func (g *Gateway[T]) Insert(ctx context.Context, record T) (T, error) {
	if r, ok := any(&record).(interface{ Reset() }); ok {
		r.Reset()
	}

	if err := g.store.Insert(ctx, g.table, &record); err != nil {
		return record, &WriteError{Op: "insert", Table: g.table, Err: err}
	}
	return record, nil
}

// Update applies a partial record to the row with the given id.
// id and created_at are never part of the update set.
func (g *Gateway[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")
	delete(fields, "created_at")
	if len(fields) == 0 {
		return models.NewValidationError("form", "no fields to update")
	}

	if err := g.store.Update(ctx, g.table, id, fields); err != nil {
		return &WriteError{Op: "update", Table: g.table, Err: err}
	}
	return nil
}

// Delete removes the row with the given id once the caller has confirmed it
func (g *Gateway[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	err := g.gate.Delete(ctx, g.table, id, confirmed)
	if err != nil && err != ErrConfirmationRequired {
		return &WriteError{Op: "delete", Table: g.table, Err: err}
	}
	return err
}

// Count returns the exact number of rows
func (g *Gateway[T]) Count(ctx context.Context) (int64, error) {
	total, err := g.store.Count(ctx, g.table)
	if err != nil {
		return 0, &FetchError{Table: g.table, Err: err}
	}
	return total, nil
}
