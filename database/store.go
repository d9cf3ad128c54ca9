package database

import (
	"context"
	"fmt"

	"backend_tigo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the table-oriented store on top of gorm
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SelectAll reads every row of table into dest, ordered by order when it is not empty
func (s *GormStore) SelectAll(ctx context.Context, table, order string, dest any) error {
	query := s.db.WithContext(ctx).Table(table)
	if order != "" {
		query = query.Order(order)
	}
	return query.Find(dest).Error
}

// SelectWhere reads the rows of table whose column equals value
func (s *GormStore) SelectWhere(ctx context.Context, table, column string, value any, dest any) error {
	return s.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Find(dest).Error
}

// Count returns the exact number of rows in table
func (s *GormStore) Count(ctx context.Context, table string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Table(table).Count(&total).Error
	return total, err
}

// Insert writes record into table; model hooks assign the identifier
func (s *GormStore) Insert(ctx context.Context, table string, record any) error {
	return s.db.WithContext(ctx).Table(table).Create(record).Error
}

// Update applies fields to the row identified by id inside a single transaction
func (s *GormStore) Update(ctx context.Context, table, id string, fields map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(table).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%s %s: %w", table, id, models.ErrNotFound)
		}
		return nil
	})
}

// Delete removes the row identified by id
func (s *GormStore) Delete(ctx context.Context, table, id string) error {
	result := s.db.WithContext(ctx).Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: table}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", table, id, models.ErrNotFound)
	}
	return nil
}

// Report reads a report source in its fixed order
func (s *GormStore) Report(ctx context.Context, source string, dest any) error {
	order, ok := reportOrders[source]
	if !ok {
		return fmt.Errorf("unknown report source %q", source)
	}
	return s.db.WithContext(ctx).Table(source).Order(order).Find(dest).Error
}
