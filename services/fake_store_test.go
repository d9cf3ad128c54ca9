package services

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"backend_tigo/models"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore serves canned rows per table and records the writes it receives
type fakeStore struct {
	mu       sync.Mutex
	tables   map[string]any
	reports  map[string]any
	counts   map[string]int64
	failing  map[string]bool
	inserted []any
	updates  []map[string]any
	deletes  []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:  map[string]any{},
		reports: map[string]any{},
		counts:  map[string]int64{},
		failing: map[string]bool{},
	}
}

func fill(dest any, rows any) {
	if rows == nil {
		return
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(rows))
}

func (s *fakeStore) SelectAll(_ context.Context, table, _ string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return errStoreDown
	}
	fill(dest, s.tables[table])
	return nil
}

func (s *fakeStore) SelectWhere(_ context.Context, table, column string, value any, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return errStoreDown
	}
	rows := reflect.ValueOf(s.tables[table])
	if !rows.IsValid() {
		return nil
	}
	matched := reflect.MakeSlice(rows.Type(), 0, rows.Len())
	for i := 0; i < rows.Len(); i++ {
		if record, ok := rows.Index(i).Interface().(models.Record); ok && column == "id" && record.GetID() == value {
			matched = reflect.Append(matched, rows.Index(i))
		}
	}
	reflect.ValueOf(dest).Elem().Set(matched)
	return nil
}

func (s *fakeStore) Count(_ context.Context, table string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return 0, errStoreDown
	}
	return s.counts[table], nil
}

func (s *fakeStore) Insert(_ context.Context, table string, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return errStoreDown
	}
	s.inserted = append(s.inserted, record)
	return nil
}

func (s *fakeStore) Update(_ context.Context, table, _ string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return errStoreDown
	}
	s.updates = append(s.updates, fields)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, table, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[table] {
		return errStoreDown
	}
	s.deletes = append(s.deletes, id)
	return nil
}

func (s *fakeStore) Report(_ context.Context, source string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing[source] {
		return errStoreDown
	}
	fill(dest, s.reports[source])
	return nil
}
