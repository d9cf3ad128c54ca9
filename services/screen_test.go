package services

import (
	"context"
	"errors"
	"testing"

	"backend_tigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetch(rows []string, err error) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) { return rows, err }
}

func TestScreen_LoadSuccess(t *testing.T) {
	screen := NewScreen(staticFetch([]string{"a", "b"}, nil))
	assert.Equal(t, StateIdle, screen.State())

	require.NoError(t, screen.Load(context.Background()))

	assert.Equal(t, StateLoaded, screen.State())
	assert.Equal(t, []string{"a", "b"}, screen.Rows())
	assert.NoError(t, screen.Err())
}

func TestScreen_LoadFailureShowsNoRows(t *testing.T) {
	screen := NewScreen(staticFetch(nil, errStoreDown))

	require.NoError(t, screen.Load(context.Background()))

	assert.Equal(t, StateLoadFailed, screen.State())
	assert.Empty(t, screen.Rows())
	assert.NotNil(t, screen.Rows())
	assert.ErrorIs(t, screen.Err(), errStoreDown)

	snapshot := screen.Snapshot("", nil)
	assert.Equal(t, StateLoadFailed, snapshot.State)
	assert.Zero(t, snapshot.Total)
	assert.Empty(t, snapshot.Rows)
}

func TestScreen_SubmitRefetches(t *testing.T) {
	rows := []string{"a"}
	screen := NewScreen(func(context.Context) ([]string, error) { return rows, nil })
	require.NoError(t, screen.Load(context.Background()))

	err := screen.Submit(context.Background(), func(context.Context) error {
		rows = append(rows, "b")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, StateLoaded, screen.State())
	assert.Equal(t, []string{"a", "b"}, screen.Rows())
}

func TestScreen_SubmitFailureKeepsRows(t *testing.T) {
	fetches := 0
	screen := NewScreen(func(context.Context) ([]string, error) {
		fetches++
		return []string{"a"}, nil
	})
	require.NoError(t, screen.Load(context.Background()))

	writeErr := errors.New("duplicate key")
	err := screen.Submit(context.Background(), func(context.Context) error { return writeErr })

	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, StateSubmitFailed, screen.State())
	assert.Equal(t, []string{"a"}, screen.Rows())
	assert.Equal(t, 1, fetches, "a failed write must not refresh the list")

	require.NoError(t, screen.Submit(context.Background(), func(context.Context) error { return nil }))
	assert.Equal(t, StateLoaded, screen.State())
}

func TestScreen_InvalidTransitions(t *testing.T) {
	screen := NewScreen(staticFetch(nil, errStoreDown))
	require.NoError(t, screen.Load(context.Background()))
	require.Equal(t, StateLoadFailed, screen.State())

	err := screen.Submit(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateLoadFailed, screen.State())
}

func TestScreen_ConcurrentLoadIsAllOrNothing(t *testing.T) {
	store := newFakeStore()
	store.tables["contratos"] = []models.Contrato{{Base: models.Base{ID: "c1"}, IDCliente: "u1"}}
	store.failing["clientes"] = true
	catalog := NewCatalogService(store, nil, quietLogger())

	screen := catalog.ContratosScreen()
	require.NoError(t, screen.Load(context.Background()))

	assert.Equal(t, StateLoadFailed, screen.State())
	assert.Empty(t, screen.Rows())
	var fetchErr *FetchError
	require.True(t, errors.As(screen.Err(), &fetchErr))
	assert.Equal(t, "clientes", fetchErr.Table)
}
