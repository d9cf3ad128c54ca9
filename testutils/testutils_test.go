package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB(t *testing.T) {
	db, err := SetupTestDB()
	require.NoError(t, err, "Should setup test database without error")
	require.NotNil(t, db, "Database should not be nil")
	defer CleanupTestDB(db)

	var tableCount int64
	err = db.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&tableCount).Error
	require.NoError(t, err, "Should be able to query sqlite_master")
	assert.Equal(t, int64(8), tableCount)

	var viewCount int64
	err = db.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='view'").Scan(&viewCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(5), viewCount, "Should have created the report views")
}

func TestCreateTestFixtures(t *testing.T) {
	db, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(db)

	cliente := CreateTestCliente(db, "Ana", "Quispe", "Surco")
	require.NotNil(t, cliente)
	assert.Len(t, cliente.ID, 36, "Cliente ID should be a generated UUID")
	assert.False(t, cliente.CreatedAt.IsZero())

	pago := CreateTestPago(db, cliente.ID, "89.90", "2024-03-15", "completado")
	require.NotNil(t, pago)
	assert.Equal(t, cliente.ID, pago.IDCliente)
	assert.Equal(t, "2024-03-15", pago.FechaPago.String())

	usuario := CreateTestUsuario(db, "operador1", "hash", false)
	require.NotNil(t, usuario)
	assert.False(t, usuario.Estado)
}

func TestSetupTestRedis(t *testing.T) {
	mr, client := SetupTestRedis(t)

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
