package services

import (
	"context"
	"errors"
	"testing"

	"backend_tigo/config"
	"backend_tigo/database"
	"backend_tigo/models"
	"backend_tigo/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupUserService(t *testing.T) (*UserService, *CatalogService) {
	t.Helper()
	db, err := testutils.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { testutils.CleanupTestDB(db) })

	catalog := NewCatalogService(database.NewGormStore(db), nil, quietLogger())
	return NewUserService(catalog, quietLogger()), catalog
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	users, catalog := setupUserService(t)
	ctx := context.Background()

	created, err := users.Create(ctx, models.Usuario{Nombre: "Rosa Flores", Usuario: "rflores", Rol: "tecnico", Estado: true}, "clave-segura")
	require.NoError(t, err)

	stored, err := catalog.Usuarios.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura")))
}

func TestUserService_CreateRejectsShortPassword(t *testing.T) {
	users, catalog := setupUserService(t)

	_, err := users.Create(context.Background(), models.Usuario{Nombre: "X", Usuario: "x"}, "123")

	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "password", validationErr.Field)
	total, _ := catalog.Usuarios.Count(context.Background())
	assert.Zero(t, total)
}

func TestUserService_ToggleEstado(t *testing.T) {
	users, _ := setupUserService(t)
	ctx := context.Background()

	created, err := users.Create(ctx, models.Usuario{Nombre: "Rosa Flores", Usuario: "rflores", Rol: "tecnico", Estado: true}, "clave-segura")
	require.NoError(t, err)

	toggled, err := users.ToggleEstado(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Estado)

	toggled, err = users.ToggleEstado(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Estado)

	_, err = users.ToggleEstado(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_SeedAdminOnlyOnce(t *testing.T) {
	users, catalog := setupUserService(t)
	ctx := context.Background()
	admin := config.AdminConfig{Username: "admin", Password: "admin123", Name: "Administrador"}

	require.NoError(t, users.SeedAdmin(ctx, admin))
	require.NoError(t, users.SeedAdmin(ctx, admin))

	rows, err := catalog.Usuarios.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "administrador", rows[0].Rol)
	assert.True(t, rows[0].Estado)
}
