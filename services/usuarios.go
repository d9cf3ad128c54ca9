package services

import (
	"context"
	"fmt"

	"backend_tigo/config"
	"backend_tigo/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserService covers the account operations that go beyond the plain gateway
type UserService struct {
	usuarios *Gateway[models.Usuario]
	logger   *logrus.Logger
}

func NewUserService(catalog *CatalogService, logger *logrus.Logger) *UserService {
	return &UserService{usuarios: catalog.Usuarios, logger: logger}
}

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create stores a new account with its password hashed
func (s *UserService) Create(ctx context.Context, usuario models.Usuario, password string) (models.Usuario, error) {
	if len(password) < 6 {
		return usuario, models.NewValidationError("password", "debe tener al menos 6 caracteres")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return usuario, fmt.Errorf("failed to hash password: %w", err)
	}
	usuario.PasswordHash = hash

	return s.usuarios.Insert(ctx, usuario)
}

// ToggleEstado flips the active flag of an account and returns the account as stored
func (s *UserService) ToggleEstado(ctx context.Context, id string) (models.Usuario, error) {
	usuario, err := s.usuarios.Find(ctx, id)
	if err != nil {
		return usuario, err
	}

	if err := s.usuarios.Update(ctx, id, map[string]any{"estado": !usuario.Estado}); err != nil {
		return usuario, err
	}

	usuario.Estado = !usuario.Estado
	return usuario, nil
}

// SeedAdmin creates the administrator account when there are no accounts at all
func (s *UserService) SeedAdmin(ctx context.Context, admin config.AdminConfig) error {
	total, err := s.usuarios.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	if admin.Password == "" {
		s.logger.Warn("no accounts exist and ADMIN_PASSWORD is empty, skipping administrator seed")
		return nil
	}

	_, err = s.Create(ctx, models.Usuario{
		Nombre:  admin.Name,
		Usuario: admin.Username,
		Rol:     "administrador",
		Estado:  true,
	}, admin.Password)
	if err != nil {
		return err
	}

	s.logger.WithField("usuario", admin.Username).Info("administrator account created")
	return nil
}
