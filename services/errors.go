package services

import (
	"errors"
	"fmt"

	"backend_tigo/models"
)

var (
	ErrNotFound             = models.ErrNotFound
	ErrConfirmationRequired = errors.New("delete requires explicit confirmation")
	ErrInvalidTransition    = errors.New("invalid screen state transition")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrSessionNotFound      = errors.New("session not found")
)

// FetchError is a failed read against the store
type FetchError struct {
	Table string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Table, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WriteError is a failed insert, update or delete; nothing was applied
type WriteError struct {
	Op    string
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
