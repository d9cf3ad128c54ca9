package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the columns the store assigns to every row
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate assigns the row identifier
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// GetID returns the row identifier
func (b Base) GetID() string {
	return b.ID
}

// Reset clears the store-assigned columns so an insert gets fresh ones
func (b *Base) Reset() {
	b.ID = ""
	b.CreatedAt = time.Time{}
}

// Record is implemented by every table row
type Record interface {
	GetID() string
	TableName() string
}
