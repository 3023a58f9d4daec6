package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the columns shared by every portfolio entity: a UUID primary
// key, store-maintained timestamps and a soft-delete marker. Rows are never
// hard-deleted; a deleted row simply disappears from every read.
type Base struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns an ID when the caller did not. IDs are immutable once
// assigned.
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// EntityID returns the primary key.
func (b *Base) EntityID() uuid.UUID {
	return b.ID
}

// SetEntityID overrides the primary key. Used by handlers to pin the key from
// the URL so a request body can never move a row.
func (b *Base) SetEntityID(id uuid.UUID) {
	b.ID = id
}

// Entity is satisfied by every model through the embedded Base.
type Entity interface {
	EntityID() uuid.UUID
	SetEntityID(uuid.UUID)
}

// Validatable models check their own field constraints before any write.
type Validatable interface {
	Validate() error
}
