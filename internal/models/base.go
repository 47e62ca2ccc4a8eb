package models

import (
	"time"

	"roundup/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables and collections
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// Stamp assigns an id and timestamps for stores that have no ORM hooks.
func (b *Base) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
