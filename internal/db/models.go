package db

import (
	"time"

	"gorm.io/datatypes"
)

// LibrarySlot is a named durable slot holding one JSON-serialized prompt
// collection. The whole payload is rewritten on every mutation.
type LibrarySlot struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:64;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}
