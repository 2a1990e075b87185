package db

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot reads and writes one named library slot. It satisfies the store's
// persistence interface; the store is its only writer.
type Slot struct {
	conn *gorm.DB
	name string
}

func NewSlot(conn *gorm.DB, name string) *Slot {
	return &Slot{conn: conn, name: name}
}

// Load returns the current payload. ok is false when the slot has never
// been written.
func (s *Slot) Load() ([]byte, bool, error) {
	var record LibrarySlot
	err := s.conn.Where("name = ?", s.name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Payload), true, nil
}

// Save replaces the slot payload, creating the row on first write.
func (s *Slot) Save(payload []byte) error {
	record := LibrarySlot{
		Name:    s.name,
		Payload: datatypes.JSON(payload),
	}
	return s.conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
}
