package storage

import "time"

// CollectionModel is the GORM model for the collections table.
// Each row holds one whole top-level collection serialized as JSON.
type CollectionModel struct {
	CreatedAt     time.Time
	Key           string    `gorm:"primaryKey"`
	SchemaVersion int       `gorm:"not null;default:1"`
	UpdatedAt     time.Time `gorm:"index:idx_updated_at"`
	Value         string    `gorm:"not null;default:'[]'"`
}

// TableName specifies the table name for GORM
func (CollectionModel) TableName() string { return "collections" }
