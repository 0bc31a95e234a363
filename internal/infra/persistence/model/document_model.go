package model

import (
	"time"

	"github.com/google/uuid"
)

// NonprofitDocumentModel mirrors the 'nonprofit_documents' table.
// Legacy rows carry the bytes inline in Data; current rows only reference StoragePath.
type NonprofitDocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NonprofitID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	MimeType    string    `gorm:"type:varchar(100);not null"`
	Size        int64     `gorm:"not null"`
	PageCount   int       `gorm:"not null;default:0"`
	StoragePath string    `gorm:"type:varchar(512)"`
	Data        []byte
	UploadedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NonprofitDocumentModel) TableName() string {
	return "nonprofit_documents"
}
