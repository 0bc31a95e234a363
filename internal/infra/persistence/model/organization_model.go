package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Cadence   string    `gorm:"type:varchar(20);not null;default:TBD"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// NonprofitModel mirrors the 'nonprofits' table.
// NonprofitDocumentApproval is tri-state: NULL means the document has not been reviewed.
type NonprofitModel struct {
	ID                        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                      string     `gorm:"type:varchar(255);not null"`
	OrganizationType          string     `gorm:"type:varchar(30);not null"`
	NonprofitDocumentID       *uuid.UUID `gorm:"type:uuid"`
	NonprofitDocumentApproval *bool      `gorm:"index"`
	ColdStorageSpace          bool       `gorm:"not null;default:false"`
	ShelfSpace                bool       `gorm:"not null;default:false"`
	TransportationAvailable   bool       `gorm:"not null;default:false"`
	FundingSources            datatypes.JSONSlice[string]
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName explicitly sets the table name for GORM.
func (NonprofitModel) TableName() string {
	return "nonprofits"
}
