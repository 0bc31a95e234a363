// Package model holds the GORM persistence structs. They are exported so cmd/gen can generate query code from them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the repository before insert.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string     `gorm:"type:varchar(100)"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Role            string     `gorm:"type:varchar(20);not null;default:OTHER;index"`
	SupplierID      *uuid.UUID `gorm:"type:uuid;index"`
	NonprofitID     *uuid.UUID `gorm:"type:uuid;index"`
	ProductSurveyID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Supplier      *SupplierModel         `gorm:"foreignKey:SupplierID"`
	Nonprofit     *NonprofitModel        `gorm:"foreignKey:NonprofitID"`
	ProductSurvey *ProductInterestsModel `gorm:"foreignKey:ProductSurveyID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
