package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryColumns is the six-flag category shape shared by product types and product interests.
type CategoryColumns struct {
	Protein                               bool `gorm:"not null;default:false"`
	ProteinTypes                          datatypes.JSONSlice[string]
	ProteinSpecifics                      string `gorm:"type:text"`
	Produce                               bool   `gorm:"not null;default:false"`
	ProduceSpecifics                      string `gorm:"type:text"`
	ShelfStable                           bool   `gorm:"not null;default:false"`
	ShelfStableSpecifics                  string `gorm:"type:text"`
	ShelfStableIndividualServing          bool   `gorm:"not null;default:false"`
	ShelfStableIndividualServingSpecifics string `gorm:"type:text"`
	AlreadyPreparedFood                   bool   `gorm:"not null;default:false"`
	AlreadyPreparedFoodSpecifics          string `gorm:"type:text"`
	Other                                 bool   `gorm:"not null;default:false"`
	OtherSpecifics                        string `gorm:"type:text"`
}

// ProductTypeModel mirrors the 'product_types' table. Rows are written once with their product request.
type ProductTypeModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTypeModel) TableName() string {
	return "product_types"
}

// ProductInterestsModel mirrors the 'product_interests' table (a user's product survey).
type ProductInterestsModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ProductInterestsModel) TableName() string {
	return "product_interests"
}

// PickupInfoModel mirrors the 'pickup_infos' table.
type PickupInfoModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickupDate         time.Time `gorm:"not null;index"`
	PickupTimeframe    datatypes.JSONSlice[string]
	PickupLocation     string `gorm:"type:text;not null"`
	PickupInstructions string `gorm:"type:text"`
	ContactName        string `gorm:"type:varchar(255)"`
	ContactPhone       string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (PickupInfoModel) TableName() string {
	return "pickup_infos"
}

// ProductRequestModel mirrors the 'product_requests' table.
// ClaimedByID is NULL exactly when Status is AVAILABLE.
type ProductRequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Unit          string     `gorm:"type:varchar(20);not null"`
	Quantity      int        `gorm:"not null"`
	Description   string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(20);not null;default:AVAILABLE;index"`
	SupplierID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClaimedByID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	PickupInfoID  uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time

	ProductType *ProductTypeModel `gorm:"foreignKey:ProductTypeID"`
	PickupInfo  *PickupInfoModel  `gorm:"foreignKey:PickupInfoID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductRequestModel) TableName() string {
	return "product_requests"
}
