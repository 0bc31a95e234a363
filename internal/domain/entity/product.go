package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus is the claim state of a ProductRequest.
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "AVAILABLE"
	ProductStatusReserved  ProductStatus = "RESERVED"
	ProductStatusPending   ProductStatus = "PENDING"
)

// ProductStatuses lists every status in display order.
var ProductStatuses = []ProductStatus{ProductStatusAvailable, ProductStatusReserved, ProductStatusPending}

// ClaimedStatuses are the statuses that count as "claimed" everywhere.
var ClaimedStatuses = []ProductStatus{ProductStatusReserved, ProductStatusPending}

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusReserved, ProductStatusPending:
		return true
	default:
		return false
	}
}

func (s ProductStatus) IsClaimed() bool {
	return s == ProductStatusReserved || s == ProductStatusPending
}

// Unit is the measurement unit of a product quantity.
type Unit string

const (
	UnitPounds    Unit = "POUNDS"
	UnitKilograms Unit = "KILOGRAMS"
	UnitOunces    Unit = "OUNCES"
	UnitGallons   Unit = "GALLONS"
	UnitLiters    Unit = "LITERS"
	UnitCases     Unit = "CASES"
	UnitBoxes     Unit = "BOXES"
	UnitItems     Unit = "ITEMS"
	UnitServings  Unit = "SERVINGS"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitPounds, UnitKilograms, UnitOunces, UnitGallons, UnitLiters,
		UnitCases, UnitBoxes, UnitItems, UnitServings:
		return true
	default:
		return false
	}
}

// ProductRequest is a batch of surplus food posted by a supplier.
// ClaimedByID is non-nil exactly when Status is not AVAILABLE.
type ProductRequest struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Unit          Unit          `json:"unit"`
	Quantity      int           `json:"quantity"`
	Description   string        `json:"description"`
	Status        ProductStatus `json:"status"`
	SupplierID    uuid.UUID     `json:"supplierId"`
	ClaimedByID   *uuid.UUID    `json:"claimedById"`
	ProductTypeID uuid.UUID     `json:"productTypeId"`
	PickupInfoID  uuid.UUID     `json:"pickupInfoId"`
	ProductType   *ProductType  `json:"productType,omitempty"`
	PickupInfo    *PickupInfo   `json:"pickupInfo,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Flags returns the product's category flags, empty when the type is not loaded.
func (p *ProductRequest) Flags() CategoryFlags {
	if p.ProductType == nil {
		return CategoryFlags{}
	}

	return p.ProductType.CategoryFlags
}

// ClaimDuration is the time from posting to the last status change.
func (p *ProductRequest) ClaimDuration() time.Duration {
	return p.UpdatedAt.Sub(p.CreatedAt)
}

// Timeframe is a pickup slot.
type Timeframe string

const (
	TimeframeEarlyMorning Timeframe = "EARLY_MORNING"
	TimeframeMorning      Timeframe = "MORNING"
	TimeframeMidday       Timeframe = "MIDDAY"
	TimeframeAfternoon    Timeframe = "AFTERNOON"
	TimeframeEvening      Timeframe = "EVENING"
)

func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeEarlyMorning, TimeframeMorning, TimeframeMidday, TimeframeAfternoon, TimeframeEvening:
		return true
	default:
		return false
	}
}

// PickupInfo is where and when a product can be collected.
type PickupInfo struct {
	ID                 uuid.UUID   `json:"id"`
	PickupDate         time.Time   `json:"pickupDate"`
	PickupTimeframes   []Timeframe `json:"pickupTimeframe"`
	PickupLocation     string      `json:"pickupLocation"`
	PickupInstructions string      `json:"pickupInstructions"`
	ContactName        string      `json:"contactName"`
	ContactPhone       string      `json:"contactPhone"`
}

// ProductFilter narrows product listings. Zero values mean "any".
type ProductFilter struct {
	Statuses      []ProductStatus
	SupplierID    *uuid.UUID
	ClaimedByID   *uuid.UUID
	CreatedAfter  *time.Time
	UpdatedAfter  *time.Time
	PickupBetween *[2]time.Time
}
