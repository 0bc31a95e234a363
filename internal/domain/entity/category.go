package entity

import "github.com/google/uuid"

// Category is one of the six food category dimensions shared by products and interest surveys.
type Category string

const (
	CategoryProtein                      Category = "protein"
	CategoryProduce                      Category = "produce"
	CategoryShelfStable                  Category = "shelfStable"
	CategoryShelfStableIndividualServing Category = "shelfStableIndividualServing"
	CategoryAlreadyPreparedFood          Category = "alreadyPreparedFood"
	CategoryOther                        Category = "other"
)

// Categories lists every category in a stable order.
var Categories = []Category{
	CategoryProtein,
	CategoryProduce,
	CategoryShelfStable,
	CategoryShelfStableIndividualServing,
	CategoryAlreadyPreparedFood,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// ProteinType is a protein sub-type carried by the protein category.
type ProteinType string

const (
	ProteinBeef       ProteinType = "BEEF"
	ProteinPoultry    ProteinType = "POULTRY"
	ProteinPork       ProteinType = "PORK"
	ProteinFish       ProteinType = "FISH"
	ProteinSeafood    ProteinType = "SEAFOOD"
	ProteinEggs       ProteinType = "EGGS"
	ProteinDairy      ProteinType = "DAIRY"
	ProteinPlantBased ProteinType = "PLANT_BASED"
	ProteinOther      ProteinType = "OTHER"
)

func (p ProteinType) IsValid() bool {
	switch p {
	case ProteinBeef, ProteinPoultry, ProteinPork, ProteinFish, ProteinSeafood,
		ProteinEggs, ProteinDairy, ProteinPlantBased, ProteinOther:
		return true
	default:
		return false
	}
}

// CategoryFlags is the flags+free-text shape shared by ProductType and ProductInterests.
type CategoryFlags struct {
	Protein                               bool          `json:"protein"`
	ProteinTypes                          []ProteinType `json:"proteinTypes"`
	ProteinSpecifics                      string        `json:"proteinSpecifics,omitempty"`
	Produce                               bool          `json:"produce"`
	ProduceSpecifics                      string        `json:"produceSpecifics,omitempty"`
	ShelfStable                           bool          `json:"shelfStable"`
	ShelfStableSpecifics                  string        `json:"shelfStableSpecifics,omitempty"`
	ShelfStableIndividualServing          bool          `json:"shelfStableIndividualServing"`
	ShelfStableIndividualServingSpecifics string        `json:"shelfStableIndividualServingSpecifics,omitempty"`
	AlreadyPreparedFood                   bool          `json:"alreadyPreparedFood"`
	AlreadyPreparedFoodSpecifics          string        `json:"alreadyPreparedFoodSpecifics,omitempty"`
	Other                                 bool          `json:"other"`
	OtherSpecifics                        string        `json:"otherSpecifics,omitempty"`
}

// Has reports whether the flag for c is set.
func (f CategoryFlags) Has(c Category) bool {
	switch c {
	case CategoryProtein:
		return f.Protein
	case CategoryProduce:
		return f.Produce
	case CategoryShelfStable:
		return f.ShelfStable
	case CategoryShelfStableIndividualServing:
		return f.ShelfStableIndividualServing
	case CategoryAlreadyPreparedFood:
		return f.AlreadyPreparedFood
	case CategoryOther:
		return f.Other
	default:
		return false
	}
}

// Set returns the categories whose flag is true.
func (f CategoryFlags) Set() []Category {
	set := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if f.Has(c) {
			set = append(set, c)
		}
	}

	return set
}

// SharesAny is true when at least one category flag is true on both sides.
func (f CategoryFlags) SharesAny(other CategoryFlags) bool {
	for _, c := range Categories {
		if f.Has(c) && other.Has(c) {
			return true
		}
	}

	return false
}

// FlagsFor builds flags with exactly one category set.
func FlagsFor(c Category) CategoryFlags {
	var f CategoryFlags
	switch c {
	case CategoryProtein:
		f.Protein = true
	case CategoryProduce:
		f.Produce = true
	case CategoryShelfStable:
		f.ShelfStable = true
	case CategoryShelfStableIndividualServing:
		f.ShelfStableIndividualServing = true
	case CategoryAlreadyPreparedFood:
		f.AlreadyPreparedFood = true
	case CategoryOther:
		f.Other = true
	}

	return f
}

// ProductType describes what a posted product is. Immutable once created.
type ProductType struct {
	ID uuid.UUID `json:"id"`
	CategoryFlags
}

// ProductInterests is a user's survey of the categories their nonprofit wants.
type ProductInterests struct {
	ID uuid.UUID `json:"id"`
	CategoryFlags
}
