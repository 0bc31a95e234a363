package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cadence is a supplier's declared posting frequency.
type Cadence string

const (
	CadenceDaily    Cadence = "DAILY"
	CadenceWeekly   Cadence = "WEEKLY"
	CadenceBiweekly Cadence = "BIWEEKLY"
	CadenceMonthly  Cadence = "MONTHLY"
	CadenceTBD      Cadence = "TBD"
)

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceBiweekly, CadenceMonthly, CadenceTBD:
		return true
	default:
		return false
	}
}

type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cadence   Cadence   `json:"cadence"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrganizationType classifies a nonprofit.
type OrganizationType string

const (
	OrgTypeFoodBank        OrganizationType = "FOOD_BANK"
	OrgTypeFoodPantry      OrganizationType = "FOOD_PANTRY"
	OrgTypeShelter         OrganizationType = "SHELTER"
	OrgTypeStudentOrg      OrganizationType = "STUDENT_ORG"
	OrgTypeCommunityCenter OrganizationType = "COMMUNITY_CENTER"
	OrgTypeFaithBased      OrganizationType = "FAITH_BASED"
	OrgTypeOther           OrganizationType = "OTHER"
)

func (t OrganizationType) IsValid() bool {
	switch t {
	case OrgTypeFoodBank, OrgTypeFoodPantry, OrgTypeShelter, OrgTypeStudentOrg,
		OrgTypeCommunityCenter, OrgTypeFaithBased, OrgTypeOther:
		return true
	default:
		return false
	}
}

// ApprovalState is the three-valued reading of Nonprofit.DocumentApproval.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// Nonprofit is an organization that claims donated products.
// DocumentApproval is nil while the eligibility document awaits review.
type Nonprofit struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	OrganizationType  OrganizationType `json:"organizationType"`
	DocumentID        *uuid.UUID       `json:"nonprofitDocumentId,omitempty"`
	DocumentApproval  *bool            `json:"nonprofitDocumentApproval"`
	HasColdStorage    bool             `json:"coldStorageSpace"`
	HasShelfSpace     bool             `json:"shelfSpace"`
	HasTransportation bool             `json:"transportationAvailable"`
	FundingSources    []string         `json:"fundingSources"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// CanClaim is true only when approval is exactly true.
func (n *Nonprofit) CanClaim() bool {
	return n.DocumentApproval != nil && *n.DocumentApproval
}

func (n *Nonprofit) Approval() ApprovalState {
	switch {
	case n.DocumentApproval == nil:
		return ApprovalPending
	case *n.DocumentApproval:
		return ApprovalApproved
	default:
		return ApprovalRejected
	}
}
