package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. It links to at most one organization (Supplier xor Nonprofit)
// and optionally to a ProductInterests survey.
type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	PasswordHash    string     `json:"-"`
	Role            Role       `json:"role"`
	SupplierID      *uuid.UUID `json:"supplierId,omitempty"`
	NonprofitID     *uuid.UUID `json:"nonprofitId,omitempty"`
	ProductSurveyID *uuid.UUID `json:"productSurveyId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// HasOrganization reports whether the user already completed onboarding.
func (u *User) HasOrganization() bool {
	return u.SupplierID != nil || u.NonprofitID != nil
}

// Recipient is a resolved email target for notification fan-out.
type Recipient struct {
	UserID      uuid.UUID
	Email       string
	Name        string
	NonprofitID *uuid.UUID
	SupplierID  *uuid.UUID
}
