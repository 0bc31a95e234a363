package entity

import (
	"time"

	"github.com/google/uuid"
)

// AudienceGroup scopes who can see an announcement or thread.
type AudienceGroup string

const (
	AudienceAll       AudienceGroup = "ALL"
	AudienceAdmin     AudienceGroup = "ADMIN"
	AudienceSupplier  AudienceGroup = "SUPPLIER"
	AudienceNonprofit AudienceGroup = "NONPROFIT"
)

func (g AudienceGroup) IsValid() bool {
	switch g {
	case AudienceAll, AudienceAdmin, AudienceSupplier, AudienceNonprofit:
		return true
	default:
		return false
	}
}

// VisibleGroups returns the audiences a role may read. Admins and staff read everything.
func VisibleGroups(role Role) []AudienceGroup {
	switch role {
	case RoleAdmin, RoleStaff:
		return []AudienceGroup{AudienceAll, AudienceAdmin, AudienceSupplier, AudienceNonprofit}
	case RoleSupplier:
		return []AudienceGroup{AudienceAll, AudienceSupplier}
	case RoleNonprofit:
		return []AudienceGroup{AudienceAll, AudienceNonprofit}
	default:
		return []AudienceGroup{AudienceAll}
	}
}

// ContentState is either Active or Deleted.
type ContentState interface {
	isContentState()
}

type Active struct{}

type Deleted struct {
	At time.Time
}

func (Active) isContentState()  {}
func (Deleted) isContentState() {}

// StateFromDeletedAt maps the persisted nullable column onto a ContentState.
func StateFromDeletedAt(deletedAt *time.Time) ContentState {
	if deletedAt == nil {
		return Active{}
	}

	return Deleted{At: *deletedAt}
}

// DeletedAt is the inverse of StateFromDeletedAt.
func DeletedAt(state ContentState) *time.Time {
	if d, ok := state.(Deleted); ok {
		at := d.At
		return &at
	}

	return nil
}

func IsDeleted(state ContentState) bool {
	_, ok := state.(Deleted)
	return ok
}

type Announcement struct {
	ID        uuid.UUID     `json:"id"`
	AuthorID  uuid.UUID     `json:"authorId"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Audience  AudienceGroup `json:"group"`
	State     ContentState  `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type Thread struct {
	ID        uuid.UUID     `json:"id"`
	AuthorID  uuid.UUID     `json:"authorId"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Audience  AudienceGroup `json:"group"`
	State     ContentState  `json:"-"`
	Comments  []*Comment    `json:"comments,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type Comment struct {
	ID        uuid.UUID    `json:"id"`
	ThreadID  uuid.UUID    `json:"threadId"`
	AuthorID  uuid.UUID    `json:"authorId"`
	Content   string       `json:"content"`
	State     ContentState `json:"-"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
