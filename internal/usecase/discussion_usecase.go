package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ContentInput is the writable part of a thread or announcement.
type ContentInput struct {
	Title    string
	Content  string
	Audience entity.AudienceGroup
}

// ContentPatch carries the fields to change. Nil fields are left as they are.
type ContentPatch struct {
	Title    *string
	Content  *string
	Audience *entity.AudienceGroup
}

// DiscussionUsecase is the thread and comment board. Reads are filtered to the caller's audiences;
// writes are limited to the author or an admin.
type DiscussionUsecase interface {
	ListThreads(ctx context.Context, principal entity.Principal) ([]*entity.Thread, error)
	GetThread(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Thread, error)
	CreateThread(ctx context.Context, principal entity.Principal, input *ContentInput) (*entity.Thread, error)
	UpdateThread(ctx context.Context, principal entity.Principal, id uuid.UUID, patch *ContentPatch) (*entity.Thread, error)
	DeleteThread(ctx context.Context, principal entity.Principal, id uuid.UUID) error

	ListComments(ctx context.Context, principal entity.Principal, threadID uuid.UUID) ([]*entity.Comment, error)
	AddComment(ctx context.Context, principal entity.Principal, threadID uuid.UUID, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, principal entity.Principal, threadID, commentID uuid.UUID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, principal entity.Principal, threadID, commentID uuid.UUID) error
}

// AnnouncementUsecase is admin broadcast content. Writes require ADMIN or STAFF.
type AnnouncementUsecase interface {
	List(ctx context.Context, principal entity.Principal) ([]*entity.Announcement, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Announcement, error)
	Create(ctx context.Context, principal entity.Principal, input *ContentInput) (*entity.Announcement, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, patch *ContentPatch) (*entity.Announcement, error)
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}
