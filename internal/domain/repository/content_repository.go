package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrThreadNotFound       = errors.New("thread not found")
	ErrCommentNotFound      = errors.New("comment not found")
)

// Deleted rows are invisible to every Find/List below.

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	List(ctx context.Context, groups []entity.AudienceGroup) ([]*entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ThreadRepository interface {
	Create(ctx context.Context, thread *entity.Thread) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error)
	List(ctx context.Context, groups []entity.AudienceGroup) ([]*entity.Thread, error)
	Update(ctx context.Context, thread *entity.Thread) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	ListByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}
