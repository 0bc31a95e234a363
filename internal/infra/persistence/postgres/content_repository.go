package postgres

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Soft-deleted rows are hidden by gorm.DeletedAt scoping, so FindByID on a deleted row reports not-found.

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	if announcement.ID == uuid.Nil {
		announcement.ID = newID()
	}
	announcementM := &model.AnnouncementModel{
		ID:        announcement.ID,
		AuthorID:  announcement.AuthorID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		GroupType: string(announcement.Audience),
	}

	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		return errors.Wrap(err, "failed to create announcement")
	}

	announcement.State = entity.Active{}
	announcement.CreatedAt = announcementM.CreatedAt
	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

func (repo *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&announcementM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement")
	}

	return toAnnouncementDomain(&announcementM), nil
}

// List returns active announcements addressed to any of groups, newest first.
func (repo *announcementRepository) List(ctx context.Context, groups []entity.AudienceGroup) ([]*entity.Announcement, error) {
	var announcementModels []*model.AnnouncementModel
	if err := repo.db.WithContext(ctx).
		Where("group_type IN ?", groupStrings(groups)).
		Order("created_at DESC").
		Find(&announcementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(announcementModels))
	for _, announcementM := range announcementModels {
		announcements = append(announcements, toAnnouncementDomain(announcementM))
	}

	return announcements, nil
}

func (repo *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", announcement.ID).
		Updates(map[string]any{
			"title":      announcement.Title,
			"content":    announcement.Content,
			"group_type": string(announcement.Audience),
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update announcement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	announcement.UpdatedAt = now

	return nil
}

func (repo *announcementRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, repo.db, &model.AnnouncementModel{}, id, at, repository.ErrAnnouncementNotFound)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository is the constructor for threadRepository.
func NewThreadRepository(db *gorm.DB) repository.ThreadRepository {
	return &threadRepository{db: db}
}

func (repo *threadRepository) Create(ctx context.Context, thread *entity.Thread) error {
	if thread.ID == uuid.Nil {
		thread.ID = newID()
	}
	threadM := &model.ThreadModel{
		ID:        thread.ID,
		AuthorID:  thread.AuthorID,
		Title:     thread.Title,
		Content:   thread.Content,
		GroupType: string(thread.Audience),
	}

	if err := repo.db.WithContext(ctx).Omit("Comments").Create(threadM).Error; err != nil {
		return errors.Wrap(err, "failed to create thread")
	}

	thread.State = entity.Active{}
	thread.CreatedAt = threadM.CreatedAt
	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

// FindByID loads the thread with its active comments in creation order.
func (repo *threadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error) {
	var threadM model.ThreadModel
	if err := repo.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&threadM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}

	return toThreadDomain(&threadM), nil
}

// List returns active threads addressed to any of groups, newest first, without comments.
func (repo *threadRepository) List(ctx context.Context, groups []entity.AudienceGroup) ([]*entity.Thread, error) {
	var threadModels []*model.ThreadModel
	if err := repo.db.WithContext(ctx).
		Where("group_type IN ?", groupStrings(groups)).
		Order("created_at DESC").
		Find(&threadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list threads")
	}

	threads := make([]*entity.Thread, 0, len(threadModels))
	for _, threadM := range threadModels {
		threads = append(threads, toThreadDomain(threadM))
	}

	return threads, nil
}

func (repo *threadRepository) Update(ctx context.Context, thread *entity.Thread) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ThreadModel{}).
		Where("id = ?", thread.ID).
		Updates(map[string]any{
			"title":      thread.Title,
			"content":    thread.Content,
			"group_type": string(thread.Audience),
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update thread")
	}
	if result.RowsAffected == 0 {
		return repository.ErrThreadNotFound
	}

	thread.UpdatedAt = now

	return nil
}

func (repo *threadRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, repo.db, &model.ThreadModel{}, id, at, repository.ErrThreadNotFound)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = newID()
	}
	commentM := &model.CommentModel{
		ID:       comment.ID,
		ThreadID: comment.ThreadID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrThreadNotFound
		}

		return errors.Wrap(err, "failed to create comment")
	}

	comment.State = entity.Active{}
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) ListByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	comment.UpdatedAt = now

	return nil
}

func (repo *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, repo.db, &model.CommentModel{}, id, at, repository.ErrCommentNotFound)
}

// softDelete stamps deleted_at on an active row. Already deleted rows count as missing.
func softDelete(ctx context.Context, db *gorm.DB, value any, id uuid.UUID, at time.Time, notFound error) error {
	result := db.WithContext(ctx).
		Model(value).
		Where("id = ?", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete")
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func groupStrings(groups []entity.AudienceGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, string(g))
	}

	return out
}

// --- Mapper Functions ---

func deletedAtPtr(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}

	return &d.Time
}

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	return &entity.Announcement{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Audience:  entity.AudienceGroup(data.GroupType),
		State:     entity.StateFromDeletedAt(deletedAtPtr(data.DeletedAt)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toThreadDomain(data *model.ThreadModel) *entity.Thread {
	thread := &entity.Thread{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Audience:  entity.AudienceGroup(data.GroupType),
		State:     entity.StateFromDeletedAt(deletedAtPtr(data.DeletedAt)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Comments != nil {
		thread.Comments = make([]*entity.Comment, 0, len(data.Comments))
		for _, commentM := range data.Comments {
			thread.Comments = append(thread.Comments, toCommentDomain(commentM))
		}
	}

	return thread
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		ThreadID:  data.ThreadID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		State:     entity.StateFromDeletedAt(deletedAtPtr(data.DeletedAt)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
