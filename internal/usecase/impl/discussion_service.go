package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type discussionService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
	now         func() time.Time
}

// DiscussionServiceParams holds dependencies for DiscussionService, injected by Fx.
type DiscussionServiceParams struct {
	fx.In

	ThreadRepo  repository.ThreadRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

func NewDiscussionService(params DiscussionServiceParams) usecase.DiscussionUsecase {
	return &discussionService{
		threadRepo:  params.ThreadRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *discussionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// canSee reports whether the principal's role may read content addressed to group.
func canSee(principal entity.Principal, group entity.AudienceGroup) bool {
	return slices.Contains(entity.VisibleGroups(principal.Role), group)
}

// validAudience checks the group exists and that the author could read their own post.
func validAudience(principal entity.Principal, group entity.AudienceGroup) error {
	if !group.IsValid() {
		return domainerrors.ErrInvalidGroupType
	}
	if !canSee(principal, group) {
		return domainerrors.ErrForbidden.WithMessage("You cannot post to this group")
	}

	return nil
}

func canModerate(principal entity.Principal, authorID uuid.UUID) bool {
	return principal.UserID == authorID || principal.Is(entity.RoleAdmin)
}

func (srv *discussionService) ListThreads(ctx context.Context, principal entity.Principal) ([]*entity.Thread, error) {
	threads, err := srv.threadRepo.List(ctx, entity.VisibleGroups(principal.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list threads")
	}

	return threads, nil
}

func (srv *discussionService) GetThread(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Thread, error) {
	return srv.visibleThread(ctx, principal, id)
}

func (srv *discussionService) CreateThread(ctx context.Context, principal entity.Principal, input *usecase.ContentInput) (*entity.Thread, error) {
	if err := validAudience(principal, input.Audience); err != nil {
		return nil, err
	}

	thread := &entity.Thread{
		AuthorID: principal.UserID,
		Title:    input.Title,
		Content:  input.Content,
		Audience: input.Audience,
		State:    entity.Active{},
	}
	if err := srv.threadRepo.Create(ctx, thread); err != nil {
		return nil, errors.Wrap(err, "failed to create thread")
	}

	srv.log(ctx).Info("Thread created", slog.String("threadID", thread.ID.String()), slog.String("group", string(thread.Audience)))

	return thread, nil
}

func (srv *discussionService) UpdateThread(ctx context.Context, principal entity.Principal, id uuid.UUID, patch *usecase.ContentPatch) (*entity.Thread, error) {
	thread, err := srv.visibleThread(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if !canModerate(principal, thread.AuthorID) {
		return nil, domainerrors.ErrForbidden
	}

	if patch.Audience != nil {
		if err := validAudience(principal, *patch.Audience); err != nil {
			return nil, err
		}
		thread.Audience = *patch.Audience
	}
	if patch.Title != nil {
		thread.Title = *patch.Title
	}
	if patch.Content != nil {
		thread.Content = *patch.Content
	}

	if err := srv.threadRepo.Update(ctx, thread); err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to update thread")
	}

	return thread, nil
}

func (srv *discussionService) DeleteThread(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	thread, err := srv.visibleThread(ctx, principal, id)
	if err != nil {
		return err
	}
	if !canModerate(principal, thread.AuthorID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.threadRepo.SoftDelete(ctx, id, srv.now()); err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return domainerrors.ErrThreadNotFound
		}

		return errors.Wrap(err, "failed to delete thread")
	}

	srv.log(ctx).Info("Thread deleted", slog.String("threadID", id.String()))

	return nil
}

func (srv *discussionService) ListComments(ctx context.Context, principal entity.Principal, threadID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.visibleThread(ctx, principal, threadID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *discussionService) AddComment(ctx context.Context, principal entity.Principal, threadID uuid.UUID, content string) (*entity.Comment, error) {
	if _, err := srv.visibleThread(ctx, principal, threadID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ThreadID: threadID,
		AuthorID: principal.UserID,
		Content:  content,
		State:    entity.Active{},
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *discussionService) UpdateComment(ctx context.Context, principal entity.Principal, threadID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := srv.ownedComment(ctx, principal, threadID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

func (srv *discussionService) DeleteComment(ctx context.Context, principal entity.Principal, threadID, commentID uuid.UUID) error {
	if _, err := srv.ownedComment(ctx, principal, threadID, commentID); err != nil {
		return err
	}

	if err := srv.commentRepo.SoftDelete(ctx, commentID, srv.now()); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

// visibleThread hides threads outside the caller's audiences as not found.
func (srv *discussionService) visibleThread(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Thread, error) {
	thread, err := srv.threadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}
	if !canSee(principal, thread.Audience) {
		return nil, domainerrors.ErrThreadNotFound
	}

	return thread, nil
}

func (srv *discussionService) ownedComment(ctx context.Context, principal entity.Principal, threadID, commentID uuid.UUID) (*entity.Comment, error) {
	if _, err := srv.visibleThread(ctx, principal, threadID); err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}
	if comment.ThreadID != threadID {
		return nil, domainerrors.ErrCommentNotFound
	}
	if !canModerate(principal, comment.AuthorID) {
		return nil, domainerrors.ErrForbidden
	}

	return comment, nil
}
