package impl

import (
	"context"
	"log/slog"
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

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	logger           *slog.Logger
	now              func() time.Time
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	Logger           *slog.Logger
}

func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		announcementRepo: params.AnnouncementRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeWrite answers 401, not 403, to non-operators; clients rely on that status.
func authorizeWrite(principal entity.Principal) error {
	if !principal.Role.IsPrivileged() {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

func (srv *announcementService) List(ctx context.Context, principal entity.Principal) ([]*entity.Announcement, error) {
	announcements, err := srv.announcementRepo.List(ctx, entity.VisibleGroups(principal.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return announcements, nil
}

func (srv *announcementService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Announcement, error) {
	announcement, err := srv.announcementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, domainerrors.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement")
	}
	if !canSee(principal, announcement.Audience) {
		return nil, domainerrors.ErrAnnouncementNotFound
	}

	return announcement, nil
}

func (srv *announcementService) Create(ctx context.Context, principal entity.Principal, input *usecase.ContentInput) (*entity.Announcement, error) {
	if err := authorizeWrite(principal); err != nil {
		return nil, err
	}
	if !input.Audience.IsValid() {
		return nil, domainerrors.ErrInvalidGroupType
	}

	announcement := &entity.Announcement{
		AuthorID: principal.UserID,
		Title:    input.Title,
		Content:  input.Content,
		Audience: input.Audience,
		State:    entity.Active{},
	}
	if err := srv.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, errors.Wrap(err, "failed to create announcement")
	}

	srv.log(ctx).Info("Announcement created",
		slog.String("announcementID", announcement.ID.String()),
		slog.String("group", string(announcement.Audience)),
	)

	return announcement, nil
}

func (srv *announcementService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, patch *usecase.ContentPatch) (*entity.Announcement, error) {
	if err := authorizeWrite(principal); err != nil {
		return nil, err
	}

	announcement, err := srv.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if patch.Audience != nil {
		if !patch.Audience.IsValid() {
			return nil, domainerrors.ErrInvalidGroupType
		}
		announcement.Audience = *patch.Audience
	}
	if patch.Title != nil {
		announcement.Title = *patch.Title
	}
	if patch.Content != nil {
		announcement.Content = *patch.Content
	}

	if err := srv.announcementRepo.Update(ctx, announcement); err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, domainerrors.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to update announcement")
	}

	return announcement, nil
}

func (srv *announcementService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if err := authorizeWrite(principal); err != nil {
		return err
	}

	if err := srv.announcementRepo.SoftDelete(ctx, id, srv.now()); err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return domainerrors.ErrAnnouncementNotFound
		}

		return errors.Wrap(err, "failed to delete announcement")
	}

	srv.log(ctx).Info("Announcement deleted", slog.String("announcementID", id.String()))

	return nil
}
