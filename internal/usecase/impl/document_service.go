package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type documentService struct {
	txManager     repository.TransactionManager
	documentRepo  repository.DocumentRepository
	nonprofitRepo repository.NonprofitRepository
	userRepo      repository.UserRepository
	storage       service.DocumentStorage
	inspector     service.DocumentInspector
	logger        *slog.Logger
	now           func() time.Time
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DocumentRepo  repository.DocumentRepository
	NonprofitRepo repository.NonprofitRepository
	UserRepo      repository.UserRepository
	Storage       service.DocumentStorage
	Inspector     service.DocumentInspector
	Logger        *slog.Logger
}

func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		txManager:     params.TxManager,
		documentRepo:  params.DocumentRepo,
		nonprofitRepo: params.NonprofitRepo,
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		inspector:     params.Inspector,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func allowedDocumentType(mimeType string) bool {
	switch mimeType {
	case entity.MimeTypePDF, entity.MimeTypePNG, entity.MimeTypeJPEG:
		return true
	default:
		return false
	}
}

// Upload replaces the nonprofit's document. The new row and the approval reset commit together;
// the superseded blob is removed afterwards on a best-effort basis.
func (srv *documentService) Upload(ctx context.Context, principal entity.Principal, input *usecase.UploadDocumentInput) (*entity.NonprofitDocument, error) {
	nonprofitID, err := srv.targetNonprofit(ctx, principal, input.NonprofitID)
	if err != nil {
		return nil, err
	}

	if !allowedDocumentType(input.DeclaredMimeType) {
		return nil, domainerrors.ErrInvalidFileType
	}
	info, err := srv.inspector.Inspect(input.Data)
	if err != nil {
		return nil, err
	}
	if info.MimeType != input.DeclaredMimeType {
		return nil, domainerrors.ErrInvalidFileType.WithDetails(
			fmt.Sprintf("declared %s but content is %s", input.DeclaredMimeType, info.MimeType))
	}

	if _, err := findNonprofit(ctx, srv.nonprofitRepo, nonprofitID); err != nil {
		return nil, err
	}

	previous, err := srv.documentRepo.FindByNonprofitID(ctx, nonprofitID)
	if err != nil && !errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, errors.Wrap(err, "failed to find current document")
	}

	doc := &entity.NonprofitDocument{
		ID:          uuid.Must(uuid.NewV7()),
		NonprofitID: nonprofitID,
		FileName:    input.FileName,
		MimeType:    info.MimeType,
		Size:        int64(len(input.Data)),
		PageCount:   info.PageCount,
		UploadedAt:  srv.now(),
	}
	doc.StoragePath = fmt.Sprintf("nonprofits/%s/%s%s", nonprofitID, doc.ID, info.Extension)

	if err := srv.storage.Put(ctx, doc.StoragePath, input.Data, info.MimeType); err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documentRepo := repoFactory.NewDocumentRepository()
		if err := documentRepo.Create(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to create document")
		}
		if err := repoFactory.NewNonprofitRepository().AttachDocument(ctx, nonprofitID, doc.ID); err != nil {
			return errors.Wrap(err, "failed to attach document")
		}
		if previous != nil {
			return errors.Wrap(documentRepo.Delete(ctx, previous.ID), "failed to delete superseded document")
		}

		return nil
	})
	if err != nil {
		srv.deleteBlob(ctx, doc.StoragePath)

		return nil, err
	}

	if previous != nil && previous.StoragePath != "" {
		srv.deleteBlob(ctx, previous.StoragePath)
	}

	srv.log(ctx).Info("Nonprofit document uploaded",
		slog.String("nonprofitID", nonprofitID.String()),
		slog.String("documentID", doc.ID.String()),
		slog.String("mimeType", doc.MimeType),
		slog.Int64("size", doc.Size),
	)

	return doc, nil
}

func (srv *documentService) GetDocument(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*entity.NonprofitDocument, error) {
	if _, err := srv.targetNonprofit(ctx, principal, &nonprofitID); err != nil {
		return nil, err
	}

	doc, err := srv.documentRepo.FindByNonprofitID(ctx, nonprofitID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	return doc, nil
}

// Download serves inline bytes for legacy rows, otherwise reads the blob.
func (srv *documentService) Download(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*usecase.DocumentFile, error) {
	doc, err := srv.GetDocument(ctx, principal, nonprofitID)
	if err != nil {
		return nil, err
	}

	data := doc.Data
	if !doc.IsInline() {
		data, err = srv.storage.Get(ctx, doc.StoragePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read document")
		}
	}

	return &usecase.DocumentFile{
		FileName: doc.FileName,
		MimeType: doc.MimeType,
		Data:     data,
	}, nil
}

// targetNonprofit resolves which nonprofit the caller may act on. Nonprofit users are pinned to
// their own; operators must name one.
func (srv *documentService) targetNonprofit(ctx context.Context, principal entity.Principal, requested *uuid.UUID) (uuid.UUID, error) {
	switch {
	case principal.Role.IsPrivileged():
		if requested == nil {
			return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("nonprofitId is required")
		}

		return *requested, nil
	case principal.Is(entity.RoleNonprofit):
		own, err := callerNonprofitID(ctx, srv.userRepo, principal)
		if err != nil {
			return uuid.Nil, err
		}
		if requested != nil && *requested != own {
			return uuid.Nil, domainerrors.ErrForbidden
		}

		return own, nil
	default:
		return uuid.Nil, domainerrors.ErrForbidden
	}
}

func (srv *documentService) deleteBlob(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete document blob", slog.String("key", key), slog.Any("error", err))
	}
}
