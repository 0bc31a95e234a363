package impl

import (
	"context"
	"strings"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentServiceFixtures struct {
	service       usecase.DocumentUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	documentRepo  *mockRepo.MockDocumentRepository
	txDocuments   *mockRepo.MockDocumentRepository
	nonprofitRepo *mockRepo.MockNonprofitRepository
	txNonprofits  *mockRepo.MockNonprofitRepository
	userRepo      *mockRepo.MockUserRepository
	storage       *mockSvc.MockDocumentStorage
	inspector     *mockSvc.MockDocumentInspector
}

func createTestDocumentService(t *testing.T) documentServiceFixtures {
	f := documentServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		documentRepo:  mockRepo.NewMockDocumentRepository(t),
		txDocuments:   mockRepo.NewMockDocumentRepository(t),
		nonprofitRepo: mockRepo.NewMockNonprofitRepository(t),
		txNonprofits:  mockRepo.NewMockNonprofitRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		storage:       mockSvc.NewMockDocumentStorage(t),
		inspector:     mockSvc.NewMockDocumentInspector(t),
	}
	srv := NewDocumentService(DocumentServiceParams{
		TxManager:     f.txManager,
		DocumentRepo:  f.documentRepo,
		NonprofitRepo: f.nonprofitRepo,
		UserRepo:      f.userRepo,
		Storage:       f.storage,
		Inspector:     f.inspector,
		Logger:        newTestLogger(),
	}).(*documentService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func (f documentServiceFixtures) expectCommit() {
	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().NewDocumentRepository().Return(f.txDocuments)
	f.factory.EXPECT().NewNonprofitRepository().Return(f.txNonprofits)
}

func pdfUpload(nonprofitID *uuid.UUID) *usecase.UploadDocumentInput {
	return &usecase.UploadDocumentInput{
		NonprofitID:      nonprofitID,
		FileName:         "501c3.pdf",
		DeclaredMimeType: entity.MimeTypePDF,
		Data:             []byte("%PDF-1.4 ..."),
	}
}

func TestDocumentService_Upload_FirstDocument(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	principal := nonprofitCaller(fx.userRepo, nonprofitID)
	input := pdfUpload(nil)

	fx.inspector.EXPECT().Inspect(input.Data).Return(&service.DocumentInfo{MimeType: entity.MimeTypePDF, Extension: ".pdf", PageCount: 2}, nil)
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)
	fx.documentRepo.EXPECT().FindByNonprofitID(ctx, nonprofitID).Return(nil, repository.ErrDocumentNotFound)
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "nonprofits/"+nonprofitID.String()+"/") && strings.HasSuffix(key, ".pdf")
		}), input.Data, entity.MimeTypePDF).
		Return(nil)
	fx.expectCommit()
	fx.txDocuments.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NonprofitDocument")).Return(nil)
	fx.txNonprofits.EXPECT().AttachDocument(ctx, nonprofitID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	doc, err := fx.service.Upload(ctx, principal, input)
	require.NoError(t, err)
	assert.Equal(t, nonprofitID, doc.NonprofitID)
	assert.Equal(t, int64(len(input.Data)), doc.Size)
	assert.Equal(t, 2, doc.PageCount)
	assert.Equal(t, testNow, doc.UploadedAt)
	assert.False(t, doc.IsInline())
}

func TestDocumentService_Upload_ReplacesPrevious(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	previous := &entity.NonprofitDocument{ID: uuid.New(), StoragePath: "nonprofits/old.pdf"}
	input := pdfUpload(&nonprofitID)

	fx.inspector.EXPECT().Inspect(input.Data).Return(&service.DocumentInfo{MimeType: entity.MimeTypePDF, Extension: ".pdf", PageCount: 1}, nil)
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)
	fx.documentRepo.EXPECT().FindByNonprofitID(ctx, nonprofitID).Return(previous, nil)
	fx.storage.EXPECT().Put(ctx, mock.Anything, input.Data, entity.MimeTypePDF).Return(nil)
	fx.expectCommit()
	fx.txDocuments.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txNonprofits.EXPECT().AttachDocument(ctx, nonprofitID, mock.Anything).Return(nil)
	fx.txDocuments.EXPECT().Delete(ctx, previous.ID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "nonprofits/old.pdf").Return(errors.New("bucket unavailable"))

	_, err := fx.service.Upload(ctx, staffPrincipal, input)
	require.NoError(t, err)
}

func TestDocumentService_Upload_RollbackRemovesBlob(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	input := pdfUpload(&nonprofitID)

	var storedKey string
	fx.inspector.EXPECT().Inspect(input.Data).Return(&service.DocumentInfo{MimeType: entity.MimeTypePDF, Extension: ".pdf", PageCount: 1}, nil)
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)
	fx.documentRepo.EXPECT().FindByNonprofitID(ctx, nonprofitID).Return(nil, repository.ErrDocumentNotFound)
	fx.storage.EXPECT().Put(ctx, mock.Anything, input.Data, entity.MimeTypePDF).
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			storedKey = key
			return nil
		})
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDocumentRepository().Return(fx.txDocuments)
	fx.txDocuments.EXPECT().Create(ctx, mock.Anything).Return(errors.New("deadlock detected"))
	fx.storage.EXPECT().
		Delete(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)
			return nil
		})

	_, err := fx.service.Upload(ctx, adminPrincipal, input)
	require.Error(t, err)
}

func TestDocumentService_Upload_Rejections(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("declared type not allowed", func(t *testing.T) {
		fx := createTestDocumentService(t)
		input := pdfUpload(&nonprofitID)
		input.DeclaredMimeType = "application/zip"

		_, err := fx.service.Upload(context.Background(), adminPrincipal, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
	})

	t.Run("content does not match declared type", func(t *testing.T) {
		fx := createTestDocumentService(t)
		input := pdfUpload(&nonprofitID)
		fx.inspector.EXPECT().Inspect(input.Data).Return(&service.DocumentInfo{MimeType: entity.MimeTypePNG}, nil)

		_, err := fx.service.Upload(context.Background(), adminPrincipal, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestDocumentService(t)
		input := pdfUpload(&nonprofitID)
		fx.inspector.EXPECT().Inspect(input.Data).Return(nil, domainerrors.ErrFileTooLarge)

		_, err := fx.service.Upload(context.Background(), adminPrincipal, input)
		assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("operator must name a nonprofit", func(t *testing.T) {
		fx := createTestDocumentService(t)

		_, err := fx.service.Upload(context.Background(), adminPrincipal, pdfUpload(nil))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("nonprofit uploading for another", func(t *testing.T) {
		fx := createTestDocumentService(t)
		principal := nonprofitCaller(fx.userRepo, uuid.New())

		_, err := fx.service.Upload(context.Background(), principal, pdfUpload(&nonprofitID))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("supplier", func(t *testing.T) {
		fx := createTestDocumentService(t)

		_, err := fx.service.Upload(context.Background(), entity.Principal{Role: entity.RoleSupplier}, pdfUpload(&nonprofitID))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestDocumentService_Download(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("inline legacy row", func(t *testing.T) {
		fx := createTestDocumentService(t)
		fx.documentRepo.EXPECT().FindByNonprofitID(mock.Anything, nonprofitID).
			Return(&entity.NonprofitDocument{FileName: "a.png", MimeType: entity.MimeTypePNG, Data: []byte("png")}, nil)

		file, err := fx.service.Download(context.Background(), adminPrincipal, nonprofitID)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), file.Data)
		assert.Equal(t, "a.png", file.FileName)
	})

	t.Run("stored blob", func(t *testing.T) {
		fx := createTestDocumentService(t)
		fx.documentRepo.EXPECT().FindByNonprofitID(mock.Anything, nonprofitID).
			Return(&entity.NonprofitDocument{MimeType: entity.MimeTypePDF, StoragePath: "nonprofits/x.pdf"}, nil)
		fx.storage.EXPECT().Get(mock.Anything, "nonprofits/x.pdf").Return([]byte("%PDF"), nil)

		file, err := fx.service.Download(context.Background(), staffPrincipal, nonprofitID)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), file.Data)
	})

	t.Run("no document", func(t *testing.T) {
		fx := createTestDocumentService(t)
		fx.documentRepo.EXPECT().FindByNonprofitID(mock.Anything, nonprofitID).Return(nil, repository.ErrDocumentNotFound)

		_, err := fx.service.Download(context.Background(), adminPrincipal, nonprofitID)
		assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
	})
}
