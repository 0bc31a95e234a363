package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadDocumentInput is one multipart upload. NonprofitID is only honoured for admins and staff.
type UploadDocumentInput struct {
	NonprofitID      *uuid.UUID
	FileName         string
	DeclaredMimeType string
	Data             []byte
}

// DocumentFile is a downloadable document body.
type DocumentFile struct {
	FileName string
	MimeType string
	Data     []byte
}

// DocumentUsecase handles nonprofit eligibility documents.
type DocumentUsecase interface {
	// Upload stores the file, attaches it to the nonprofit and resets approval to pending.
	Upload(ctx context.Context, principal entity.Principal, input *UploadDocumentInput) (*entity.NonprofitDocument, error)
	GetDocument(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*entity.NonprofitDocument, error)
	Download(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*DocumentFile, error)
}
