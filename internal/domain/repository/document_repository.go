package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("nonprofit document not found")

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.NonprofitDocument) error
	FindByNonprofitID(ctx context.Context, nonprofitID uuid.UUID) (*entity.NonprofitDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
