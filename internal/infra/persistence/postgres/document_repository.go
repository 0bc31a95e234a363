package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Create(ctx context.Context, doc *entity.NonprofitDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = newID()
	}
	docM := &model.NonprofitDocumentModel{
		ID:          doc.ID,
		NonprofitID: doc.NonprofitID,
		FileName:    doc.FileName,
		MimeType:    doc.MimeType,
		Size:        doc.Size,
		PageCount:   doc.PageCount,
		StoragePath: doc.StoragePath,
		Data:        doc.Data,
		UploadedAt:  doc.UploadedAt,
	}

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNonprofitNotFound
		}

		return errors.Wrap(err, "failed to create nonprofit document")
	}

	return nil
}

// FindByNonprofitID returns the most recently uploaded document of the nonprofit.
func (repo *documentRepository) FindByNonprofitID(ctx context.Context, nonprofitID uuid.UUID) (*entity.NonprofitDocument, error) {
	var docM model.NonprofitDocumentModel
	if err := repo.db.WithContext(ctx).
		Where("nonprofit_id = ?", nonprofitID).
		Order("uploaded_at DESC").
		First(&docM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find nonprofit document")
	}

	return &entity.NonprofitDocument{
		ID:          docM.ID,
		NonprofitID: docM.NonprofitID,
		FileName:    docM.FileName,
		MimeType:    docM.MimeType,
		Size:        docM.Size,
		PageCount:   docM.PageCount,
		StoragePath: docM.StoragePath,
		Data:        docM.Data,
		UploadedAt:  docM.UploadedAt,
	}, nil
}

func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NonprofitDocumentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete nonprofit document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}
