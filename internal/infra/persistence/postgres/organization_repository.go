package postgres

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = newID()
	}
	supplierM := &model.SupplierModel{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Cadence: string(supplier.Cadence),
	}

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSupplierName
		}

		return errors.Wrap(err, "failed to create supplier")
	}

	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&supplierM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

type nonprofitRepository struct {
	db *gorm.DB
}

// NewNonprofitRepository is the constructor for nonprofitRepository.
func NewNonprofitRepository(db *gorm.DB) repository.NonprofitRepository {
	return &nonprofitRepository{db: db}
}

// Create always stores the nonprofit unreviewed, whatever approval the entity carries.
func (repo *nonprofitRepository) Create(ctx context.Context, nonprofit *entity.Nonprofit) error {
	if nonprofit.ID == uuid.Nil {
		nonprofit.ID = newID()
	}
	nonprofit.DocumentApproval = nil
	nonprofitM := fromNonprofitDomain(nonprofit)

	if err := repo.db.WithContext(ctx).Create(nonprofitM).Error; err != nil {
		return errors.Wrap(err, "failed to create nonprofit")
	}

	nonprofit.CreatedAt = nonprofitM.CreatedAt
	nonprofit.UpdatedAt = nonprofitM.UpdatedAt

	return nil
}

func (repo *nonprofitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Nonprofit, error) {
	var nonprofitM model.NonprofitModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&nonprofitM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNonprofitNotFound
		}

		return nil, errors.Wrap(err, "failed to find nonprofit")
	}

	return toNonprofitDomain(&nonprofitM), nil
}

func (repo *nonprofitRepository) List(ctx context.Context, filter repository.NonprofitFilter) ([]*entity.Nonprofit, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.NonprofitModel{})
	if filter.Approval != nil {
		switch *filter.Approval {
		case entity.ApprovalPending:
			query = query.Where("nonprofit_document_approval IS NULL")
		case entity.ApprovalApproved:
			query = query.Where("nonprofit_document_approval = ?", true)
		case entity.ApprovalRejected:
			query = query.Where("nonprofit_document_approval = ?", false)
		}
	}

	var nonprofitModels []*model.NonprofitModel
	if err := query.Order("created_at ASC").Find(&nonprofitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nonprofits")
	}

	nonprofits := make([]*entity.Nonprofit, 0, len(nonprofitModels))
	for _, nonprofitM := range nonprofitModels {
		nonprofits = append(nonprofits, toNonprofitDomain(nonprofitM))
	}

	return nonprofits, nil
}

func (repo *nonprofitRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return repo.update(ctx, id, map[string]any{
		"nonprofit_document_approval": approved,
		"updated_at":                  time.Now(),
	})
}

// AttachDocument points the nonprofit at a new document and resets approval to unreviewed.
func (repo *nonprofitRepository) AttachDocument(ctx context.Context, id uuid.UUID, documentID uuid.UUID) error {
	return repo.update(ctx, id, map[string]any{
		"nonprofit_document_id":       documentID,
		"nonprofit_document_approval": gorm.Expr("NULL"),
		"updated_at":                  time.Now(),
	})
}

func (repo *nonprofitRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.NonprofitModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update nonprofit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNonprofitNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	return &entity.Supplier{
		ID:        data.ID,
		Name:      data.Name,
		Cadence:   entity.Cadence(data.Cadence),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toNonprofitDomain(data *model.NonprofitModel) *entity.Nonprofit {
	fundingSources := []string(data.FundingSources)
	if fundingSources == nil {
		fundingSources = []string{}
	}

	return &entity.Nonprofit{
		ID:                data.ID,
		Name:              data.Name,
		OrganizationType:  entity.OrganizationType(data.OrganizationType),
		DocumentID:        data.NonprofitDocumentID,
		DocumentApproval:  data.NonprofitDocumentApproval,
		HasColdStorage:    data.ColdStorageSpace,
		HasShelfSpace:     data.ShelfSpace,
		HasTransportation: data.TransportationAvailable,
		FundingSources:    fundingSources,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromNonprofitDomain(data *entity.Nonprofit) *model.NonprofitModel {
	return &model.NonprofitModel{
		ID:                        data.ID,
		Name:                      data.Name,
		OrganizationType:          string(data.OrganizationType),
		NonprofitDocumentID:       data.DocumentID,
		NonprofitDocumentApproval: data.DocumentApproval,
		ColdStorageSpace:          data.HasColdStorage,
		ShelfSpace:                data.HasShelfSpace,
		TransportationAvailable:   data.HasTransportation,
		FundingSources:            datatypes.NewJSONSlice(data.FundingSources),
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}
