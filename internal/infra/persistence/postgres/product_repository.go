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

// productRepository implements repository.ProductRepository.
// A product request row owns its product_types and pickup_infos rows.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product type, pickup info and product request together.
func (repo *productRepository) Create(ctx context.Context, product *entity.ProductRequest) error {
	if product.ID == uuid.Nil {
		product.ID = newID()
	}
	if product.Status == "" {
		product.Status = entity.ProductStatusAvailable
	}
	if product.ProductType == nil {
		product.ProductType = &entity.ProductType{}
	}
	if product.ProductType.ID == uuid.Nil {
		product.ProductType.ID = newID()
	}
	if product.PickupInfo == nil {
		return errors.New("pickup info is required")
	}
	if product.PickupInfo.ID == uuid.Nil {
		product.PickupInfo.ID = newID()
	}
	product.ProductTypeID = product.ProductType.ID
	product.PickupInfoID = product.PickupInfo.ID

	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(productM.ProductType).Error; err != nil {
			return errors.Wrap(err, "failed to create product type")
		}
		if err := tx.Create(productM.PickupInfo).Error; err != nil {
			return errors.Wrap(err, "failed to create pickup info")
		}

		return errors.Wrap(
			tx.Omit("ProductType", "PickupInfo").Create(productM).Error,
			"failed to create product request",
		)
	})
	if err != nil {
		return err
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductRequest, error) {
	var productM model.ProductRequestModel
	if err := repo.preloaded(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product request")
	}

	return toProductDomain(&productM), nil
}

// List reads from a replica when one is configured. Results are ordered oldest first.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.ProductRequest, error) {
	query := repo.preloaded(ctx).Clauses(dbresolver.Read)

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.ClaimedByID != nil {
		query = query.Where("claimed_by_id = ?", *filter.ClaimedByID)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.UpdatedAfter != nil {
		query = query.Where("updated_at >= ?", *filter.UpdatedAfter)
	}
	if filter.PickupBetween != nil {
		query = query.Where(
			"pickup_info_id IN (?)",
			repo.db.WithContext(ctx).
				Clauses(dbresolver.Read).
				Model(&model.PickupInfoModel{}).
				Select("id").
				Where("pickup_date BETWEEN ? AND ?", filter.PickupBetween[0], filter.PickupBetween[1]),
		)
	}

	var productModels []*model.ProductRequestModel
	if err := query.Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product requests")
	}

	products := make([]*entity.ProductRequest, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Claim transitions AVAILABLE -> status in a single conditional update, so of two
// concurrent claims exactly one affects a row.
func (repo *productRepository) Claim(ctx context.Context, id, nonprofitID uuid.UUID, status entity.ProductStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ProductRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.ProductStatusAvailable)).
		Updates(map[string]any{
			"status":        string(status),
			"claimed_by_id": nonprofitID,
			"updated_at":    at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim product request")
	}
	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id, repository.ErrProductNotAvailable)
	}

	return nil
}

// Unclaim transitions a claimed product back to AVAILABLE with the same conditional-update guard.
func (repo *productRepository) Unclaim(ctx context.Context, id uuid.UUID, at time.Time) error {
	claimed := make([]string, 0, len(entity.ClaimedStatuses))
	for _, s := range entity.ClaimedStatuses {
		claimed = append(claimed, string(s))
	}

	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ProductRequestModel{}).
		Where("id = ? AND status IN ?", id, claimed).
		Updates(map[string]any{
			"status":        string(entity.ProductStatusAvailable),
			"claimed_by_id": gorm.Expr("NULL"),
			"updated_at":    at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unclaim product request")
	}
	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id, repository.ErrProductNotClaimed)
	}

	return nil
}

// Delete removes the product request with its product type and pickup info.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productM model.ProductRequestModel
		if err := tx.Where("id = ?", id).First(&productM).Error; err != nil {
			if isNotFound(err) {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product request")
		}

		if err := tx.Delete(&model.ProductRequestModel{}, "id = ?", id).Error; err != nil {
			return errors.Wrap(err, "failed to delete product request")
		}
		if err := tx.Delete(&model.ProductTypeModel{}, "id = ?", productM.ProductTypeID).Error; err != nil {
			return errors.Wrap(err, "failed to delete product type")
		}
		if err := tx.Delete(&model.PickupInfoModel{}, "id = ?", productM.PickupInfoID).Error; err != nil {
			return errors.Wrap(err, "failed to delete pickup info")
		}

		return nil
	})
}

func (repo *productRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("ProductType").Preload("PickupInfo")
}

// missOrConflict distinguishes a missing row from a row in the wrong state after a conditional update hit nothing.
func (repo *productRepository) missOrConflict(ctx context.Context, id uuid.UUID, conflict error) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ProductRequestModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check product request")
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	return conflict
}

type productInterestsRepository struct {
	db *gorm.DB
}

// NewProductInterestsRepository is the constructor for productInterestsRepository.
func NewProductInterestsRepository(db *gorm.DB) repository.ProductInterestsRepository {
	return &productInterestsRepository{db: db}
}

func (repo *productInterestsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductInterests, error) {
	var interestsM model.ProductInterestsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&interestsM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrInterestsNotFound
		}

		return nil, errors.Wrap(err, "failed to find product interests")
	}

	return &entity.ProductInterests{ID: interestsM.ID, CategoryFlags: toCategoryFlags(interestsM.CategoryColumns)}, nil
}

// FindByNonprofitID returns the survey of the earliest member user of the nonprofit that filled one in.
func (repo *productInterestsRepository) FindByNonprofitID(ctx context.Context, nonprofitID uuid.UUID) (*entity.ProductInterests, error) {
	var interestsM model.ProductInterestsModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.product_survey_id = product_interests.id").
		Where("users.nonprofit_id = ?", nonprofitID).
		Order("users.created_at ASC").
		First(&interestsM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrInterestsNotFound
		}

		return nil, errors.Wrap(err, "failed to find product interests by nonprofit")
	}

	return &entity.ProductInterests{ID: interestsM.ID, CategoryFlags: toCategoryFlags(interestsM.CategoryColumns)}, nil
}

// Save inserts or fully replaces the survey row.
func (repo *productInterestsRepository) Save(ctx context.Context, interests *entity.ProductInterests) error {
	if interests.ID == uuid.Nil {
		interests.ID = newID()
	}

	interestsM := &model.ProductInterestsModel{
		ID:              interests.ID,
		CategoryColumns: fromCategoryFlags(interests.CategoryFlags),
	}
	if err := repo.db.WithContext(ctx).Save(interestsM).Error; err != nil {
		return errors.Wrap(err, "failed to save product interests")
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryFlags(data model.CategoryColumns) entity.CategoryFlags {
	proteinTypes := make([]entity.ProteinType, 0, len(data.ProteinTypes))
	for _, p := range data.ProteinTypes {
		proteinTypes = append(proteinTypes, entity.ProteinType(p))
	}

	return entity.CategoryFlags{
		Protein:                               data.Protein,
		ProteinTypes:                          proteinTypes,
		ProteinSpecifics:                      data.ProteinSpecifics,
		Produce:                               data.Produce,
		ProduceSpecifics:                      data.ProduceSpecifics,
		ShelfStable:                           data.ShelfStable,
		ShelfStableSpecifics:                  data.ShelfStableSpecifics,
		ShelfStableIndividualServing:          data.ShelfStableIndividualServing,
		ShelfStableIndividualServingSpecifics: data.ShelfStableIndividualServingSpecifics,
		AlreadyPreparedFood:                   data.AlreadyPreparedFood,
		AlreadyPreparedFoodSpecifics:          data.AlreadyPreparedFoodSpecifics,
		Other:                                 data.Other,
		OtherSpecifics:                        data.OtherSpecifics,
	}
}

func fromCategoryFlags(data entity.CategoryFlags) model.CategoryColumns {
	proteinTypes := make([]string, 0, len(data.ProteinTypes))
	for _, p := range data.ProteinTypes {
		proteinTypes = append(proteinTypes, string(p))
	}

	return model.CategoryColumns{
		Protein:                               data.Protein,
		ProteinTypes:                          datatypes.NewJSONSlice(proteinTypes),
		ProteinSpecifics:                      data.ProteinSpecifics,
		Produce:                               data.Produce,
		ProduceSpecifics:                      data.ProduceSpecifics,
		ShelfStable:                           data.ShelfStable,
		ShelfStableSpecifics:                  data.ShelfStableSpecifics,
		ShelfStableIndividualServing:          data.ShelfStableIndividualServing,
		ShelfStableIndividualServingSpecifics: data.ShelfStableIndividualServingSpecifics,
		AlreadyPreparedFood:                   data.AlreadyPreparedFood,
		AlreadyPreparedFoodSpecifics:          data.AlreadyPreparedFoodSpecifics,
		Other:                                 data.Other,
		OtherSpecifics:                        data.OtherSpecifics,
	}
}

func toProductDomain(data *model.ProductRequestModel) *entity.ProductRequest {
	product := &entity.ProductRequest{
		ID:            data.ID,
		Name:          data.Name,
		Unit:          entity.Unit(data.Unit),
		Quantity:      data.Quantity,
		Description:   data.Description,
		Status:        entity.ProductStatus(data.Status),
		SupplierID:    data.SupplierID,
		ClaimedByID:   data.ClaimedByID,
		ProductTypeID: data.ProductTypeID,
		PickupInfoID:  data.PickupInfoID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.ProductType != nil {
		product.ProductType = &entity.ProductType{
			ID:            data.ProductType.ID,
			CategoryFlags: toCategoryFlags(data.ProductType.CategoryColumns),
		}
	}

	if data.PickupInfo != nil {
		timeframes := make([]entity.Timeframe, 0, len(data.PickupInfo.PickupTimeframe))
		for _, t := range data.PickupInfo.PickupTimeframe {
			timeframes = append(timeframes, entity.Timeframe(t))
		}
		product.PickupInfo = &entity.PickupInfo{
			ID:                 data.PickupInfo.ID,
			PickupDate:         data.PickupInfo.PickupDate,
			PickupTimeframes:   timeframes,
			PickupLocation:     data.PickupInfo.PickupLocation,
			PickupInstructions: data.PickupInfo.PickupInstructions,
			ContactName:        data.PickupInfo.ContactName,
			ContactPhone:       data.PickupInfo.ContactPhone,
		}
	}

	return product
}

func fromProductDomain(data *entity.ProductRequest) *model.ProductRequestModel {
	productM := &model.ProductRequestModel{
		ID:            data.ID,
		Name:          data.Name,
		Unit:          string(data.Unit),
		Quantity:      data.Quantity,
		Description:   data.Description,
		Status:        string(data.Status),
		SupplierID:    data.SupplierID,
		ClaimedByID:   data.ClaimedByID,
		ProductTypeID: data.ProductTypeID,
		PickupInfoID:  data.PickupInfoID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.ProductType != nil {
		productM.ProductType = &model.ProductTypeModel{
			ID:              data.ProductType.ID,
			CategoryColumns: fromCategoryFlags(data.ProductType.CategoryFlags),
		}
	}

	if data.PickupInfo != nil {
		timeframes := make([]string, 0, len(data.PickupInfo.PickupTimeframes))
		for _, t := range data.PickupInfo.PickupTimeframes {
			timeframes = append(timeframes, string(t))
		}
		productM.PickupInfo = &model.PickupInfoModel{
			ID:                 data.PickupInfo.ID,
			PickupDate:         data.PickupInfo.PickupDate,
			PickupTimeframe:    datatypes.NewJSONSlice(timeframes),
			PickupLocation:     data.PickupInfo.PickupLocation,
			PickupInstructions: data.PickupInfo.PickupInstructions,
			ContactName:        data.PickupInfo.ContactName,
			ContactPhone:       data.PickupInfo.ContactPhone,
		}
	}

	return productM
}
