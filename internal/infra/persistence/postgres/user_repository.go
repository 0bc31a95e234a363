package postgres

import (
	"context"
	"strings"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}

	var userModels []*model.UserModel
	if err := query.Order("created_at ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("email", "name", "password_hash", "role", "supplier_id", "nonprofit_id", "product_survey_id", "updated_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) FindRecipientsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Recipient, error) {
	return repo.findRecipients(repo.db.WithContext(ctx).Where("users.supplier_id = ?", supplierID))
}

func (repo *userRepository) FindRecipientsByNonprofit(ctx context.Context, nonprofitID uuid.UUID) ([]*entity.Recipient, error) {
	return repo.findRecipients(repo.db.WithContext(ctx).Where("users.nonprofit_id = ?", nonprofitID))
}

// interestColumns maps each category to its product_interests flag column.
var interestColumns = map[entity.Category]string{
	entity.CategoryProtein:                      "product_interests.protein",
	entity.CategoryProduce:                      "product_interests.produce",
	entity.CategoryShelfStable:                  "product_interests.shelf_stable",
	entity.CategoryShelfStableIndividualServing: "product_interests.shelf_stable_individual_serving",
	entity.CategoryAlreadyPreparedFood:          "product_interests.already_prepared_food",
	entity.CategoryOther:                        "product_interests.other",
}

// FindInterestedRecipients returns users of approved nonprofits whose product survey
// shares at least one category with flags.
func (repo *userRepository) FindInterestedRecipients(ctx context.Context, flags entity.CategoryFlags) ([]*entity.Recipient, error) {
	categories := flags.Set()
	if len(categories) == 0 {
		return []*entity.Recipient{}, nil
	}

	conditions := make([]string, 0, len(categories))
	args := make([]any, 0, len(categories))
	for _, c := range categories {
		conditions = append(conditions, interestColumns[c]+" = ?")
		args = append(args, true)
	}

	query := repo.db.WithContext(ctx).
		Joins("JOIN nonprofits ON nonprofits.id = users.nonprofit_id").
		Joins("JOIN product_interests ON product_interests.id = users.product_survey_id").
		Where("nonprofits.nonprofit_document_approval = ?", true).
		Where("("+strings.Join(conditions, " OR ")+")", args...)

	return repo.findRecipients(query)
}

type recipientRow struct {
	ID          uuid.UUID
	Email       string
	Name        string
	NonprofitID *uuid.UUID
	SupplierID  *uuid.UUID
}

func (repo *userRepository) findRecipients(query *gorm.DB) ([]*entity.Recipient, error) {
	var rows []recipientRow
	if err := query.
		Model(&model.UserModel{}).
		Select("users.id, users.email, users.name, users.nonprofit_id, users.supplier_id").
		Order("users.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients")
	}

	recipients := make([]*entity.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.Recipient{
			UserID:      row.ID,
			Email:       row.Email,
			Name:        row.Name,
			NonprofitID: row.NonprofitID,
			SupplierID:  row.SupplierID,
		})
	}

	return recipients, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		SupplierID:      data.SupplierID,
		NonprofitID:     data.NonprofitID,
		ProductSurveyID: data.ProductSurveyID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleOther
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           strings.ToLower(strings.TrimSpace(data.Email)),
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Role:            string(role),
		SupplierID:      data.SupplierID,
		NonprofitID:     data.NonprofitID,
		ProductSurveyID: data.ProductSurveyID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
