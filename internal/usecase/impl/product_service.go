package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProducts creates every item atomically, then enqueues one availability event for the batch.
func (srv *productService) CreateProducts(ctx context.Context, principal entity.Principal, input *usecase.CreateProductsInput) ([]*entity.ProductRequest, error) {
	if !principal.Is(entity.RoleSupplier) {
		return nil, domainerrors.ErrForbidden.WithMessage("Only suppliers can post products")
	}
	if err := srv.validateCreate(input); err != nil {
		return nil, err
	}

	supplierID, err := callerSupplierID(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.ProductRequest, 0, len(input.Items))
	for _, item := range input.Items {
		products = append(products, buildProduct(supplierID, item, input.Pickup))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		for _, product := range products {
			if err := productRepo.Create(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to create product %q", product.Name)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	srv.log(ctx).Info("Products posted",
		slog.String("supplierID", supplierID.String()),
		slog.Int("count", len(products)),
	)

	publishBestEffort(ctx, srv.publisher, srv.log(ctx), newProductsAvailableEvent(ctx, ids))

	return products, nil
}

func (srv *productService) validateCreate(input *usecase.CreateProductsInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one product is required")
	}

	for _, item := range input.Items {
		switch {
		case !item.Unit.IsValid():
			return domainerrors.ErrValidationFailed.WithDetails("unknown unit " + string(item.Unit))
		case item.Quantity <= 0:
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		case !item.Category.IsValid():
			return domainerrors.ErrValidationFailed.WithDetails("unknown category " + string(item.Category))
		}
		for _, pt := range item.ProteinTypes {
			if !pt.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("unknown protein type " + string(pt))
			}
		}
	}

	if len(input.Pickup.PickupTimeframes) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one pickup timeframe is required")
	}
	for _, tf := range input.Pickup.PickupTimeframes {
		if !tf.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown pickup timeframe " + string(tf))
		}
	}
	if util.BeforeDay(input.Pickup.PickupDate, srv.now()) {
		return domainerrors.ErrValidationFailed.WithDetails("pickup date is in the past")
	}

	return nil
}

func buildProduct(supplierID uuid.UUID, item usecase.ProductItemInput, pickup usecase.PickupInput) *entity.ProductRequest {
	flags := entity.FlagsFor(item.Category)
	setSpecifics(&flags, item.Category, item.Specifics)
	if item.Category == entity.CategoryProtein {
		flags.ProteinTypes = item.ProteinTypes
	}

	return &entity.ProductRequest{
		Name:        item.Name,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		Description: item.Description,
		Status:      entity.ProductStatusAvailable,
		SupplierID:  supplierID,
		ProductType: &entity.ProductType{CategoryFlags: flags},
		PickupInfo: &entity.PickupInfo{
			PickupDate:         pickup.PickupDate,
			PickupTimeframes:   pickup.PickupTimeframes,
			PickupLocation:     pickup.PickupLocation,
			PickupInstructions: pickup.PickupInstructions,
			ContactName:        pickup.ContactName,
			ContactPhone:       pickup.ContactPhone,
		},
	}
}

func setSpecifics(flags *entity.CategoryFlags, category entity.Category, specifics string) {
	switch category {
	case entity.CategoryProtein:
		flags.ProteinSpecifics = specifics
	case entity.CategoryProduce:
		flags.ProduceSpecifics = specifics
	case entity.CategoryShelfStable:
		flags.ShelfStableSpecifics = specifics
	case entity.CategoryShelfStableIndividualServing:
		flags.ShelfStableIndividualServingSpecifics = specifics
	case entity.CategoryAlreadyPreparedFood:
		flags.AlreadyPreparedFoodSpecifics = specifics
	case entity.CategoryOther:
		flags.OtherSpecifics = specifics
	}
}

func (srv *productService) ListProducts(ctx context.Context, principal entity.Principal, filter entity.ProductFilter) ([]*entity.ProductRequest, error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
		}
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductRequest, error) {
	return findProduct(ctx, srv.productRepo, id)
}

func (srv *productService) DeleteProduct(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if !principal.Is(entity.RoleSupplier, entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	product, err := findProduct(ctx, srv.productRepo, id)
	if err != nil {
		return err
	}

	if principal.Is(entity.RoleSupplier) {
		supplierID, err := callerSupplierID(ctx, srv.userRepo, principal)
		if err != nil {
			return err
		}
		if product.SupplierID != supplierID {
			return domainerrors.ErrForbidden
		}
	}

	if product.Status.IsClaimed() {
		return domainerrors.ErrConflict.WithMessage("Cannot delete a claimed product")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}

func (srv *productService) PickupPass(ctx context.Context, principal entity.Principal, id uuid.UUID) ([]byte, error) {
	if !principal.Is(entity.RoleNonprofit) {
		return nil, domainerrors.ErrForbidden
	}

	nonprofitID, err := callerNonprofitID(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, srv.productRepo, id)
	if err != nil {
		return nil, err
	}
	if !product.Status.IsClaimed() || product.ClaimedByID == nil {
		return nil, domainerrors.ErrProductNotClaimed
	}
	if *product.ClaimedByID != nonprofitID {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrService.GeneratePickupPass(service.PickupPass{
		ProductID:   product.ID,
		NonprofitID: nonprofitID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup pass")
	}

	return png, nil
}

// VerifyPickup accepts a pass only for the caller's own product while it is still claimed by the pass holder.
func (srv *productService) VerifyPickup(ctx context.Context, principal entity.Principal, qrData string) (*usecase.PickupVerification, error) {
	if !principal.Is(entity.RoleSupplier) {
		return nil, domainerrors.ErrForbidden
	}

	pass, err := srv.qrService.ParsePickupPass(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidPickupPass.WithDetails(err.Error())
	}

	supplierID, err := callerSupplierID(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, srv.productRepo, pass.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SupplierID != supplierID {
		return nil, domainerrors.ErrForbidden
	}
	if !product.Status.IsClaimed() || product.ClaimedByID == nil || *product.ClaimedByID != pass.NonprofitID {
		return nil, domainerrors.ErrInvalidPickupPass
	}

	srv.log(ctx).Info("Pickup verified",
		slog.String("productID", product.ID.String()),
		slog.String("nonprofitID", pass.NonprofitID.String()),
	)

	return &usecase.PickupVerification{
		Product:     product,
		NonprofitID: pass.NonprofitID,
	}, nil
}
