package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
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

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	txProducts  *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockSvc.MockEventPublisher
	qrService   *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	f := productServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		txProducts:  mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}
	srv := NewProductService(ProductServiceParams{
		TxManager:   f.txManager,
		ProductRepo: f.productRepo,
		UserRepo:    f.userRepo,
		Publisher:   f.publisher,
		QRService:   f.qrService,
		Logger:      newTestLogger(),
	}).(*productService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func supplierCaller(userRepo *mockRepo.MockUserRepository, supplierID uuid.UUID) entity.Principal {
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}
	userRepo.EXPECT().FindByID(mock.Anything, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Role: entity.RoleSupplier, SupplierID: &supplierID}, nil)

	return principal
}

func validCreateInput() *usecase.CreateProductsInput {
	return &usecase.CreateProductsInput{
		Items: []usecase.ProductItemInput{
			{Name: "Chicken", Unit: entity.UnitPounds, Quantity: 20, Category: entity.CategoryProtein,
				ProteinTypes: []entity.ProteinType{entity.ProteinPoultry}, Specifics: "thighs"},
			{Name: "Lettuce", Unit: entity.UnitCases, Quantity: 3, Category: entity.CategoryProduce},
		},
		Pickup: usecase.PickupInput{
			PickupDate:       testNow.AddDate(0, 0, 1),
			PickupTimeframes: []entity.Timeframe{entity.TimeframeMorning},
			PickupLocation:   "Loading dock B",
		},
	}
}

func TestProductService_CreateProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	supplierID := uuid.New()
	principal := supplierCaller(fx.userRepo, supplierID)

	var created []*entity.ProductRequest
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
	fx.txProducts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProductRequest")).
		RunAndReturn(func(_ context.Context, p *entity.ProductRequest) error {
			p.ID = uuid.New()
			created = append(created, p)
			return nil
		}).Times(2)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.Kind == service.EventProductsAvailable && len(e.ProductIDs) == 2
		})).
		Return(nil)

	products, err := fx.service.CreateProducts(ctx, principal, validCreateInput())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, created, products)

	chicken := products[0]
	assert.Equal(t, entity.ProductStatusAvailable, chicken.Status)
	assert.Equal(t, supplierID, chicken.SupplierID)
	assert.True(t, chicken.Flags().Protein)
	assert.False(t, chicken.Flags().Produce)
	assert.Equal(t, "thighs", chicken.Flags().ProteinSpecifics)
	assert.Equal(t, []entity.ProteinType{entity.ProteinPoultry}, chicken.Flags().ProteinTypes)

	lettuce := products[1]
	assert.Equal(t, []entity.Category{entity.CategoryProduce}, lettuce.Flags().Set())
	assert.Equal(t, "Loading dock B", lettuce.PickupInfo.PickupLocation)
	assert.NotSame(t, chicken.PickupInfo, lettuce.PickupInfo)
}

func TestProductService_CreateProducts_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateProductsInput)
	}{
		{name: "no items", mutate: func(in *usecase.CreateProductsInput) { in.Items = nil }},
		{name: "bad unit", mutate: func(in *usecase.CreateProductsInput) { in.Items[0].Unit = "BUSHELS" }},
		{name: "zero quantity", mutate: func(in *usecase.CreateProductsInput) { in.Items[1].Quantity = 0 }},
		{name: "bad category", mutate: func(in *usecase.CreateProductsInput) { in.Items[1].Category = "candy" }},
		{name: "bad protein", mutate: func(in *usecase.CreateProductsInput) { in.Items[0].ProteinTypes = []entity.ProteinType{"TOFU"} }},
		{name: "no timeframe", mutate: func(in *usecase.CreateProductsInput) { in.Pickup.PickupTimeframes = nil }},
		{name: "past pickup", mutate: func(in *usecase.CreateProductsInput) { in.Pickup.PickupDate = testNow.AddDate(0, 0, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}
			in := validCreateInput()
			tt.mutate(in)

			_, err := fx.service.CreateProducts(context.Background(), principal, in)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_CreateProducts_NonSupplier(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProducts(context.Background(), adminPrincipal, validCreateInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_ListProducts_RejectsUnknownStatus(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.ListProducts(context.Background(), adminPrincipal, entity.ProductFilter{
		Statuses: []entity.ProductStatus{"SOLD"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_DeleteProduct(t *testing.T) {
	supplierID := uuid.New()

	t.Run("own available product", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := supplierCaller(fx.userRepo, supplierID)
		product := &entity.ProductRequest{ID: uuid.New(), SupplierID: supplierID, Status: entity.ProductStatusAvailable}

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().Delete(mock.Anything, product.ID).Return(nil)

		require.NoError(t, fx.service.DeleteProduct(context.Background(), principal, product.ID))
	})

	t.Run("claimed product", func(t *testing.T) {
		fx := createTestProductService(t)
		product := &entity.ProductRequest{ID: uuid.New(), SupplierID: supplierID, Status: entity.ProductStatusReserved}
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		err := fx.service.DeleteProduct(context.Background(), adminPrincipal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("another supplier's product", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := supplierCaller(fx.userRepo, supplierID)
		product := &entity.ProductRequest{ID: uuid.New(), SupplierID: uuid.New(), Status: entity.ProductStatusAvailable}
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		err := fx.service.DeleteProduct(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("nonprofit", func(t *testing.T) {
		fx := createTestProductService(t)

		err := fx.service.DeleteProduct(context.Background(), entity.Principal{Role: entity.RoleNonprofit}, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProductService_PickupPass(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("claimer gets a png", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		product := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusReserved, ClaimedByID: &nonprofitID}

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.qrService.EXPECT().
			GeneratePickupPass(service.PickupPass{ProductID: product.ID, NonprofitID: nonprofitID}).
			Return([]byte("\x89PNG"), nil)

		png, err := fx.service.PickupPass(context.Background(), principal, product.ID)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png)
	})

	t.Run("other nonprofit", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := nonprofitCaller(fx.userRepo, uuid.New())
		product := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusReserved, ClaimedByID: &nonprofitID}
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.PickupPass(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProductService_VerifyPickup(t *testing.T) {
	supplierID := uuid.New()
	nonprofitID := uuid.New()
	product := &entity.ProductRequest{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Status:      entity.ProductStatusReserved,
		ClaimedByID: &nonprofitID,
	}

	t.Run("valid pass", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := supplierCaller(fx.userRepo, supplierID)

		fx.qrService.EXPECT().ParsePickupPass("qr").
			Return(&service.PickupPass{ProductID: product.ID, NonprofitID: nonprofitID}, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		got, err := fx.service.VerifyPickup(context.Background(), principal, "qr")
		require.NoError(t, err)
		assert.Equal(t, nonprofitID, got.NonprofitID)
		assert.Equal(t, product, got.Product)
	})

	t.Run("pass for a released claim", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := supplierCaller(fx.userRepo, supplierID)

		fx.qrService.EXPECT().ParsePickupPass("qr").
			Return(&service.PickupPass{ProductID: product.ID, NonprofitID: uuid.New()}, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.VerifyPickup(context.Background(), principal, "qr")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})

	t.Run("garbage payload", func(t *testing.T) {
		fx := createTestProductService(t)
		principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}

		fx.qrService.EXPECT().ParsePickupPass("junk").Return(nil, errors.New("not a pickup pass"))

		_, err := fx.service.VerifyPickup(context.Background(), principal, "junk")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})
}
