package impl

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
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

type dispatchServiceFixtures struct {
	service       usecase.DispatchUsecase
	productRepo   *mockRepo.MockProductRepository
	nonprofitRepo *mockRepo.MockNonprofitRepository
	userRepo      *mockRepo.MockUserRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	templates     *mockSvc.MockEmailTemplates
	emailSender   *mockSvc.MockEmailSender
	pushSender    *mockSvc.MockPushSender
}

func createTestDispatchService(t *testing.T, withPush bool) dispatchServiceFixtures {
	f := dispatchServiceFixtures{
		productRepo:   mockRepo.NewMockProductRepository(t),
		nonprofitRepo: mockRepo.NewMockNonprofitRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		deviceRepo:    mockRepo.NewMockDeviceRepository(t),
		templates:     mockSvc.NewMockEmailTemplates(t),
		emailSender:   mockSvc.NewMockEmailSender(t),
	}
	params := DispatchServiceParams{
		ProductRepo:   f.productRepo,
		NonprofitRepo: f.nonprofitRepo,
		UserRepo:      f.userRepo,
		DeviceRepo:    f.deviceRepo,
		Templates:     f.templates,
		EmailSender:   f.emailSender,
		Logger:        newTestLogger(),
	}
	if withPush {
		f.pushSender = mockSvc.NewMockPushSender(t)
		params.PushSender = f.pushSender
	}
	f.service = NewDispatchService(params)

	return f
}

// renderTo makes the template mock echo the recipient, so tests can assert who got mail.
func renderTo(templates *mockSvc.MockEmailTemplates, name string) {
	templates.EXPECT().Render(name, mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, to string, _ any) (*service.EmailMessage, error) {
			return &service.EmailMessage{To: to, Subject: name}, nil
		})
}

func recipientsFor(emails ...string) []*entity.Recipient {
	out := make([]*entity.Recipient, 0, len(emails))
	for _, e := range emails {
		out = append(out, &entity.Recipient{UserID: uuid.New(), Email: e, Name: e})
	}

	return out
}

func sentTo(messages []*service.EmailMessage) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.To)
	}

	return out
}

func TestDispatchService_ProductClaimed_EmailsBothSides(t *testing.T) {
	fx := createTestDispatchService(t, false)
	ctx := context.Background()
	nonprofitID := uuid.New()
	product := &entity.ProductRequest{
		ID:          uuid.New(),
		Name:        "Milk",
		Status:      entity.ProductStatusReserved,
		SupplierID:  uuid.New(),
		ClaimedByID: &nonprofitID,
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID, Name: "Pantry"}, nil)
	fx.userRepo.EXPECT().FindRecipientsBySupplier(ctx, product.SupplierID).Return(recipientsFor("chef@dining.test"), nil)
	fx.userRepo.EXPECT().FindRecipientsByNonprofit(ctx, nonprofitID).Return(recipientsFor("lead@pantry.test", "vol@pantry.test"), nil)
	fx.templates.EXPECT().
		Render(service.TemplateProductClaimed, "chef@dining.test", mock.MatchedBy(func(d service.ProductClaimedData) bool {
			return d.ForSupplier && d.NonprofitName == "Pantry" && d.Product.ProductName == "Milk"
		})).
		Return(&service.EmailMessage{To: "chef@dining.test"}, nil)
	fx.templates.EXPECT().
		Render(service.TemplateProductClaimed, mock.Anything, mock.MatchedBy(func(d service.ProductClaimedData) bool {
			return !d.ForSupplier
		})).
		RunAndReturn(func(_ string, to string, _ any) (*service.EmailMessage, error) {
			return &service.EmailMessage{To: to}, nil
		})
	fx.emailSender.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(msgs []*service.EmailMessage) bool {
			return slices.Equal([]string{"chef@dining.test", "lead@pantry.test", "vol@pantry.test"}, sentTo(msgs))
		})).
		Return(&service.EmailBatchResult{Sent: 3}, nil)

	result, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:       service.EventProductClaimed,
		ProductIDs: []string{product.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.EmailsSent)
	assert.Zero(t, result.PushSent)
}

func TestDispatchService_ProductClaimed_StaleEventDropped(t *testing.T) {
	fx := createTestDispatchService(t, false)
	ctx := context.Background()
	product := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusAvailable}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:       service.EventProductClaimed,
		ProductIDs: []string{product.ID.String()},
	})
	assert.ErrorIs(t, err, usecase.ErrEventDropped)
}

func TestDispatchService_ProductsAvailable(t *testing.T) {
	fx := createTestDispatchService(t, true)
	ctx := context.Background()

	produce := &entity.ProductRequest{
		ID:          uuid.New(),
		Name:        "Carrots",
		Quantity:    10,
		Unit:        entity.UnitPounds,
		Status:      entity.ProductStatusAvailable,
		ProductType: &entity.ProductType{CategoryFlags: entity.FlagsFor(entity.CategoryProduce)},
	}
	taken := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusReserved}
	gone := uuid.New()

	interested := recipientsFor("a@np.test", "b@np.test")

	fx.productRepo.EXPECT().FindByID(ctx, produce.ID).Return(produce, nil)
	fx.productRepo.EXPECT().FindByID(ctx, taken.ID).Return(taken, nil)
	fx.productRepo.EXPECT().FindByID(ctx, gone).Return(nil, repository.ErrProductNotFound)
	fx.userRepo.EXPECT().FindInterestedRecipients(ctx, entity.FlagsFor(entity.CategoryProduce)).Return(interested, nil)
	renderTo(fx.templates, service.TemplateProductAvailable)
	fx.emailSender.EXPECT().SendBatch(ctx, mock.MatchedBy(func(msgs []*service.EmailMessage) bool {
		return len(msgs) == 2
	})).Return(&service.EmailBatchResult{Sent: 1, Failed: []string{"b@np.test"}}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{interested[0].UserID, interested[1].UserID}).
		Return([]*entity.UserDevice{{FCMToken: "tok-a"}, {FCMToken: "tok-b"}, {FCMToken: ""}}, nil)
	fx.pushSender.EXPECT().
		SendBatchNotification(ctx, []string{"tok-a", "tok-b"}, "New product available", "Carrots (10 POUNDS)", mock.Anything).
		Return(1, 1, []string{"tok-b"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"tok-b"}).Return(nil)

	result, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:       service.EventProductsAvailable,
		ProductIDs: []string{produce.ID.String(), taken.ID.String(), gone.String(), "not-a-uuid"},
	})
	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{
		EmailsSent:    1,
		EmailsFailed:  1,
		PushSent:      1,
		PushFailed:    1,
		InvalidTokens: 1,
	}, result)
}

func TestDispatchService_ProductsAvailable_AllMissing(t *testing.T) {
	fx := createTestDispatchService(t, false)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:       service.EventProductsAvailable,
		ProductIDs: []string{id.String()},
	})
	assert.ErrorIs(t, err, usecase.ErrEventDropped)
}

func TestDispatchService_PushBatches(t *testing.T) {
	fx := createTestDispatchService(t, true)
	ctx := context.Background()
	nonprofitID := uuid.New()
	recipients := recipientsFor("lead@pantry.test")

	devices := make([]*entity.UserDevice, 0, constants.FirebaseBatchSize+20)
	for i := range constants.FirebaseBatchSize + 20 {
		devices = append(devices, &entity.UserDevice{FCMToken: fmt.Sprintf("tok-%d", i)})
	}

	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).
		Return(&entity.Nonprofit{ID: nonprofitID, Name: "Pantry", DocumentApproval: ptr(true)}, nil)
	fx.userRepo.EXPECT().FindRecipientsByNonprofit(ctx, nonprofitID).Return(recipients, nil)
	renderTo(fx.templates, service.TemplateApprovalDecision)
	fx.emailSender.EXPECT().SendBatch(ctx, mock.Anything).Return(&service.EmailBatchResult{Sent: 1}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{recipients[0].UserID}).Return(devices, nil)
	fx.pushSender.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == constants.FirebaseBatchSize }),
			"Approval decision", "Pantry has been approved", mock.Anything).
		Return(constants.FirebaseBatchSize, 0, nil, nil)
	fx.pushSender.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	result, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:        service.EventApprovalDecision,
		NonprofitID: nonprofitID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.FirebaseBatchSize, result.PushSent)
	assert.Equal(t, 20, result.PushFailed)
}

func TestDispatchService_ApprovalPendingDropped(t *testing.T) {
	fx := createTestDispatchService(t, false)
	ctx := context.Background()
	nonprofitID := uuid.New()

	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)

	_, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:        service.EventApprovalDecision,
		NonprofitID: nonprofitID.String(),
	})
	assert.ErrorIs(t, err, usecase.ErrEventDropped)
}

func TestDispatchService_UnknownKindDropped(t *testing.T) {
	fx := createTestDispatchService(t, false)

	_, err := fx.service.Dispatch(context.Background(), &service.NotificationEvent{Kind: "weekly_digest"})
	assert.ErrorIs(t, err, usecase.ErrEventDropped)
}

func TestDispatchService_EmailFailureIsRetryable(t *testing.T) {
	fx := createTestDispatchService(t, false)
	ctx := context.Background()
	nonprofitID := uuid.New()

	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).
		Return(&entity.Nonprofit{ID: nonprofitID, DocumentApproval: ptr(false)}, nil)
	fx.userRepo.EXPECT().FindRecipientsByNonprofit(ctx, nonprofitID).Return(recipientsFor("lead@pantry.test"), nil)
	renderTo(fx.templates, service.TemplateApprovalDecision)
	fx.emailSender.EXPECT().SendBatch(ctx, mock.Anything).Return(nil, errors.New("smtp: 421 try again later"))

	_, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Kind:        service.EventApprovalDecision,
		NonprofitID: nonprofitID.String(),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrEventDropped)
}
