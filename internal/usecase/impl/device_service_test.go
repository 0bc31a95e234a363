package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newTestLogger(),
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-123", FCMToken: "old", IsActive: false}
	refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "device-123", FCMToken: "new", IsActive: true}

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "device-123").Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, refreshed, device)
}

func TestDeviceService_RegisterDevice_TokenOwnedElsewhere(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "d").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeviceService_RegisterDevice_LookupError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "d").Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "new").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(context.Background(), userID, deviceID, "new"))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(context.Background(), userID, deviceID, "new")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(context.Background(), userID, deviceID, "new")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetUserDevices_ActiveOnly(t *testing.T) {
	fx := createTestDeviceService(t)
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{
		{DeviceID: "phone", IsActive: true},
		{DeviceID: "old-tablet", IsActive: false},
	}, nil)

	devices, err := fx.service.GetUserDevices(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "phone", devices[0].DeviceID)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(context.Background(), userID, deviceID))
}
