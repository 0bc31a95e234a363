package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/api/response"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler enqueues notification emails; delivery happens in the worker.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

type ApprovalEmailRequest struct {
	NonprofitID string `json:"nonprofitId" validate:"required,uuid"`
}

type ProductAvailabilityEmailRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,uuid"`
}

type ProductClaimedEmailRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

func (h *NotificationHandler) SendApprovalStatus(c echo.Context) error {
	var req ApprovalEmailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.notificationUC.NotifyApprovalDecision(c.Request().Context(), uuid.MustParse(req.NonprofitID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, "Approval status email queued")
}

func (h *NotificationHandler) SendProductAvailability(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductAvailabilityEmailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("Invalid productIds"))
		}
		productIDs = append(productIDs, id)
	}

	if err := h.notificationUC.NotifyProductsAvailable(c.Request().Context(), principal, productIDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, "Product availability emails queued")
}

func (h *NotificationHandler) SendProductClaimed(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductClaimedEmailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.notificationUC.NotifyProductClaimed(c.Request().Context(), principal, uuid.MustParse(req.ProductID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, "Product claimed emails queued")
}
