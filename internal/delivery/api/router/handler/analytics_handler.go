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

type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the dashboard aggregations. All endpoints are read-only.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

func (h *AnalyticsHandler) SystemHealth(c echo.Context) error {
	health, err := h.analyticsUC.SystemHealth(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, health)
}

func (h *AnalyticsHandler) SupplierMetrics(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	supplierID, err := requiredUUIDQuery(c, "supplierId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	metrics, err := h.analyticsUC.SupplierMetrics(c.Request().Context(), principal, supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) NonprofitMetrics(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nonprofitID, err := requiredUUIDQuery(c, "nonprofitId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	metrics, err := h.analyticsUC.NonprofitMetrics(c.Request().Context(), principal, nonprofitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) NonprofitEngagement(c echo.Context) error {
	engagement, err := h.analyticsUC.NonprofitEngagement(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, engagement)
}

func (h *AnalyticsHandler) SupplierActivity(c echo.Context) error {
	activity, err := h.analyticsUC.SupplierActivity(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity)
}

func (h *AnalyticsHandler) ProductStatusTrends(c echo.Context) error {
	trends, err := h.analyticsUC.ProductStatusTrends(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trends)
}

func (h *AnalyticsHandler) ClaimsOverTime(c echo.Context) error {
	points, err := h.analyticsUC.ClaimsOverTime(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

func requiredUUIDQuery(c echo.Context, name string) (uuid.UUID, error) {
	id, err := parseUUIDQuery(c, name)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage(name + " is required")
	}

	return *id, nil
}
