package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Actions accepted by PATCH /item-availability.
const (
	actionClaim   = "claim"
	actionUnclaim = "unclaim"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	ClaimUC   usecase.ClaimUsecase
	Logger    *slog.Logger
}

// ProductHandler serves product posting, browsing, claiming and pickup.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	claimUC   usecase.ClaimUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		claimUC:   params.ClaimUC,
		logger:    params.Logger,
	}
}

// ItemAvailabilityRequest claims a product, or unclaims it when Action is "unclaim".
type ItemAvailabilityRequest struct {
	ProductID  string `json:"productId" validate:"required,uuid"`
	Action     string `json:"action" validate:"omitempty,oneof=claim unclaim"`
	PickupDate string `json:"pickupDate"`
}

type ProductItemRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Unit         string   `json:"unit" validate:"required,unit"`
	Quantity     int      `json:"quantity" validate:"required,min=1"`
	Description  string   `json:"description" validate:"max=2000"`
	Category     string   `json:"category" validate:"required,category"`
	ProteinTypes []string `json:"proteinTypes" validate:"omitempty,dive,protein_type"`
	Specifics    string   `json:"specifics" validate:"max=500"`
}

type PickupRequest struct {
	PickupDate         string   `json:"pickupDate" validate:"required"`
	PickupTimeframes   []string `json:"pickupTimeframe" validate:"required,min=1,dive,timeframe"`
	PickupLocation     string   `json:"pickupLocation" validate:"required"`
	PickupInstructions string   `json:"pickupInstructions"`
	ContactName        string   `json:"contactName" validate:"required"`
	ContactPhone       string   `json:"contactPhone" validate:"required"`
}

type CreateProductsRequest struct {
	Items  []ProductItemRequest `json:"items" validate:"required,min=1,dive"`
	Pickup PickupRequest        `json:"pickup" validate:"required"`
}

type VerifyPickupRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// PickupVerificationResponse is what the supplier sees after scanning a pass.
type PickupVerificationResponse struct {
	Product     *entity.ProductRequest `json:"product"`
	NonprofitID uuid.UUID              `json:"nonprofitId"`
}

func parseDate(raw string) (time.Time, error) {
	day, err := util.ParseDay(raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithMessage("Invalid date " + raw)
	}

	return day, nil
}

func (h *ProductHandler) UpdateItemAvailability(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ItemAvailabilityRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	productID := uuid.MustParse(req.ProductID)

	var product *entity.ProductRequest
	switch req.Action {
	case actionUnclaim:
		var pickupDate *time.Time
		if req.PickupDate != "" {
			date, err := parseDate(req.PickupDate)
			if err != nil {
				return response.HandleAppError(c, err)
			}
			pickupDate = &date
		}
		product, err = h.claimUC.Unclaim(c.Request().Context(), principal, productID, pickupDate)
	case "", actionClaim:
		product, err = h.claimUC.Claim(c.Request().Context(), principal, productID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProducts(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductsRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	pickupDate, err := parseDate(req.Pickup.PickupDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateProductsInput{
		Items: make([]usecase.ProductItemInput, 0, len(req.Items)),
		Pickup: usecase.PickupInput{
			PickupDate:         pickupDate,
			PickupTimeframes:   make([]entity.Timeframe, 0, len(req.Pickup.PickupTimeframes)),
			PickupLocation:     req.Pickup.PickupLocation,
			PickupInstructions: req.Pickup.PickupInstructions,
			ContactName:        req.Pickup.ContactName,
			ContactPhone:       req.Pickup.ContactPhone,
		},
	}
	for _, tf := range req.Pickup.PickupTimeframes {
		input.Pickup.PickupTimeframes = append(input.Pickup.PickupTimeframes, entity.Timeframe(tf))
	}
	for _, item := range req.Items {
		proteinTypes := make([]entity.ProteinType, 0, len(item.ProteinTypes))
		for _, pt := range item.ProteinTypes {
			proteinTypes = append(proteinTypes, entity.ProteinType(pt))
		}
		input.Items = append(input.Items, usecase.ProductItemInput{
			Name:         item.Name,
			Unit:         entity.Unit(item.Unit),
			Quantity:     item.Quantity,
			Description:  item.Description,
			Category:     entity.Category(item.Category),
			ProteinTypes: proteinTypes,
			Specifics:    item.Specifics,
		})
	}

	products, err := h.productUC.CreateProducts(c.Request().Context(), principal, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, products)
}

// ListProducts filters by ?status=AVAILABLE,RESERVED&supplierId=&claimedById=.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var filter entity.ProductFilter
	if raw := c.QueryParam("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, entity.ProductStatus(strings.TrimSpace(status)))
		}
	}
	if filter.SupplierID, err = parseUUIDQuery(c, "supplierId"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.ClaimedByID, err = parseUUIDQuery(c, "claimedById"); err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), principal, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// PickupPass streams the QR code PNG.
func (h *ProductHandler) PickupPass(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.productUC.PickupPass(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="pickup-pass-`+id.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProductHandler) VerifyPickup(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerifyPickupRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	verification, err := h.productUC.VerifyPickup(c.Request().Context(), principal, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PickupVerificationResponse{
		Product:     verification.Product,
		NonprofitID: verification.NonprofitID,
	})
}
