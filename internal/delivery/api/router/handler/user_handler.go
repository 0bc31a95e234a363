package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type UserHandlerParams struct {
	fx.In

	UserUC       usecase.UserUsecase
	OnboardingUC usecase.OnboardingUsecase
	Logger       *slog.Logger
}

// UserHandler serves account administration and onboarding.
type UserHandler struct {
	userUC       usecase.UserUsecase
	onboardingUC usecase.OnboardingUsecase
	logger       *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:       params.UserUC,
		onboardingUC: params.OnboardingUC,
		logger:       params.Logger,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,role"`
}

// UpdateUserRequest only carries the fields the client sent.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,role"`
}

type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Cadence string `json:"cadence" validate:"required,cadence"`
}

type CreateNonprofitRequest struct {
	Name                    string   `json:"name" validate:"required,max=200"`
	OrganizationType        string   `json:"organizationType" validate:"required,org_type"`
	ColdStorageSpace        bool     `json:"coldStorageSpace"`
	ShelfSpace              bool     `json:"shelfSpace"`
	TransportationAvailable bool     `json:"transportationAvailable"`
	FundingSources          []string `json:"fundingSources" validate:"omitempty,dive,max=100"`
}

// ProductSurveyRequest mirrors entity.CategoryFlags with validation.
type ProductSurveyRequest struct {
	Protein                               bool     `json:"protein"`
	ProteinTypes                          []string `json:"proteinTypes" validate:"omitempty,dive,protein_type"`
	ProteinSpecifics                      string   `json:"proteinSpecifics"`
	Produce                               bool     `json:"produce"`
	ProduceSpecifics                      string   `json:"produceSpecifics"`
	ShelfStable                           bool     `json:"shelfStable"`
	ShelfStableSpecifics                  string   `json:"shelfStableSpecifics"`
	ShelfStableIndividualServing          bool     `json:"shelfStableIndividualServing"`
	ShelfStableIndividualServingSpecifics string   `json:"shelfStableIndividualServingSpecifics"`
	AlreadyPreparedFood                   bool     `json:"alreadyPreparedFood"`
	AlreadyPreparedFoodSpecifics          string   `json:"alreadyPreparedFoodSpecifics"`
	Other                                 bool     `json:"other"`
	OtherSpecifics                        string   `json:"otherSpecifics"`
}

func (r *ProductSurveyRequest) flags() entity.CategoryFlags {
	proteinTypes := make([]entity.ProteinType, 0, len(r.ProteinTypes))
	for _, pt := range r.ProteinTypes {
		proteinTypes = append(proteinTypes, entity.ProteinType(pt))
	}

	return entity.CategoryFlags{
		Protein:                               r.Protein,
		ProteinTypes:                          proteinTypes,
		ProteinSpecifics:                      r.ProteinSpecifics,
		Produce:                               r.Produce,
		ProduceSpecifics:                      r.ProduceSpecifics,
		ShelfStable:                           r.ShelfStable,
		ShelfStableSpecifics:                  r.ShelfStableSpecifics,
		ShelfStableIndividualServing:          r.ShelfStableIndividualServing,
		ShelfStableIndividualServingSpecifics: r.ShelfStableIndividualServingSpecifics,
		AlreadyPreparedFood:                   r.AlreadyPreparedFood,
		AlreadyPreparedFoodSpecifics:          r.AlreadyPreparedFoodSpecifics,
		Other:                                 r.Other,
		OtherSpecifics:                        r.OtherSpecifics,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var filter repository.UserFilter
	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("Invalid role"))
		}
		filter.Role = &role
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), principal, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateUserRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), principal, &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// GetMe returns the caller's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), principal, principal.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	input := &usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), principal, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}

func (h *UserHandler) CreateSupplier(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateSupplierRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	supplier, err := h.onboardingUC.CreateSupplier(c.Request().Context(), principal, &usecase.CreateSupplierInput{
		Name:    req.Name,
		Cadence: entity.Cadence(req.Cadence),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, supplier)
}

func (h *UserHandler) CreateNonprofit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateNonprofitRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	nonprofit, err := h.onboardingUC.CreateNonprofit(c.Request().Context(), principal, &usecase.CreateNonprofitInput{
		Name:              req.Name,
		OrganizationType:  entity.OrganizationType(req.OrganizationType),
		HasColdStorage:    req.ColdStorageSpace,
		HasShelfSpace:     req.ShelfSpace,
		HasTransportation: req.TransportationAvailable,
		FundingSources:    req.FundingSources,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nonprofit)
}

func (h *UserHandler) SaveProductSurvey(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductSurveyRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	interests, err := h.onboardingUC.SaveProductSurvey(c.Request().Context(), principal, req.flags())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, interests)
}
