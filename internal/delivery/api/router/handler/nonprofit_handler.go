package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// documentFormField is the multipart field carrying the eligibility document.
const documentFormField = "file"

type NonprofitHandlerParams struct {
	fx.In

	ApprovalUC usecase.ApprovalUsecase
	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// NonprofitHandler serves nonprofit approval and eligibility documents.
type NonprofitHandler struct {
	approvalUC usecase.ApprovalUsecase
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

func NewNonprofitHandler(params NonprofitHandlerParams) *NonprofitHandler {
	return &NonprofitHandler{
		approvalUC: params.ApprovalUC,
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// SetApprovalRequest uses a pointer so that an explicit false is distinguishable from a missing field.
type SetApprovalRequest struct {
	NonprofitID string `json:"nonprofitId" validate:"required,uuid"`
	Approved    *bool  `json:"approved" validate:"required"`
}

func (h *NonprofitHandler) SetApproval(c echo.Context) error {
	var req SetApprovalRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	nonprofit, err := h.approvalUC.SetApproval(c.Request().Context(), uuid.MustParse(req.NonprofitID), *req.Approved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonprofit)
}

// ListNonprofits accepts ?approval=pending|approved|rejected.
func (h *NonprofitHandler) ListNonprofits(c echo.Context) error {
	var filter repository.NonprofitFilter
	if raw := c.QueryParam("approval"); raw != "" {
		state := entity.ApprovalState(raw)
		switch state {
		case entity.ApprovalPending, entity.ApprovalApproved, entity.ApprovalRejected:
			filter.Approval = &state
		default:
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("Invalid approval filter"))
		}
	}

	nonprofits, err := h.approvalUC.ListNonprofits(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonprofits)
}

func (h *NonprofitHandler) GetNonprofit(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nonprofit, err := h.approvalUC.GetNonprofit(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonprofit)
}

// UploadDocument takes a multipart upload; admins and staff name the nonprofit in the nonprofitId form field.
func (h *NonprofitHandler) UploadDocument(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fileHeader, err := c.FormFile(documentFormField)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "file is required")
	}

	nonprofitID, err := parseUUIDForm(c, "nonprofitId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	declared := fileHeader.Header.Get(echo.HeaderContentType)
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mediaType
	}

	document, err := h.documentUC.Upload(c.Request().Context(), principal, &usecase.UploadDocumentInput{
		NonprofitID:      nonprofitID,
		FileName:         fileHeader.Filename,
		DeclaredMimeType: declared,
		Data:             data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, document)
}

func (h *NonprofitHandler) GetDocument(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nonprofitID, err := parseUUIDParam(c, "nonprofitId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	document, err := h.documentUC.GetDocument(c.Request().Context(), principal, nonprofitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}

func (h *NonprofitHandler) DownloadDocument(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nonprofitID, err := parseUUIDParam(c, "nonprofitId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.documentUC.Download(c.Request().Context(), principal, nonprofitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": file.FileName}))

	return c.Blob(http.StatusOK, file.MimeType, file.Data)
}

func parseUUIDForm(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + name)
	}

	return &id, nil
}
