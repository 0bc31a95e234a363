package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DiscussionHandlerParams struct {
	fx.In

	DiscussionUC   usecase.DiscussionUsecase
	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// DiscussionHandler serves threads, comments and admin announcements.
type DiscussionHandler struct {
	discussionUC   usecase.DiscussionUsecase
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

func NewDiscussionHandler(params DiscussionHandlerParams) *DiscussionHandler {
	return &DiscussionHandler{
		discussionUC:   params.DiscussionUC,
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

// ContentRequest creates a thread or an announcement. The group is checked by the usecase
// so that an unknown value reports "Invalid group type".
type ContentRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required"`
	Group   string `json:"group" validate:"required"`
}

type ContentPatchRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=300"`
	Content *string `json:"content"`
	Group   *string `json:"group"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (r *ContentRequest) input() *usecase.ContentInput {
	return &usecase.ContentInput{
		Title:    r.Title,
		Content:  r.Content,
		Audience: entity.AudienceGroup(r.Group),
	}
}

func (r *ContentPatchRequest) patch() *usecase.ContentPatch {
	patch := &usecase.ContentPatch{
		Title:   r.Title,
		Content: r.Content,
	}
	if r.Group != nil {
		group := entity.AudienceGroup(*r.Group)
		patch.Audience = &group
	}

	return patch
}

func (h *DiscussionHandler) ListThreads(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	threads, err := h.discussionUC.ListThreads(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, threads)
}

func (h *DiscussionHandler) GetThread(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	thread, err := h.discussionUC.GetThread(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, thread)
}

func (h *DiscussionHandler) CreateThread(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	thread, err := h.discussionUC.CreateThread(c.Request().Context(), principal, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, thread)
}

func (h *DiscussionHandler) UpdateThread(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentPatchRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	thread, err := h.discussionUC.UpdateThread(c.Request().Context(), principal, id, req.patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, thread)
}

func (h *DiscussionHandler) DeleteThread(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discussionUC.DeleteThread(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Thread deleted successfully")
}

func (h *DiscussionHandler) ListComments(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	threadID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comments, err := h.discussionUC.ListComments(c.Request().Context(), principal, threadID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

func (h *DiscussionHandler) AddComment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	threadID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CommentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	comment, err := h.discussionUC.AddComment(c.Request().Context(), principal, threadID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

func (h *DiscussionHandler) UpdateComment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	threadID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CommentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	comment, err := h.discussionUC.UpdateComment(c.Request().Context(), principal, threadID, commentID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comment)
}

func (h *DiscussionHandler) DeleteComment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	threadID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discussionUC.DeleteComment(c.Request().Context(), principal, threadID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Comment deleted successfully")
}

func (h *DiscussionHandler) ListAnnouncements(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	announcements, err := h.announcementUC.List(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcements)
}

func (h *DiscussionHandler) GetAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	announcement, err := h.announcementUC.Get(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

func (h *DiscussionHandler) CreateAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	announcement, err := h.announcementUC.Create(c.Request().Context(), principal, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, announcement)
}

func (h *DiscussionHandler) UpdateAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentPatchRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	announcement, err := h.announcementUC.Update(c.Request().Context(), principal, id, req.patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

func (h *DiscussionHandler) DeleteAnnouncement(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.announcementUC.Delete(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Announcement deleted successfully")
}
