package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	mockUsecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDiscussionHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockDiscussionUsecase, *mockUsecase.MockAnnouncementUsecase) {
	e := newTestEcho()
	discussionUC := mockUsecase.NewMockDiscussionUsecase(t)
	announcementUC := mockUsecase.NewMockAnnouncementUsecase(t)
	h := NewDiscussionHandler(DiscussionHandlerParams{
		DiscussionUC:   discussionUC,
		AnnouncementUC: announcementUC,
		Logger:         newTestLogger(),
	})

	e.POST("/discussions", h.CreateThread, as(principal))
	e.POST("/announcements", h.CreateAnnouncement, as(principal))

	return e, discussionUC, announcementUC
}

func TestDiscussionHandler_CreateThread(t *testing.T) {
	principal := nonprofitPrincipal()

	t.Run("created", func(t *testing.T) {
		e, discussionUC, _ := createTestDiscussionHandler(t, principal)
		discussionUC.EXPECT().
			CreateThread(mock.Anything, principal, &usecase.ContentInput{
				Title:    "Cold storage tips",
				Content:  "What works for you?",
				Audience: entity.AudienceNonprofit,
			}).
			Return(&entity.Thread{ID: uuid.New(), AuthorID: principal.UserID, Audience: entity.AudienceNonprofit}, nil)

		rec := doJSON(e, http.MethodPost, "/discussions",
			`{"title":"Cold storage tips","content":"What works for you?","group":"NONPROFIT"}`)
		assertStatus(t, rec, http.StatusCreated)

		var thread entity.Thread
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &thread))
		assert.Equal(t, entity.AudienceNonprofit, thread.Audience)
	})

	t.Run("unknown group", func(t *testing.T) {
		e, discussionUC, _ := createTestDiscussionHandler(t, principal)
		discussionUC.EXPECT().CreateThread(mock.Anything, principal, mock.Anything).Return(nil, domainerrors.ErrInvalidGroupType)

		rec := doJSON(e, http.MethodPost, "/discussions", `{"title":"t","content":"c","group":"VOLUNTEER"}`)
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "INVALID_GROUP_TYPE", decodeError(t, rec).Code)
	})

	t.Run("missing title", func(t *testing.T) {
		e, _, _ := createTestDiscussionHandler(t, principal)

		rec := doJSON(e, http.MethodPost, "/discussions", `{"content":"c","group":"ALL"}`)
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, decodeError(t, rec).Error, "title is required")
	})
}

func TestDiscussionHandler_CreateAnnouncement_NonOperator(t *testing.T) {
	principal := nonprofitPrincipal()
	e, _, announcementUC := createTestDiscussionHandler(t, principal)
	announcementUC.EXPECT().Create(mock.Anything, principal, mock.Anything).Return(nil, domainerrors.ErrUnauthenticated)

	rec := doJSON(e, http.MethodPost, "/announcements", `{"title":"t","content":"c","group":"ALL"}`)
	assertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Code)
}
