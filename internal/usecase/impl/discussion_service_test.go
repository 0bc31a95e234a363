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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type discussionServiceFixtures struct {
	service     usecase.DiscussionUsecase
	threadRepo  *mockRepo.MockThreadRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestDiscussionService(t *testing.T) discussionServiceFixtures {
	f := discussionServiceFixtures{
		threadRepo:  mockRepo.NewMockThreadRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
	}
	srv := NewDiscussionService(DiscussionServiceParams{
		ThreadRepo:  f.threadRepo,
		CommentRepo: f.commentRepo,
		Logger:      newTestLogger(),
	}).(*discussionService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func TestDiscussionService_ListThreads_FiltersByRole(t *testing.T) {
	tests := []struct {
		role   entity.Role
		groups []entity.AudienceGroup
	}{
		{role: entity.RoleNonprofit, groups: []entity.AudienceGroup{entity.AudienceAll, entity.AudienceNonprofit}},
		{role: entity.RoleSupplier, groups: []entity.AudienceGroup{entity.AudienceAll, entity.AudienceSupplier}},
		{role: entity.RoleOther, groups: []entity.AudienceGroup{entity.AudienceAll}},
		{role: entity.RoleStaff, groups: []entity.AudienceGroup{entity.AudienceAll, entity.AudienceAdmin, entity.AudienceSupplier, entity.AudienceNonprofit}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			fx := createTestDiscussionService(t)
			fx.threadRepo.EXPECT().List(mock.Anything, tt.groups).Return([]*entity.Thread{}, nil)

			_, err := fx.service.ListThreads(context.Background(), entity.Principal{UserID: uuid.New(), Role: tt.role})
			require.NoError(t, err)
		})
	}
}

func TestDiscussionService_GetThread_HiddenAudience(t *testing.T) {
	fx := createTestDiscussionService(t)
	thread := &entity.Thread{ID: uuid.New(), Audience: entity.AudienceAdmin}
	fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)

	_, err := fx.service.GetThread(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}, thread.ID)
	assert.ErrorIs(t, err, domainerrors.ErrThreadNotFound)
}

func TestDiscussionService_CreateThread(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}

	t.Run("own group", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		fx.threadRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(th *entity.Thread) bool {
				return th.AuthorID == principal.UserID && th.Audience == entity.AudienceNonprofit && !entity.IsDeleted(th.State)
			})).
			Return(nil)

		thread, err := fx.service.CreateThread(context.Background(), principal, &usecase.ContentInput{
			Title:    "Cold storage tips",
			Content:  "How do you keep produce fresh?",
			Audience: entity.AudienceNonprofit,
		})
		require.NoError(t, err)
		assert.Equal(t, "Cold storage tips", thread.Title)
	})

	t.Run("unknown group", func(t *testing.T) {
		fx := createTestDiscussionService(t)

		_, err := fx.service.CreateThread(context.Background(), principal, &usecase.ContentInput{Audience: "VOLUNTEER"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGroupType)
	})

	t.Run("group the author cannot read", func(t *testing.T) {
		fx := createTestDiscussionService(t)

		_, err := fx.service.CreateThread(context.Background(), principal, &usecase.ContentInput{Audience: entity.AudienceSupplier})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestDiscussionService_UpdateThread(t *testing.T) {
	author := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}

	newThread := func() *entity.Thread {
		return &entity.Thread{ID: uuid.New(), AuthorID: author.UserID, Title: "Old", Content: "Body", Audience: entity.AudienceAll}
	}

	t.Run("author edits title", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		thread := newThread()
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.threadRepo.EXPECT().Update(mock.Anything, thread).Return(nil)

		got, err := fx.service.UpdateThread(context.Background(), author, thread.ID, &usecase.ContentPatch{Title: ptr("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "Body", got.Content)
	})

	t.Run("admin moderates", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		thread := newThread()
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.threadRepo.EXPECT().Update(mock.Anything, thread).Return(nil)

		_, err := fx.service.UpdateThread(context.Background(), adminPrincipal, thread.ID, &usecase.ContentPatch{Content: ptr("[removed]")})
		require.NoError(t, err)
	})

	t.Run("staff is not a moderator", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		thread := newThread()
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)

		_, err := fx.service.UpdateThread(context.Background(), staffPrincipal, thread.ID, &usecase.ContentPatch{Title: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("deleted thread", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		id := uuid.New()
		fx.threadRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrThreadNotFound)

		_, err := fx.service.UpdateThread(context.Background(), author, id, &usecase.ContentPatch{Title: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrThreadNotFound)
	})
}

func TestDiscussionService_DeleteThread_SoftDeletes(t *testing.T) {
	fx := createTestDiscussionService(t)
	author := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}
	thread := &entity.Thread{ID: uuid.New(), AuthorID: author.UserID, Audience: entity.AudienceAll}

	fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
	fx.threadRepo.EXPECT().SoftDelete(mock.Anything, thread.ID, testNow).Return(nil)

	require.NoError(t, fx.service.DeleteThread(context.Background(), author, thread.ID))
}

func TestDiscussionService_Comments(t *testing.T) {
	author := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}
	thread := &entity.Thread{ID: uuid.New(), Audience: entity.AudienceNonprofit}

	t.Run("add", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.commentRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
				return c.ThreadID == thread.ID && c.AuthorID == author.UserID && c.Content == "Same here"
			})).
			Return(nil)

		_, err := fx.service.AddComment(context.Background(), author, thread.ID, "Same here")
		require.NoError(t, err)
	})

	t.Run("comment belongs to another thread", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		comment := &entity.Comment{ID: uuid.New(), ThreadID: uuid.New(), AuthorID: author.UserID}
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

		_, err := fx.service.UpdateComment(context.Background(), author, thread.ID, comment.ID, "edit")
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})

	t.Run("edit someone else's comment", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		comment := &entity.Comment{ID: uuid.New(), ThreadID: thread.ID, AuthorID: uuid.New()}
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

		_, err := fx.service.UpdateComment(context.Background(), author, thread.ID, comment.ID, "edit")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin deletes", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		comment := &entity.Comment{ID: uuid.New(), ThreadID: thread.ID, AuthorID: author.UserID}
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)
		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)
		fx.commentRepo.EXPECT().SoftDelete(mock.Anything, comment.ID, testNow).Return(nil)

		require.NoError(t, fx.service.DeleteComment(context.Background(), adminPrincipal, thread.ID, comment.ID))
	})

	t.Run("list on a hidden thread", func(t *testing.T) {
		fx := createTestDiscussionService(t)
		fx.threadRepo.EXPECT().FindByID(mock.Anything, thread.ID).Return(thread, nil)

		_, err := fx.service.ListComments(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}, thread.ID)
		assert.ErrorIs(t, err, domainerrors.ErrThreadNotFound)
	})
}
