package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalService_SetApproval(t *testing.T) {
	ctx := context.Background()
	nonprofitID := uuid.New()

	tests := []struct {
		name     string
		approved bool
		want     entity.ApprovalState
	}{
		{name: "approve", approved: true, want: entity.ApprovalApproved},
		{name: "reject", approved: false, want: entity.ApprovalRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonprofitRepo := mockRepo.NewMockNonprofitRepository(t)
			svc := NewApprovalService(ApprovalServiceParams{NonprofitRepo: nonprofitRepo, Logger: newTestLogger()})

			nonprofitRepo.EXPECT().SetApproval(ctx, nonprofitID, tt.approved).Return(nil)
			nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).
				Return(&entity.Nonprofit{ID: nonprofitID, DocumentApproval: ptr(tt.approved)}, nil)

			nonprofit, err := svc.SetApproval(ctx, nonprofitID, tt.approved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nonprofit.Approval())
		})
	}
}

func TestApprovalService_SetApproval_NotFound(t *testing.T) {
	nonprofitRepo := mockRepo.NewMockNonprofitRepository(t)
	svc := NewApprovalService(ApprovalServiceParams{NonprofitRepo: nonprofitRepo, Logger: newTestLogger()})
	nonprofitID := uuid.New()

	nonprofitRepo.EXPECT().SetApproval(context.Background(), nonprofitID, true).Return(repository.ErrNonprofitNotFound)

	_, err := svc.SetApproval(context.Background(), nonprofitID, true)
	assert.ErrorIs(t, err, domainerrors.ErrNonprofitNotFound)
}

func TestApprovalService_ListNonprofits_PassesFilter(t *testing.T) {
	nonprofitRepo := mockRepo.NewMockNonprofitRepository(t)
	svc := NewApprovalService(ApprovalServiceParams{NonprofitRepo: nonprofitRepo, Logger: newTestLogger()})
	filter := repository.NonprofitFilter{Approval: ptr(entity.ApprovalPending)}

	nonprofitRepo.EXPECT().List(context.Background(), filter).Return([]*entity.Nonprofit{{ID: uuid.New()}}, nil)

	nonprofits, err := svc.ListNonprofits(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, nonprofits, 1)
}
