package usecase

import (
	"context"

	"foodbridge/internal/domain/analytics"
	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase fetches rows from read replicas and reduces them in memory.
// Fetch failures surface as "Failed to fetch <resource>".
type AnalyticsUsecase interface {
	SystemHealth(ctx context.Context) (*analytics.SystemHealth, error)
	SupplierMetrics(ctx context.Context, principal entity.Principal, supplierID uuid.UUID) (*analytics.SupplierMetrics, error)
	NonprofitMetrics(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*analytics.NonprofitMetrics, error)
	NonprofitEngagement(ctx context.Context) (*analytics.NonprofitEngagement, error)
	SupplierActivity(ctx context.Context) (*analytics.SupplierActivity, error)
	ProductStatusTrends(ctx context.Context) ([]analytics.StatusTrendPoint, error)
	ClaimsOverTime(ctx context.Context) ([]analytics.DailyPoint, error)
}
