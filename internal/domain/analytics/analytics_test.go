package analytics

import (
	"testing"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func product(status entity.ProductStatus, createdAt time.Time, claimAfter time.Duration, cats ...entity.Category) *entity.ProductRequest {
	var flags entity.CategoryFlags
	for _, c := range cats {
		f := entity.FlagsFor(c)
		flags.Protein = flags.Protein || f.Protein
		flags.Produce = flags.Produce || f.Produce
		flags.ShelfStable = flags.ShelfStable || f.ShelfStable
		flags.ShelfStableIndividualServing = flags.ShelfStableIndividualServing || f.ShelfStableIndividualServing
		flags.AlreadyPreparedFood = flags.AlreadyPreparedFood || f.AlreadyPreparedFood
		flags.Other = flags.Other || f.Other
	}

	p := &entity.ProductRequest{
		ID:          uuid.New(),
		Name:        "apples",
		Unit:        entity.UnitPounds,
		Quantity:    10,
		Status:      status,
		SupplierID:  uuid.New(),
		ProductType: &entity.ProductType{ID: uuid.New(), CategoryFlags: flags},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt.Add(claimAfter),
	}
	if status.IsClaimed() {
		id := uuid.New()
		p.ClaimedByID = &id
	}

	return p
}

func boolPtr(b bool) *bool { return &b }

func TestAvgClaimTimeHours(t *testing.T) {
	t.Parallel()

	t.Run("zero when nothing is claimed", func(t *testing.T) {
		t.Parallel()

		products := []*entity.ProductRequest{
			product(entity.ProductStatusAvailable, now, 5*time.Hour),
		}
		assert.Zero(t, AvgClaimTimeHours(products))
		assert.Zero(t, AvgClaimTimeHours(nil))
	})

	t.Run("mean over reserved and pending rounded to one decimal", func(t *testing.T) {
		t.Parallel()

		products := []*entity.ProductRequest{
			product(entity.ProductStatusReserved, now, 10*time.Hour),
			product(entity.ProductStatusPending, now, 5*time.Hour+20*time.Minute),
			product(entity.ProductStatusAvailable, now, 100*time.Hour),
		}
		// (10 + 5.3333) / 2 = 7.6667
		assert.Equal(t, 7.7, AvgClaimTimeHours(products))
	})
}

func TestApprovalRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		approvals []*bool
		expected  float64
	}{
		{name: "no decisions", approvals: []*bool{nil, nil}, expected: 0},
		{name: "empty", approvals: nil, expected: 0},
		{name: "pending is excluded from denominator", approvals: []*bool{boolPtr(true), nil, boolPtr(false)}, expected: 0.5},
		{name: "rounded to two decimals", approvals: []*bool{boolPtr(true), boolPtr(true), boolPtr(false)}, expected: 0.67},
		{name: "all approved", approvals: []*bool{boolPtr(true)}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nonprofits := make([]*entity.Nonprofit, 0, len(tt.approvals))
			for _, a := range tt.approvals {
				nonprofits = append(nonprofits, &entity.Nonprofit{ID: uuid.New(), DocumentApproval: a})
			}
			assert.Equal(t, tt.expected, ApprovalRate(nonprofits))
		})
	}
}

func TestSpeedBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{name: "exactly 24h", elapsed: 24 * time.Hour, expected: BucketWithin24h},
		{name: "just over 24h", elapsed: 24*time.Hour + time.Second, expected: BucketWithin48h},
		{name: "exactly 48h", elapsed: 48 * time.Hour, expected: BucketWithin48h},
		{name: "exactly 168h", elapsed: 168 * time.Hour, expected: BucketWithin1Week},
		{name: "168h and one second", elapsed: 168*time.Hour + time.Second, expected: BucketMoreThan1Week},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SpeedBucket(tt.elapsed.Hours()))
		})
	}
}

func TestClaimSpeedBuckets(t *testing.T) {
	t.Parallel()

	products := []*entity.ProductRequest{
		product(entity.ProductStatusReserved, now, 24*time.Hour),
		product(entity.ProductStatusPending, now, 48*time.Hour),
		product(entity.ProductStatusReserved, now, 168*time.Hour),
		product(entity.ProductStatusReserved, now, 168*time.Hour+time.Second),
		product(entity.ProductStatusAvailable, now, time.Hour),
	}

	assert.Equal(t, ClaimSpeed{Within24h: 1, Within48h: 1, Within1Week: 1, MoreThan1Week: 1}, ClaimSpeedBuckets(products))
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	users := []*entity.User{
		{Role: entity.RoleAdmin},
		{Role: entity.RoleNonprofit},
		{Role: entity.RoleNonprofit},
		{Role: entity.RoleOther},
	}
	products := []*entity.ProductRequest{
		product(entity.ProductStatusAvailable, now, 0),
		product(entity.ProductStatusReserved, now, 2*time.Hour),
	}

	health := ComputeSystemHealth(users, products, nil)

	assert.Equal(t, map[entity.Role]int{
		entity.RoleAdmin:     1,
		entity.RoleStaff:     0,
		entity.RoleSupplier:  0,
		entity.RoleNonprofit: 2,
	}, health.UserCounts)
	assert.Equal(t, map[entity.ProductStatus]int{
		entity.ProductStatusAvailable: 1,
		entity.ProductStatusReserved:  1,
		entity.ProductStatusPending:   0,
	}, health.ProductCounts)
	assert.Equal(t, 2.0, health.AvgClaimTimeHours)
	assert.Zero(t, health.ApprovalRate)
	assert.Equal(t, 4, health.TotalUsers)
}

func TestMonthlyTimeline(t *testing.T) {
	t.Parallel()

	products := []*entity.ProductRequest{
		product(entity.ProductStatusAvailable, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 0),
		product(entity.ProductStatusReserved, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Hour),
		product(entity.ProductStatusAvailable, time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), 0),
		product(entity.ProductStatusAvailable, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 0),
	}

	timeline := MonthlyTimeline(products, now, TimelineMonths)

	require.Len(t, timeline, 6)
	assert.Equal(t, "2024-01", timeline[0].Month)
	assert.Equal(t, 1, timeline[0].Count)
	assert.Equal(t, "2024-06", timeline[5].Month)
	assert.Equal(t, 2, timeline[5].Count)
	assert.Equal(t, 20, timeline[5].Quantity)
	assert.Zero(t, timeline[3].Count)
}

func TestClaimTimeline(t *testing.T) {
	t.Parallel()

	products := []*entity.ProductRequest{
		product(entity.ProductStatusReserved, time.Date(2022, 3, 5, 0, 0, 0, 0, time.UTC), time.Hour),
		product(entity.ProductStatusPending, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Hour),
		product(entity.ProductStatusReserved, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), time.Hour),
		product(entity.ProductStatusAvailable, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 0),
	}

	timeline := ClaimTimeline(products)

	require.Len(t, timeline, 2)
	assert.Equal(t, MonthlyPoint{Month: "2022-03", Count: 1, Quantity: 10}, timeline[0])
	assert.Equal(t, MonthlyPoint{Month: "2024-06", Count: 2, Quantity: 20}, timeline[1])
}

func TestMatchScores(t *testing.T) {
	t.Parallel()

	t.Run("zero for every category without available products", func(t *testing.T) {
		t.Parallel()

		interests := entity.CategoryFlags{Protein: true, Produce: true}
		products := []*entity.ProductRequest{
			product(entity.ProductStatusReserved, now, time.Hour, entity.CategoryProtein),
		}

		scores := MatchScores(&interests, products)
		for _, c := range entity.Categories {
			assert.Zero(t, scores[c], c)
		}
	})

	t.Run("zero for uninterested categories", func(t *testing.T) {
		t.Parallel()

		interests := entity.CategoryFlags{Produce: true}
		products := []*entity.ProductRequest{
			product(entity.ProductStatusAvailable, now, 0, entity.CategoryProtein),
			product(entity.ProductStatusAvailable, now, 0, entity.CategoryProtein, entity.CategoryProduce),
			product(entity.ProductStatusAvailable, now, 0, entity.CategoryOther),
			product(entity.ProductStatusAvailable, now, 0, entity.CategoryOther),
		}

		scores := MatchScores(&interests, products)
		assert.Zero(t, scores[entity.CategoryProtein])
		assert.Equal(t, 25.0, scores[entity.CategoryProduce])
		assert.Zero(t, scores[entity.CategoryOther])
	})

	t.Run("nil interests score nothing", func(t *testing.T) {
		t.Parallel()

		products := []*entity.ProductRequest{product(entity.ProductStatusAvailable, now, 0, entity.CategoryProtein)}
		assert.Zero(t, MatchScores(nil, products)[entity.CategoryProtein])
	})
}

func TestAvailabilityTrendUsesCurrentStatus(t *testing.T) {
	t.Parallel()

	tenDaysAgo := now.AddDate(0, 0, -10)
	products := []*entity.ProductRequest{
		product(entity.ProductStatusAvailable, tenDaysAgo, 0),
		product(entity.ProductStatusReserved, tenDaysAgo, time.Hour),
		product(entity.ProductStatusAvailable, now.AddDate(0, 0, -31), 0),
		product(entity.ProductStatusAvailable, now.AddDate(0, 0, -1), 0),
	}

	trend := AvailabilityTrend(products, now, TrendDays)

	assert.Equal(t, []DailyPoint{
		{Date: "2024-06-05", Count: 1},
		{Date: "2024-06-14", Count: 1},
	}, trend)
}

func TestUpcomingPickups(t *testing.T) {
	t.Parallel()

	withPickup := func(status entity.ProductStatus, date time.Time) *entity.ProductRequest {
		p := product(status, now.AddDate(0, 0, -2), time.Hour)
		p.PickupInfo = &entity.PickupInfo{ID: uuid.New(), PickupDate: date, PickupLocation: "dock 4"}
		return p
	}

	soon := withPickup(entity.ProductStatusReserved, now.AddDate(0, 0, 2))
	later := withPickup(entity.ProductStatusPending, now.AddDate(0, 0, 30))
	products := []*entity.ProductRequest{
		later,
		soon,
		withPickup(entity.ProductStatusReserved, now.AddDate(0, 0, 31)),
		withPickup(entity.ProductStatusReserved, now.AddDate(0, 0, -1)),
		withPickup(entity.ProductStatusAvailable, now.AddDate(0, 0, 1)),
	}

	pickups := UpcomingPickups(products, now, PickupWindow)

	require.Len(t, pickups, 2)
	assert.Equal(t, soon.ID, pickups[0].ProductID)
	assert.Equal(t, later.ID, pickups[1].ProductID)
}

func TestTypeBreakdown(t *testing.T) {
	t.Parallel()

	products := []*entity.ProductRequest{
		product(entity.ProductStatusAvailable, now, 0, entity.CategoryProtein, entity.CategoryProduce),
		product(entity.ProductStatusAvailable, now, 0, entity.CategoryProtein),
		{ID: uuid.New(), Status: entity.ProductStatusAvailable},
	}

	breakdown := TypeBreakdown(products)

	assert.Equal(t, 2, breakdown[entity.CategoryProtein])
	assert.Equal(t, 1, breakdown[entity.CategoryProduce])
	assert.Zero(t, breakdown[entity.CategoryAlreadyPreparedFood])
	assert.Len(t, breakdown, len(entity.Categories))
}

func TestNonprofitEngagement(t *testing.T) {
	t.Parallel()

	busy := &entity.Nonprofit{ID: uuid.New(), Name: "Busy", OrganizationType: entity.OrgTypeFoodBank, DocumentApproval: boolPtr(true)}
	idle := &entity.Nonprofit{ID: uuid.New(), Name: "Idle", OrganizationType: entity.OrgTypeShelter}
	rejected := &entity.Nonprofit{ID: uuid.New(), Name: "No", OrganizationType: entity.OrgTypeFoodBank, DocumentApproval: boolPtr(false)}

	claimed := product(entity.ProductStatusReserved, now, time.Hour)
	claimed.ClaimedByID = &busy.ID

	engagement := ComputeNonprofitEngagement([]*entity.Nonprofit{idle, busy, rejected}, []*entity.ProductRequest{claimed})

	require.Len(t, engagement.Nonprofits, 3)
	assert.Equal(t, busy.ID, engagement.Nonprofits[0].NonprofitID)
	assert.Equal(t, 1, engagement.Nonprofits[0].ClaimedCount)
	assert.Equal(t, ApprovalBreakdown{Approved: 1, Pending: 1, Rejected: 1}, engagement.ApprovalBreakdown)
	assert.Equal(t, 2, engagement.OrgTypeBreakdown[entity.OrgTypeFoodBank])
}

func TestSupplierActivity(t *testing.T) {
	t.Parallel()

	quiet := &entity.Supplier{ID: uuid.New(), Name: "Quiet", Cadence: entity.CadenceMonthly}
	busy := &entity.Supplier{ID: uuid.New(), Name: "Busy", Cadence: entity.CadenceDaily}

	p1 := product(entity.ProductStatusAvailable, now, 0)
	p1.SupplierID = busy.ID
	p2 := product(entity.ProductStatusReserved, now, time.Hour)
	p2.SupplierID = busy.ID

	activity := ComputeSupplierActivity([]*entity.Supplier{quiet, busy}, []*entity.ProductRequest{p1, p2})

	require.Len(t, activity.Suppliers, 2)
	assert.Equal(t, busy.ID, activity.Suppliers[0].SupplierID)
	assert.Equal(t, 2, activity.Suppliers[0].PostedCount)
	assert.Equal(t, 1, activity.CadenceBreakdown[entity.CadenceDaily])
}

func TestStatusTrends(t *testing.T) {
	t.Parallel()

	products := []*entity.ProductRequest{
		product(entity.ProductStatusAvailable, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), 0),
		product(entity.ProductStatusPending, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), time.Hour),
		product(entity.ProductStatusReserved, time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), time.Hour),
	}

	trends := StatusTrends(products, now, TimelineMonths)

	require.Len(t, trends, 6)
	last := trends[5]
	assert.Equal(t, "2024-06", last.Month)
	assert.Equal(t, 1, last.Counts[entity.ProductStatusAvailable])
	assert.Equal(t, 1, last.Counts[entity.ProductStatusPending])
	assert.Zero(t, trends[0].Counts[entity.ProductStatusReserved])
}

func TestClaimsOverTime(t *testing.T) {
	t.Parallel()

	recent := product(entity.ProductStatusReserved, now.AddDate(0, 0, -3), 24*time.Hour)
	old := product(entity.ProductStatusReserved, now.AddDate(0, 0, -60), 24*time.Hour)

	points := ClaimsOverTime([]*entity.ProductRequest{recent, old}, now, TrendDays)

	assert.Equal(t, []DailyPoint{{Date: "2024-06-13", Count: 1}}, points)
}
