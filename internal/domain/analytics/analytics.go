// Package analytics holds the pure reductions behind the reporting endpoints.
// Every function takes already-fetched rows and a reference time; nothing here touches storage.
package analytics

import (
	"math"
	"sort"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/util"

	"github.com/google/uuid"
)

const (
	hoursWithin24h   = 24
	hoursWithin48h   = 48
	hoursWithin1Week = 168

	// TimelineMonths is the trailing window of supplier timelines and status trends.
	TimelineMonths = 6
	// TrendDays is the trailing window of daily trends.
	TrendDays = 30
	// PickupWindow is how far ahead upcoming pickups are listed.
	PickupWindow = 30 * 24 * time.Hour
)

// Claim speed bucket keys.
const (
	BucketWithin24h     = "within24h"
	BucketWithin48h     = "within48h"
	BucketWithin1Week   = "within1week"
	BucketMoreThan1Week = "moreThan1week"
)

type ClaimSpeed struct {
	Within24h     int `json:"within24h"`
	Within48h     int `json:"within48h"`
	Within1Week   int `json:"within1week"`
	MoreThan1Week int `json:"moreThan1week"`
}

type MonthlyPoint struct {
	Month    string `json:"month"`
	Count    int    `json:"count"`
	Quantity int    `json:"quantity"`
}

type DailyPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatusTrendPoint struct {
	Month  string                       `json:"month"`
	Counts map[entity.ProductStatus]int `json:"counts"`
}

type ApprovalBreakdown struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type SystemHealth struct {
	UserCounts        map[entity.Role]int          `json:"userCounts"`
	ProductCounts     map[entity.ProductStatus]int `json:"productCounts"`
	TotalUsers        int                          `json:"totalUsers"`
	TotalProducts     int                          `json:"totalProducts"`
	AvgClaimTimeHours float64                      `json:"avgClaimTimeHours"`
	ApprovalRate      float64                      `json:"approvalRate"`
}

type SupplierMetrics struct {
	SupplierID      uuid.UUID                    `json:"supplierId"`
	TotalProducts   int                          `json:"totalProducts"`
	StatusBreakdown map[entity.ProductStatus]int `json:"statusBreakdown"`
	ClaimSpeed      ClaimSpeed                   `json:"claimSpeed"`
	MonthlyTimeline []MonthlyPoint               `json:"monthlyTimeline"`
	TypeBreakdown   map[entity.Category]int      `json:"typeBreakdown"`
}

type UpcomingPickup struct {
	ProductID      uuid.UUID          `json:"productId"`
	Name           string             `json:"name"`
	Quantity       int                `json:"quantity"`
	Unit           entity.Unit        `json:"unit"`
	PickupDate     time.Time          `json:"pickupDate"`
	PickupLocation string             `json:"pickupLocation"`
	Timeframes     []entity.Timeframe `json:"pickupTimeframe"`
}

type NonprofitMetrics struct {
	NonprofitID       uuid.UUID                   `json:"nonprofitId"`
	TotalClaimed      int                         `json:"totalClaimed"`
	ClaimTimeline     []MonthlyPoint              `json:"claimTimeline"`
	TypeBreakdown     map[entity.Category]int     `json:"typeBreakdown"`
	UpcomingPickups   []UpcomingPickup            `json:"upcomingPickups"`
	MatchScores       map[entity.Category]float64 `json:"matchScores"`
	AvailabilityTrend []DailyPoint                `json:"availabilityTrend"`
}

type NonprofitClaims struct {
	NonprofitID      uuid.UUID               `json:"nonprofitId"`
	Name             string                  `json:"name"`
	OrganizationType entity.OrganizationType `json:"organizationType"`
	Approval         entity.ApprovalState    `json:"approval"`
	ClaimedCount     int                     `json:"claimedCount"`
}

type NonprofitEngagement struct {
	Nonprofits        []NonprofitClaims               `json:"nonprofits"`
	OrgTypeBreakdown  map[entity.OrganizationType]int `json:"organizationTypeBreakdown"`
	ApprovalBreakdown ApprovalBreakdown               `json:"approvalBreakdown"`
}

type SupplierPosts struct {
	SupplierID  uuid.UUID      `json:"supplierId"`
	Name        string         `json:"name"`
	Cadence     entity.Cadence `json:"cadence"`
	PostedCount int            `json:"postedCount"`
}

type SupplierActivity struct {
	Suppliers        []SupplierPosts        `json:"suppliers"`
	CadenceBreakdown map[entity.Cadence]int `json:"cadenceBreakdown"`
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))

	return math.Round(x*pow) / pow
}

// UserCounts counts users per reported role. Roles with no users are present with 0.
func UserCounts(users []*entity.User) map[entity.Role]int {
	counts := make(map[entity.Role]int, len(entity.CountedRoles))
	for _, role := range entity.CountedRoles {
		counts[role] = 0
	}
	for _, u := range users {
		if _, ok := counts[u.Role]; ok {
			counts[u.Role]++
		}
	}

	return counts
}

// StatusBreakdown counts products per status, every status present.
func StatusBreakdown(products []*entity.ProductRequest) map[entity.ProductStatus]int {
	counts := make(map[entity.ProductStatus]int, len(entity.ProductStatuses))
	for _, s := range entity.ProductStatuses {
		counts[s] = 0
	}
	for _, p := range products {
		if _, ok := counts[p.Status]; ok {
			counts[p.Status]++
		}
	}

	return counts
}

// AvgClaimTimeHours is the mean of updatedAt-createdAt in hours over claimed products,
// rounded to one decimal. Zero when nothing is claimed.
func AvgClaimTimeHours(products []*entity.ProductRequest) float64 {
	var total float64
	var n int
	for _, p := range products {
		if !p.Status.IsClaimed() {
			continue
		}
		total += p.ClaimDuration().Hours()
		n++
	}
	if n == 0 {
		return 0
	}

	return Round(total/float64(n), 1)
}

// Approvals splits nonprofits by approval state.
func Approvals(nonprofits []*entity.Nonprofit) ApprovalBreakdown {
	var b ApprovalBreakdown
	for _, n := range nonprofits {
		switch n.Approval() {
		case entity.ApprovalApproved:
			b.Approved++
		case entity.ApprovalRejected:
			b.Rejected++
		default:
			b.Pending++
		}
	}

	return b
}

// ApprovalRate is approved/(approved+rejected) rounded to two decimals, zero when nothing was decided.
func ApprovalRate(nonprofits []*entity.Nonprofit) float64 {
	b := Approvals(nonprofits)
	decided := b.Approved + b.Rejected
	if decided == 0 {
		return 0
	}

	return Round(float64(b.Approved)/float64(decided), 2)
}

func ComputeSystemHealth(users []*entity.User, products []*entity.ProductRequest, nonprofits []*entity.Nonprofit) *SystemHealth {
	return &SystemHealth{
		UserCounts:        UserCounts(users),
		ProductCounts:     StatusBreakdown(products),
		TotalUsers:        len(users),
		TotalProducts:     len(products),
		AvgClaimTimeHours: AvgClaimTimeHours(products),
		ApprovalRate:      ApprovalRate(nonprofits),
	}
}

// SpeedBucket classifies a claim duration. Upper bounds are inclusive and checked in order.
func SpeedBucket(hours float64) string {
	switch {
	case hours <= hoursWithin24h:
		return BucketWithin24h
	case hours <= hoursWithin48h:
		return BucketWithin48h
	case hours <= hoursWithin1Week:
		return BucketWithin1Week
	default:
		return BucketMoreThan1Week
	}
}

// ClaimSpeedBuckets buckets claimed products by how long they stayed available.
func ClaimSpeedBuckets(products []*entity.ProductRequest) ClaimSpeed {
	var speed ClaimSpeed
	for _, p := range products {
		if !p.Status.IsClaimed() {
			continue
		}
		switch SpeedBucket(p.ClaimDuration().Hours()) {
		case BucketWithin24h:
			speed.Within24h++
		case BucketWithin48h:
			speed.Within48h++
		case BucketWithin1Week:
			speed.Within1Week++
		default:
			speed.MoreThan1Week++
		}
	}

	return speed
}

// TypeBreakdown counts products per category flag. A product with several flags counts once in each.
func TypeBreakdown(products []*entity.ProductRequest) map[entity.Category]int {
	counts := make(map[entity.Category]int, len(entity.Categories))
	for _, c := range entity.Categories {
		counts[c] = 0
	}
	for _, p := range products {
		for _, c := range p.Flags().Set() {
			counts[c]++
		}
	}

	return counts
}

// MonthlyTimeline buckets products by creation month over the trailing months ending at now's month.
// Every month in the window is present, oldest first.
func MonthlyTimeline(products []*entity.ProductRequest, now time.Time, months int) []MonthlyPoint {
	start := util.MonthStart(now, -(months - 1))
	points := make([]MonthlyPoint, months)
	index := make(map[string]int, months)
	for i := range months {
		key := util.MonthKey(util.MonthStart(start, i))
		points[i] = MonthlyPoint{Month: key}
		index[key] = i
	}

	for _, p := range products {
		if p.CreatedAt.Before(start) {
			continue
		}
		i, ok := index[util.MonthKey(p.CreatedAt)]
		if !ok {
			continue
		}
		points[i].Count++
		points[i].Quantity += p.Quantity
	}

	return points
}

// ClaimTimeline buckets claimed products by creation month across all time.
// Only months with at least one product appear, oldest first.
func ClaimTimeline(products []*entity.ProductRequest) []MonthlyPoint {
	byMonth := make(map[string]*MonthlyPoint)
	for _, p := range products {
		if !p.Status.IsClaimed() {
			continue
		}
		key := util.MonthKey(p.CreatedAt)
		point, ok := byMonth[key]
		if !ok {
			point = &MonthlyPoint{Month: key}
			byMonth[key] = point
		}
		point.Count++
		point.Quantity += p.Quantity
	}

	points := make([]MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	return points
}

// UpcomingPickups lists claimed products whose pickup date lies in [now, now+window], soonest first.
func UpcomingPickups(products []*entity.ProductRequest, now time.Time, window time.Duration) []UpcomingPickup {
	end := now.Add(window)
	pickups := make([]UpcomingPickup, 0)
	for _, p := range products {
		if !p.Status.IsClaimed() || p.PickupInfo == nil {
			continue
		}
		date := p.PickupInfo.PickupDate
		if date.Before(now) || date.After(end) {
			continue
		}
		pickups = append(pickups, UpcomingPickup{
			ProductID:      p.ID,
			Name:           p.Name,
			Quantity:       p.Quantity,
			Unit:           p.Unit,
			PickupDate:     date,
			PickupLocation: p.PickupInfo.PickupLocation,
			Timeframes:     p.PickupInfo.PickupTimeframes,
		})
	}
	sort.SliceStable(pickups, func(i, j int) bool { return pickups[i].PickupDate.Before(pickups[j].PickupDate) })

	return pickups
}

// MatchScores computes, per category, the share of available products in that category
// as a percentage, for categories the nonprofit is interested in. Everything else is 0.
func MatchScores(interests *entity.CategoryFlags, products []*entity.ProductRequest) map[entity.Category]float64 {
	scores := make(map[entity.Category]float64, len(entity.Categories))
	for _, c := range entity.Categories {
		scores[c] = 0
	}

	var available []*entity.ProductRequest
	for _, p := range products {
		if p.Status == entity.ProductStatusAvailable {
			available = append(available, p)
		}
	}
	if interests == nil || len(available) == 0 {
		return scores
	}

	for _, c := range entity.Categories {
		if !interests.Has(c) {
			continue
		}
		var matching int
		for _, p := range available {
			if p.Flags().Has(c) {
				matching++
			}
		}
		scores[c] = float64(matching) / float64(len(available)) * 100
	}

	return scores
}

// AvailabilityTrend counts currently-AVAILABLE products per creation day over the trailing days.
// The status filter is on current state, so a product claimed since its creation does not appear.
func AvailabilityTrend(products []*entity.ProductRequest, now time.Time, days int) []DailyPoint {
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	return dailyCounts(products, func(p *entity.ProductRequest) (time.Time, bool) {
		if p.Status != entity.ProductStatusAvailable || p.CreatedAt.Before(since) {
			return time.Time{}, false
		}

		return p.CreatedAt, true
	})
}

// ClaimsOverTime counts claimed products per day of their last status change over the trailing days.
func ClaimsOverTime(products []*entity.ProductRequest, now time.Time, days int) []DailyPoint {
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	return dailyCounts(products, func(p *entity.ProductRequest) (time.Time, bool) {
		if !p.Status.IsClaimed() || p.UpdatedAt.Before(since) {
			return time.Time{}, false
		}

		return p.UpdatedAt, true
	})
}

func dailyCounts(products []*entity.ProductRequest, pick func(*entity.ProductRequest) (time.Time, bool)) []DailyPoint {
	byDay := make(map[string]int)
	for _, p := range products {
		at, ok := pick(p)
		if !ok {
			continue
		}
		byDay[util.DayKey(at)]++
	}

	points := make([]DailyPoint, 0, len(byDay))
	for day, count := range byDay {
		points = append(points, DailyPoint{Date: day, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points
}

// StatusTrends counts products per status per creation month over the trailing months.
func StatusTrends(products []*entity.ProductRequest, now time.Time, months int) []StatusTrendPoint {
	start := util.MonthStart(now, -(months - 1))
	points := make([]StatusTrendPoint, months)
	index := make(map[string]int, months)
	for i := range months {
		key := util.MonthKey(util.MonthStart(start, i))
		points[i] = StatusTrendPoint{Month: key, Counts: StatusBreakdown(nil)}
		index[key] = i
	}

	for _, p := range products {
		if p.CreatedAt.Before(start) {
			continue
		}
		i, ok := index[util.MonthKey(p.CreatedAt)]
		if !ok {
			continue
		}
		if _, known := points[i].Counts[p.Status]; known {
			points[i].Counts[p.Status]++
		}
	}

	return points
}

// ComputeSupplierMetrics reduces one supplier's products.
func ComputeSupplierMetrics(supplierID uuid.UUID, products []*entity.ProductRequest, now time.Time) *SupplierMetrics {
	return &SupplierMetrics{
		SupplierID:      supplierID,
		TotalProducts:   len(products),
		StatusBreakdown: StatusBreakdown(products),
		ClaimSpeed:      ClaimSpeedBuckets(products),
		MonthlyTimeline: MonthlyTimeline(products, now, TimelineMonths),
		TypeBreakdown:   TypeBreakdown(products),
	}
}

// ComputeNonprofitMetrics reduces a nonprofit's claimed products against the current inventory.
// inventory must hold every product whose status matters for match scores and the availability trend.
func ComputeNonprofitMetrics(
	nonprofitID uuid.UUID,
	claimed []*entity.ProductRequest,
	inventory []*entity.ProductRequest,
	interests *entity.CategoryFlags,
	now time.Time,
) *NonprofitMetrics {
	return &NonprofitMetrics{
		NonprofitID:       nonprofitID,
		TotalClaimed:      len(claimed),
		ClaimTimeline:     ClaimTimeline(claimed),
		TypeBreakdown:     TypeBreakdown(claimed),
		UpcomingPickups:   UpcomingPickups(claimed, now, PickupWindow),
		MatchScores:       MatchScores(interests, inventory),
		AvailabilityTrend: AvailabilityTrend(inventory, now, TrendDays),
	}
}

// ComputeNonprofitEngagement reports claims per nonprofit and the org-type and approval mix.
func ComputeNonprofitEngagement(nonprofits []*entity.Nonprofit, products []*entity.ProductRequest) *NonprofitEngagement {
	claims := make(map[uuid.UUID]int)
	for _, p := range products {
		if p.Status.IsClaimed() && p.ClaimedByID != nil {
			claims[*p.ClaimedByID]++
		}
	}

	out := &NonprofitEngagement{
		Nonprofits:        make([]NonprofitClaims, 0, len(nonprofits)),
		OrgTypeBreakdown:  make(map[entity.OrganizationType]int),
		ApprovalBreakdown: Approvals(nonprofits),
	}
	for _, n := range nonprofits {
		out.Nonprofits = append(out.Nonprofits, NonprofitClaims{
			NonprofitID:      n.ID,
			Name:             n.Name,
			OrganizationType: n.OrganizationType,
			Approval:         n.Approval(),
			ClaimedCount:     claims[n.ID],
		})
		out.OrgTypeBreakdown[n.OrganizationType]++
	}
	sort.SliceStable(out.Nonprofits, func(i, j int) bool {
		return out.Nonprofits[i].ClaimedCount > out.Nonprofits[j].ClaimedCount
	})

	return out
}

// ComputeSupplierActivity reports products posted per supplier and the cadence mix.
func ComputeSupplierActivity(suppliers []*entity.Supplier, products []*entity.ProductRequest) *SupplierActivity {
	posted := make(map[uuid.UUID]int)
	for _, p := range products {
		posted[p.SupplierID]++
	}

	out := &SupplierActivity{
		Suppliers:        make([]SupplierPosts, 0, len(suppliers)),
		CadenceBreakdown: make(map[entity.Cadence]int),
	}
	for _, s := range suppliers {
		out.Suppliers = append(out.Suppliers, SupplierPosts{
			SupplierID:  s.ID,
			Name:        s.Name,
			Cadence:     s.Cadence,
			PostedCount: posted[s.ID],
		})
		out.CadenceBreakdown[s.Cadence]++
	}
	sort.SliceStable(out.Suppliers, func(i, j int) bool {
		return out.Suppliers[i].PostedCount > out.Suppliers[j].PostedCount
	})

	return out
}
