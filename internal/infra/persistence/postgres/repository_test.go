package postgres

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.SupplierModel{},
		&model.NonprofitModel{},
		&model.ProductInterestsModel{},
		&model.UserModel{},
		&model.ProductTypeModel{},
		&model.PickupInfoModel{},
		&model.ProductRequestModel{},
		&model.NonprofitDocumentModel{},
		&model.AnnouncementModel{},
		&model.ThreadModel{},
		&model.CommentModel{},
		&model.UserDeviceModel{},
	))

	return db
}

func boolPtr(b bool) *bool { return &b }

func seedNonprofit(t *testing.T, db *gorm.DB, approval *bool) *entity.Nonprofit {
	t.Helper()
	ctx := context.Background()
	repo := NewNonprofitRepository(db)

	nonprofit := &entity.Nonprofit{
		Name:             "Eastside Pantry",
		OrganizationType: entity.OrgTypeFoodPantry,
		FundingSources:   []string{"grants"},
	}
	require.NoError(t, repo.Create(ctx, nonprofit))
	if approval != nil {
		require.NoError(t, repo.SetApproval(ctx, nonprofit.ID, *approval))
	}

	return nonprofit
}

func seedProduct(t *testing.T, db *gorm.DB, supplierID uuid.UUID, flags entity.CategoryFlags, pickup time.Time) *entity.ProductRequest {
	t.Helper()

	product := &entity.ProductRequest{
		Name:        "Apples",
		Unit:        entity.UnitPounds,
		Quantity:    40,
		Description: "Crisp",
		SupplierID:  supplierID,
		ProductType: &entity.ProductType{CategoryFlags: flags},
		PickupInfo: &entity.PickupInfo{
			PickupDate:       pickup,
			PickupTimeframes: []entity.Timeframe{entity.TimeframeMorning, entity.TimeframeEvening},
			PickupLocation:   "Dock 4",
			ContactName:      "Sam",
			ContactPhone:     "555-0100",
		},
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *entity.Supplier {
	t.Helper()

	supplier := &entity.Supplier{Name: name, Cadence: entity.CadenceWeekly}
	require.NoError(t, NewSupplierRepository(db).Create(context.Background(), supplier))

	return supplier
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	supplier := seedSupplier(t, db, "Green Farms")
	pickup := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	flags := entity.CategoryFlags{Protein: true, ProteinTypes: []entity.ProteinType{entity.ProteinFish}, ProteinSpecifics: "salmon"}
	created := seedProduct(t, db, supplier.ID, flags, pickup)

	found, err := NewProductRepository(db).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusAvailable, found.Status)
	assert.Nil(t, found.ClaimedByID)
	require.NotNil(t, found.ProductType)
	assert.True(t, found.ProductType.Protein)
	assert.Equal(t, []entity.ProteinType{entity.ProteinFish}, found.ProductType.ProteinTypes)
	assert.Equal(t, "salmon", found.ProductType.ProteinSpecifics)
	require.NotNil(t, found.PickupInfo)
	assert.True(t, pickup.Equal(found.PickupInfo.PickupDate))
	assert.Equal(t, []entity.Timeframe{entity.TimeframeMorning, entity.TimeframeEvening}, found.PickupInfo.PickupTimeframes)

	_, err = NewProductRepository(db).FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ClaimIsConditional(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	supplier := seedSupplier(t, db, "Green Farms")
	product := seedProduct(t, db, supplier.ID, entity.FlagsFor(entity.CategoryProduce), time.Now().UTC().Add(48*time.Hour))
	first := seedNonprofit(t, db, boolPtr(true))
	second := seedNonprofit(t, db, boolPtr(true))
	now := time.Now().UTC()

	require.NoError(t, repo.Claim(ctx, product.ID, first.ID, entity.ProductStatusReserved, now))

	err := repo.Claim(ctx, product.ID, second.ID, entity.ProductStatusReserved, now)
	assert.ErrorIs(t, err, repository.ErrProductNotAvailable)

	claimed, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusReserved, claimed.Status)
	require.NotNil(t, claimed.ClaimedByID)
	assert.Equal(t, first.ID, *claimed.ClaimedByID)

	err = repo.Claim(ctx, uuid.New(), first.ID, entity.ProductStatusReserved, now)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Unclaim(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	supplier := seedSupplier(t, db, "Green Farms")
	product := seedProduct(t, db, supplier.ID, entity.FlagsFor(entity.CategoryOther), time.Now().UTC().Add(48*time.Hour))
	nonprofit := seedNonprofit(t, db, boolPtr(true))

	err := repo.Unclaim(ctx, product.ID, time.Now().UTC())
	assert.ErrorIs(t, err, repository.ErrProductNotClaimed)

	require.NoError(t, repo.Claim(ctx, product.ID, nonprofit.ID, entity.ProductStatusReserved, time.Now().UTC()))
	require.NoError(t, repo.Unclaim(ctx, product.ID, time.Now().UTC()))

	released, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusAvailable, released.Status)
	assert.Nil(t, released.ClaimedByID)
}

func TestProductRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	supplierA := seedSupplier(t, db, "A")
	supplierB := seedSupplier(t, db, "B")
	nonprofit := seedNonprofit(t, db, boolPtr(true))
	now := time.Now().UTC()

	soon := seedProduct(t, db, supplierA.ID, entity.FlagsFor(entity.CategoryProduce), now.Add(24*time.Hour))
	seedProduct(t, db, supplierA.ID, entity.FlagsFor(entity.CategoryProduce), now.Add(90*24*time.Hour))
	other := seedProduct(t, db, supplierB.ID, entity.FlagsFor(entity.CategoryProtein), now.Add(24*time.Hour))
	require.NoError(t, repo.Claim(ctx, other.ID, nonprofit.ID, entity.ProductStatusReserved, now))

	bySupplier, err := repo.List(ctx, entity.ProductFilter{SupplierID: &supplierA.ID})
	require.NoError(t, err)
	assert.Len(t, bySupplier, 2)

	claimed, err := repo.List(ctx, entity.ProductFilter{Statuses: entity.ClaimedStatuses})
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, other.ID, claimed[0].ID)

	byClaimer, err := repo.List(ctx, entity.ProductFilter{ClaimedByID: &nonprofit.ID})
	require.NoError(t, err)
	assert.Len(t, byClaimer, 1)

	window := [2]time.Time{now, now.Add(30 * 24 * time.Hour)}
	upcoming, err := repo.List(ctx, entity.ProductFilter{PickupBetween: &window, Statuses: []entity.ProductStatus{entity.ProductStatusAvailable}})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, soon.ID, upcoming[0].ID)
}

func TestProductRepository_ListPickupWindowHonoursContext(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	supplier := seedSupplier(t, db, "Green Farms")
	now := time.Now().UTC()
	seedProduct(t, db, supplier.ID, entity.FlagsFor(entity.CategoryProduce), now.Add(24*time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	window := [2]time.Time{now, now.Add(30 * 24 * time.Hour)}
	_, err := repo.List(ctx, entity.ProductFilter{PickupBetween: &window})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProductRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	supplier := seedSupplier(t, db, "Green Farms")
	product := seedProduct(t, db, supplier.ID, entity.FlagsFor(entity.CategoryProduce), time.Now().UTC())

	require.NoError(t, repo.Delete(ctx, product.ID))

	var typeCount, pickupCount int64
	require.NoError(t, db.Model(&model.ProductTypeModel{}).Where("id = ?", product.ProductTypeID).Count(&typeCount).Error)
	require.NoError(t, db.Model(&model.PickupInfoModel{}).Where("id = ?", product.PickupInfoID).Count(&pickupCount).Error)
	assert.Zero(t, typeCount)
	assert.Zero(t, pickupCount)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)
}

func TestNonprofitRepository_ApprovalLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNonprofitRepository(db)

	nonprofit := seedNonprofit(t, db, nil)
	found, err := repo.FindByID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DocumentApproval)
	assert.Equal(t, []string{"grants"}, found.FundingSources)

	require.NoError(t, repo.SetApproval(ctx, nonprofit.ID, true))
	found, err = repo.FindByID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.True(t, found.CanClaim())

	documentID := uuid.New()
	require.NoError(t, repo.AttachDocument(ctx, nonprofit.ID, documentID))
	found, err = repo.FindByID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DocumentApproval)
	require.NotNil(t, found.DocumentID)
	assert.Equal(t, documentID, *found.DocumentID)

	assert.ErrorIs(t, repo.SetApproval(ctx, uuid.New(), true), repository.ErrNonprofitNotFound)
}

func TestNonprofitRepository_ListByApproval(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNonprofitRepository(db)

	seedNonprofit(t, db, nil)
	seedNonprofit(t, db, boolPtr(true))
	seedNonprofit(t, db, boolPtr(false))

	for state, want := range map[entity.ApprovalState]int{
		entity.ApprovalPending:  1,
		entity.ApprovalApproved: 1,
		entity.ApprovalRejected: 1,
	} {
		got, err := repo.List(ctx, repository.NonprofitFilter{Approval: &state})
		require.NoError(t, err)
		assert.Len(t, got, want, state)
	}

	all, err := repo.List(ctx, repository.NonprofitFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSupplierRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "Green Farms")

	err := NewSupplierRepository(db).Create(context.Background(), &entity.Supplier{Name: "Green Farms", Cadence: entity.CadenceTBD})
	assert.ErrorIs(t, err, repository.ErrDuplicateSupplierName)
}

func TestUserRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{Email: " Ana@Example.org ", Name: "Ana", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByEmail(ctx, "ana@example.org")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOther, found.Role)

	err = repo.Create(ctx, &entity.User{Email: "ana@example.org", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	found.Role = entity.RoleStaff
	found.Name = "Ana B"
	require.NoError(t, repo.Update(ctx, found))

	staff := entity.RoleStaff
	listed, err := repo.List(ctx, repository.UserFilter{Role: &staff})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana B", listed[0].Name)

	require.NoError(t, repo.Delete(ctx, found.ID))
	_, err = repo.FindByID(ctx, found.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindInterestedRecipients(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	interests := NewProductInterestsRepository(db)

	register := func(email string, approval *bool, flags entity.CategoryFlags) {
		nonprofit := seedNonprofit(t, db, approval)
		survey := &entity.ProductInterests{CategoryFlags: flags}
		require.NoError(t, interests.Save(ctx, survey))
		require.NoError(t, users.Create(ctx, &entity.User{
			Email:           email,
			PasswordHash:    "hash",
			Role:            entity.RoleNonprofit,
			NonprofitID:     &nonprofit.ID,
			ProductSurveyID: &survey.ID,
		}))
	}

	register("produce@example.org", boolPtr(true), entity.FlagsFor(entity.CategoryProduce))
	register("protein@example.org", boolPtr(true), entity.FlagsFor(entity.CategoryProtein))
	register("pending@example.org", nil, entity.FlagsFor(entity.CategoryProduce))
	register("rejected@example.org", boolPtr(false), entity.FlagsFor(entity.CategoryProduce))

	recipients, err := users.FindInterestedRecipients(ctx, entity.CategoryFlags{Produce: true, Other: true})
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "produce@example.org", recipients[0].Email)

	none, err := users.FindInterestedRecipients(ctx, entity.CategoryFlags{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductInterestsRepository_FindByNonprofitID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	nonprofit := seedNonprofit(t, db, boolPtr(true))
	interests := NewProductInterestsRepository(db)

	_, err := interests.FindByNonprofitID(ctx, nonprofit.ID)
	assert.ErrorIs(t, err, repository.ErrInterestsNotFound)

	survey := &entity.ProductInterests{CategoryFlags: entity.CategoryFlags{ShelfStable: true, ShelfStableSpecifics: "canned"}}
	require.NoError(t, interests.Save(ctx, survey))
	require.NoError(t, NewUserRepository(db).Create(ctx, &entity.User{
		Email:           "np@example.org",
		PasswordHash:    "hash",
		Role:            entity.RoleNonprofit,
		NonprofitID:     &nonprofit.ID,
		ProductSurveyID: &survey.ID,
	}))

	found, err := interests.FindByNonprofitID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.True(t, found.ShelfStable)
	assert.Equal(t, "canned", found.ShelfStableSpecifics)

	survey.Produce = true
	require.NoError(t, interests.Save(ctx, survey))
	found, err = interests.FindByID(ctx, survey.ID)
	require.NoError(t, err)
	assert.True(t, found.Produce)
}

func TestContentRepositories_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	threads := NewThreadRepository(db)
	comments := NewCommentRepository(db)
	authorID := uuid.New()

	nonprofitThread := &entity.Thread{AuthorID: authorID, Title: "Cold storage", Content: "Who has space?", Audience: entity.AudienceNonprofit}
	allThread := &entity.Thread{AuthorID: authorID, Title: "Welcome", Content: "Hi", Audience: entity.AudienceAll}
	require.NoError(t, threads.Create(ctx, nonprofitThread))
	require.NoError(t, threads.Create(ctx, allThread))

	comment := &entity.Comment{ThreadID: nonprofitThread.ID, AuthorID: authorID, Content: "We do"}
	removed := &entity.Comment{ThreadID: nonprofitThread.ID, AuthorID: authorID, Content: "oops"}
	require.NoError(t, comments.Create(ctx, comment))
	require.NoError(t, comments.Create(ctx, removed))
	require.NoError(t, comments.SoftDelete(ctx, removed.ID, time.Now().UTC()))

	found, err := threads.FindByID(ctx, nonprofitThread.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Active{}, found.State)
	require.Len(t, found.Comments, 1)
	assert.Equal(t, comment.ID, found.Comments[0].ID)

	supplierView, err := threads.List(ctx, entity.VisibleGroups(entity.RoleSupplier))
	require.NoError(t, err)
	require.Len(t, supplierView, 1)
	assert.Equal(t, allThread.ID, supplierView[0].ID)

	require.NoError(t, threads.SoftDelete(ctx, allThread.ID, time.Now().UTC()))
	assert.ErrorIs(t, threads.SoftDelete(ctx, allThread.ID, time.Now().UTC()), repository.ErrThreadNotFound)

	_, err = threads.FindByID(ctx, allThread.ID)
	assert.ErrorIs(t, err, repository.ErrThreadNotFound)

	var row model.ThreadModel
	require.NoError(t, db.Unscoped().Where("id = ?", allThread.ID).First(&row).Error)
	assert.True(t, entity.IsDeleted(toThreadDomain(&row).State))
}

func TestAnnouncementRepository_UpdateAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAnnouncementRepository(db)

	announcement := &entity.Announcement{AuthorID: uuid.New(), Title: "Holiday hours", Content: "Closed Monday", Audience: entity.AudienceSupplier}
	require.NoError(t, repo.Create(ctx, announcement))

	announcement.Audience = entity.AudienceAll
	announcement.Title = "Holiday hours (updated)"
	require.NoError(t, repo.Update(ctx, announcement))

	listed, err := repo.List(ctx, entity.VisibleGroups(entity.RoleNonprofit))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Holiday hours (updated)", listed[0].Title)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Announcement{ID: uuid.New()}), repository.ErrAnnouncementNotFound)
}

func TestDocumentRepository_LatestWins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDocumentRepository(db)
	nonprofit := seedNonprofit(t, db, nil)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.NonprofitDocument{
		NonprofitID: nonprofit.ID, FileName: "old.pdf", MimeType: entity.MimeTypePDF, Size: 10, Data: []byte("legacy"), UploadedAt: base,
	}))
	latest := &entity.NonprofitDocument{
		NonprofitID: nonprofit.ID, FileName: "new.png", MimeType: entity.MimeTypePNG, Size: 20, StoragePath: "nonprofits/x/y.png", UploadedAt: base.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, latest))

	found, err := repo.FindByNonprofitID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, found.ID)
	assert.False(t, found.IsInline())

	require.NoError(t, repo.Delete(ctx, latest.ID))
	found, err = repo.FindByNonprofitID(ctx, nonprofit.ID)
	require.NoError(t, err)
	assert.True(t, found.IsInline())
	assert.Equal(t, []byte("legacy"), found.Data)
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDeviceRepository(db)
	userID := uuid.New()

	device := &entity.UserDevice{UserID: userID, FCMToken: "token-1", DeviceID: "phone", Platform: "android", IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, device))
	assert.ErrorIs(t, repo.CreateDevice(ctx, &entity.UserDevice{UserID: userID, FCMToken: "token-2", DeviceID: "phone", Platform: "android", IsActive: true}), repository.ErrDuplicateDevice)

	found, err := repo.FindDeviceByUserAndDeviceID(ctx, userID, "phone")
	require.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)

	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"token-1", "unknown"}))
	active, err := repo.FindActiveDevicesByUsers(ctx, []uuid.UUID{userID})
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-3"))
	active, err = repo.FindActiveDevicesByUsers(ctx, []uuid.UUID{userID})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-3", active[0].FCMToken)

	assert.ErrorIs(t, repo.DeactivateDevice(ctx, uuid.New()), repository.ErrDeviceNotFound)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewSupplierRepository().Create(ctx, &entity.Supplier{Name: "Temp", Cadence: entity.CadenceTBD}); err != nil {
			return err
		}

		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	suppliers, err := NewSupplierRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}
