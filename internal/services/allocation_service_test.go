package services

import (
	"context"
	"errors"
	"testing"

	"lumenstudio/darkroom/internal/allocation"
	"lumenstudio/darkroom/internal/common"
	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/db/repositories"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mock PercentResolver
type mockPercentResolver struct {
	resolveFunc func(ctx context.Context) (allocation.Percents, error)
}

func (m *mockPercentResolver) ResolvePercents(ctx context.Context) (allocation.Percents, error) {
	return m.resolveFunc(ctx)
}

func fixedPercents() allocation.Percents {
	return allocation.Percents{
		PhotographerBudget: decimal.NewFromFloat(0.35),
		SupportBonus1:      decimal.NewFromFloat(0.04),
		SupportBonus2:      decimal.NewFromFloat(0.03),
		Funds: []allocation.FundPercent{
			{Label: "Lead Fund", Pct: decimal.NewFromFloat(0.07)},
			{Label: "Marketing Fund", Pct: decimal.NewFromFloat(0.05)},
			{Label: "Art Director Fund", Pct: decimal.NewFromFloat(0.05)},
			{Label: "Manager Fund", Pct: decimal.NewFromFloat(0.02)},
			{Label: "Wishlist Fund", Pct: decimal.NewFromFloat(0.20)},
		},
	}
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Client{},
		&gormModels.User{},
		&gormModels.ShowRole{},
		&gormModels.Show{},
		&gormModels.ShowAssignment{},
		&gormModels.RevenueAllocation{},
		&gormModels.Payment{},
		&gormModels.Evaluation{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

type fixtures struct {
	client  gormModels.Client
	keyUser gormModels.User
	supUser gormModels.User
	keyRole gormModels.ShowRole
	supRole gormModels.ShowRole
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	f := fixtures{
		client:  gormModels.Client{ID: uuid.NewString(), FullName: "Harbor Café", Email: "events@harborcafe.test"},
		keyUser: gormModels.User{ID: uuid.NewString(), Email: "mira@studio.test", FullName: "Mira", StaffRole: constants.RolePhotographer},
		supUser: gormModels.User{ID: uuid.NewString(), Email: "theo@studio.test", FullName: "Theo", StaffRole: constants.RolePhotographer},
		keyRole: gormModels.ShowRole{ID: uuid.NewString(), Name: "Key"},
		supRole: gormModels.ShowRole{ID: uuid.NewString(), Name: "Support"},
	}
	for _, rec := range []interface{}{&f.client, &f.keyUser, &f.supUser, &f.keyRole, &f.supRole} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("Failed to seed fixture: %v", err)
		}
	}
	return f
}

func seedShow(t *testing.T, db *gorm.DB, f fixtures, price string) gormModels.Show {
	t.Helper()
	show := gormModels.Show{
		ID:         uuid.NewString(),
		ClientID:   f.client.ID,
		Title:      "Autumn lookbook",
		Status:     constants.StatusEditing,
		TotalPrice: decimal.RequireFromString(price),
	}
	if err := db.Create(&show).Error; err != nil {
		t.Fatalf("Failed to seed show: %v", err)
	}
	assignments := []gormModels.ShowAssignment{
		{ID: uuid.NewString(), ShowID: show.ID, UserID: f.keyUser.ID, ShowRoleID: f.keyRole.ID},
		{ID: uuid.NewString(), ShowID: show.ID, UserID: f.supUser.ID, ShowRoleID: f.supRole.ID},
	}
	for i := range assignments {
		if err := db.Create(&assignments[i]).Error; err != nil {
			t.Fatalf("Failed to seed assignment: %v", err)
		}
	}
	return show
}

func newAllocationServiceForTest(db *gorm.DB) *AllocationService {
	resolver := &mockPercentResolver{
		resolveFunc: func(ctx context.Context) (allocation.Percents, error) {
			return fixedPercents(), nil
		},
	}
	return NewAllocationService(
		db,
		repositories.NewShowRepository(db),
		repositories.NewAllocationRepository(db),
		resolver,
		nil,
	)
}

func TestAllocationService_RecalculateAndSave(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	show := seedShow(t, db, f, "1000")
	svc := newAllocationServiceForTest(db)

	rows, err := svc.RecalculateAndSave(context.Background(), show.ID)
	if err != nil {
		t.Fatalf("RecalculateAndSave: %v", err)
	}

	// key + support + 5 funds + net profit
	if len(rows) != 8 {
		t.Fatalf("expected 8 allocation rows, got %d", len(rows))
	}

	var saved []gormModels.RevenueAllocation
	if err := db.Where("show_id = ?", show.ID).Find(&saved).Error; err != nil {
		t.Fatalf("Failed to read saved rows: %v", err)
	}
	if len(saved) != len(rows) {
		t.Fatalf("saved %d rows, returned %d", len(saved), len(rows))
	}

	total := decimal.Zero
	for _, r := range saved {
		total = total.Add(r.Amount)
		if r.ShowID != show.ID {
			t.Errorf("row %s carries show_id %s", r.ID, r.ShowID)
		}
	}
	if !total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("saved rows sum to %s, want 1000.00", total.StringFixed(2))
	}
}

func TestAllocationService_ReplaceIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	show := seedShow(t, db, f, "1000")
	svc := newAllocationServiceForTest(db)

	ctx := context.Background()
	first, err := svc.RecalculateAndSave(ctx, show.ID)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.RecalculateAndSave(ctx, show.ID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("row count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].AllocatedRoleName != second[i].AllocatedRoleName ||
			!first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("row %d changed between runs: %q %s vs %q %s", i,
				first[i].AllocatedRoleName, first[i].Amount.StringFixed(2),
				second[i].AllocatedRoleName, second[i].Amount.StringFixed(2))
		}
	}

	count, err := repositories.NewAllocationRepository(db).CountByShow(ctx, show.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(first)) {
		t.Errorf("rows accumulated across runs: stored %d, want %d", count, len(first))
	}
}

func TestAllocationService_ShowNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newAllocationServiceForTest(db)

	_, err := svc.RecalculateAndSave(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrShowNotFound) {
		t.Fatalf("expected ErrShowNotFound, got %v", err)
	}
}

func TestAllocationService_ZeroPriceClearsRows(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	show := seedShow(t, db, f, "1000")
	svc := newAllocationServiceForTest(db)

	ctx := context.Background()
	if _, err := svc.RecalculateAndSave(ctx, show.ID); err != nil {
		t.Fatalf("initial run: %v", err)
	}

	if err := db.Model(&gormModels.Show{}).Where("id = ?", show.ID).
		Update("total_price", decimal.Zero).Error; err != nil {
		t.Fatalf("Failed to zero price: %v", err)
	}

	rows, err := svc.RecalculateAndSave(ctx, show.ID)
	if err != nil {
		t.Fatalf("zero-price run: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows for a zero-price show, got %d", len(rows))
	}

	var count int64
	if err := db.Model(&gormModels.RevenueAllocation{}).
		Where("show_id = ?", show.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("prior rows should be cleared, %d remain", count)
	}
}

func TestAllocationService_ConfigErrorKeepsPriorRows(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	show := seedShow(t, db, f, "1000")
	svc := newAllocationServiceForTest(db)

	ctx := context.Background()
	first, err := svc.RecalculateAndSave(ctx, show.ID)
	if err != nil {
		t.Fatalf("initial run: %v", err)
	}

	svc.percents = &mockPercentResolver{
		resolveFunc: func(ctx context.Context) (allocation.Percents, error) {
			return allocation.Percents{}, common.ErrConfigMissing
		},
	}

	if _, err := svc.RecalculateAndSave(ctx, show.ID); !errors.Is(err, common.ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}

	var count int64
	if err := db.Model(&gormModels.RevenueAllocation{}).
		Where("show_id = ?", show.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(first)) {
		t.Errorf("failed run must keep prior rows: stored %d, want %d", count, len(first))
	}
}

func TestAllocationService_ListForShow(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	show := seedShow(t, db, f, "1000")
	svc := newAllocationServiceForTest(db)

	ctx := context.Background()
	if _, err := svc.RecalculateAndSave(ctx, show.ID); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	rows, err := svc.ListForShow(ctx, show.ID)
	if err != nil {
		t.Fatalf("ListForShow: %v", err)
	}
	if len(rows) != 8 {
		t.Errorf("expected 8 rows, got %d", len(rows))
	}

	if _, err := svc.ListForShow(ctx, uuid.NewString()); !errors.Is(err, ErrShowNotFound) {
		t.Errorf("expected ErrShowNotFound for unknown show, got %v", err)
	}
}
