package common

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/models/entities"

	"github.com/shopspring/decimal"
)

// mockConfigStore lets each test script store behavior without a DB.
type mockConfigStore struct {
	getAllFunc func(ctx context.Context) (*[]entities.ConfigValueRow, error)
	upsertFunc func(ctx context.Context, key, value, valueType string) error

	getAllCalls int
	upserts     []string
}

func (m *mockConfigStore) GetAll(ctx context.Context) (*[]entities.ConfigValueRow, error) {
	m.getAllCalls++
	return m.getAllFunc(ctx)
}

func (m *mockConfigStore) Upsert(ctx context.Context, key, value, valueType string) error {
	m.upserts = append(m.upserts, key+"="+value)
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, key, value, valueType)
	}
	return nil
}

func rowsFromMap(values map[string]string) *[]entities.ConfigValueRow {
	rows := make([]entities.ConfigValueRow, 0, len(values))
	for k, v := range values {
		rows = append(rows, entities.ConfigValueRow{ConfigKey: k, ConfigValue: v, ValueType: "number"})
	}
	return &rows
}

func fullConfig() map[string]string {
	return map[string]string{
		constants.ConfigKeyPhotographerBudgetPct: "0.35",
		constants.ConfigKeySupportBonus1Pct:      "0.04",
		constants.ConfigKeySupportBonus2Pct:      "0.03",
		constants.ConfigKeySelectivePct:          "0.05",
		constants.ConfigKeyBlendPct:              "0.05",
		constants.ConfigKeyRetouchPct:            "0.03",
		constants.ConfigKeyLeadFundPct:           "0.07",
		constants.ConfigKeyMarketingFundPct:      "0.05",
		constants.ConfigKeyArtDirectorFundPct:    "0.05",
		constants.ConfigKeyManagerFundPct:        "0.02",
		constants.ConfigKeyWishlistFundPct:       "0.20",
	}
}

func newTestService(store *mockConfigStore) *StudioConfigService {
	return NewStudioConfigService(store, NewCacheService(60, 120))
}

func TestResolvePercentsComplete(t *testing.T) {
	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(fullConfig()), nil
		},
	}
	svc := newTestService(store)

	pcts, err := svc.ResolvePercents(context.Background())
	if err != nil {
		t.Fatalf("ResolvePercents: %v", err)
	}
	if !pcts.PhotographerBudget.Equal(decimal.NewFromFloat(0.35)) {
		t.Errorf("photographer budget = %s, want 0.35", pcts.PhotographerBudget)
	}
	if len(pcts.Funds) != len(constants.FundDefs) {
		t.Fatalf("expected %d funds, got %d", len(constants.FundDefs), len(pcts.Funds))
	}
	for i, f := range pcts.Funds {
		if f.Label != constants.FundDefs[i].Label {
			t.Errorf("fund %d: label %q, want %q", i, f.Label, constants.FundDefs[i].Label)
		}
	}
}

func TestResolvePercentsMissingCriticalKey(t *testing.T) {
	cfg := fullConfig()
	delete(cfg, constants.ConfigKeyPhotographerBudgetPct)

	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(cfg), nil
		},
	}
	svc := newTestService(store)

	_, err := svc.ResolvePercents(context.Background())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, constants.ConfigKeyPhotographerBudgetPct) {
		t.Errorf("error should name the missing key, got %q", got)
	}
}

func TestResolvePercentsNonNumericCriticalKey(t *testing.T) {
	cfg := fullConfig()
	cfg[constants.ConfigKeySupportBonus1Pct] = "four percent"

	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(cfg), nil
		},
	}
	svc := newTestService(store)

	_, err := svc.ResolvePercents(context.Background())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, constants.ConfigKeySupportBonus1Pct) {
		t.Errorf("error should name the bad key, got %q", got)
	}
}

func TestResolvePercentsNonCriticalDefaultsToZero(t *testing.T) {
	cfg := fullConfig()
	delete(cfg, constants.ConfigKeySelectivePct)
	delete(cfg, constants.ConfigKeyWishlistFundPct)

	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(cfg), nil
		},
	}
	svc := newTestService(store)

	pcts, err := svc.ResolvePercents(context.Background())
	if err != nil {
		t.Fatalf("ResolvePercents: %v", err)
	}
	if !pcts.Selective.IsZero() {
		t.Errorf("absent selective_pct should default to 0, got %s", pcts.Selective)
	}
	last := pcts.Funds[len(pcts.Funds)-1]
	if !last.Pct.IsZero() {
		t.Errorf("absent wishlist fund should default to 0, got %s", last.Pct)
	}
}

func TestGetAllConfigValuesCaches(t *testing.T) {
	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(fullConfig()), nil
		},
	}
	svc := newTestService(store)

	ctx := context.Background()
	if _, err := svc.GetAllConfigValues(ctx); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := svc.GetAllConfigValues(ctx); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if store.getAllCalls != 1 {
		t.Errorf("expected one store read, got %d", store.getAllCalls)
	}
}

func TestSetConfigEvictsCache(t *testing.T) {
	values := fullConfig()
	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(values), nil
		},
	}
	svc := newTestService(store)

	ctx := context.Background()
	if _, err := svc.GetAllConfigValues(ctx); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	values[constants.ConfigKeyRetouchPct] = "0.06"
	updated, err := svc.SetConfig(ctx, constants.ConfigKeyRetouchPct, "0.06")
	if err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got := (*updated)[constants.ConfigKeyRetouchPct]; got != "0.06" {
		t.Errorf("returned map should reflect the new value, got %q", got)
	}
	if got, err := svc.GetConfigVal(ctx, constants.ConfigKeyRetouchPct); err != nil || got != "0.06" {
		t.Errorf("GetConfigVal = %q, %v; want 0.06", got, err)
	}
	if store.getAllCalls != 2 {
		t.Errorf("SetConfig should evict and re-read the store, reads = %d", store.getAllCalls)
	}
}

func TestSetConfigValidation(t *testing.T) {
	store := &mockConfigStore{
		getAllFunc: func(ctx context.Context) (*[]entities.ConfigValueRow, error) {
			return rowsFromMap(fullConfig()), nil
		},
	}
	svc := newTestService(store)
	ctx := context.Background()

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "snack_budget_pct", "0.10"},
		{"non-numeric value", constants.ConfigKeyBlendPct, "lots"},
		{"negative percentage", constants.ConfigKeyBlendPct, "-0.05"},
		{"over one", constants.ConfigKeyBlendPct, "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SetConfig(ctx, tc.key, tc.value); err == nil {
				t.Errorf("SetConfig(%q, %q) should fail", tc.key, tc.value)
			}
		})
	}
	if len(store.upserts) != 0 {
		t.Errorf("invalid input must not reach the store, got upserts %v", store.upserts)
	}
}

