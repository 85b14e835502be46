package allocation

import (
	"strings"
	"testing"

	"lumenstudio/darkroom/internal/constants"

	"github.com/shopspring/decimal"
)

func pctFromFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func defaultPercents() Percents {
	return Percents{
		PhotographerBudget: pctFromFloat(0.35),
		SupportBonus1:      pctFromFloat(0.04),
		SupportBonus2:      pctFromFloat(0.03),
		Selective:          pctFromFloat(0.05),
		Blend:              pctFromFloat(0.05),
		Retouch:            pctFromFloat(0.03),
		Funds: []FundPercent{
			{Label: "Lead Fund", Pct: pctFromFloat(0.07)},
			{Label: "Marketing Fund", Pct: pctFromFloat(0.05)},
			{Label: "Art Director Fund", Pct: pctFromFloat(0.05)},
			{Label: "Manager Fund", Pct: pctFromFloat(0.02)},
			{Label: "Wishlist Fund", Pct: pctFromFloat(0.20)},
		},
	}
}

func keyAssignment() Assignment {
	return Assignment{ID: "a1", UserID: "u1", ShowRoleID: "r1", UserName: "Mira", RoleName: "Key"}
}

func supportAssignment(n string) Assignment {
	return Assignment{ID: "a-" + n, UserID: "u-" + n, ShowRoleID: "r2", UserName: n, RoleName: "Support " + n}
}

func amountsByLabel(details []Detail) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(details))
	for _, d := range details {
		out[d.RoleLabel] = d.Amount
	}
	return out
}

func assertAmount(t *testing.T, got, want decimal.Decimal) {
	t.Helper()
	diff := got.Sub(want).Abs()
	if diff.Cmp(decimal.NewFromFloat(0.01)) > 0 {
		t.Errorf("amount = %s, want %s (±0.01)", got.StringFixed(2), want.StringFixed(2))
	}
}

func TestCalculateKeyOnly(t *testing.T) {
	details := Calculate(decimal.NewFromInt(1000), []Assignment{keyAssignment()}, defaultPercents())

	if len(details) != 7 {
		t.Fatalf("expected 7 rows (key + 5 funds + net profit), got %d", len(details))
	}

	byLabel := amountsByLabel(details)
	assertAmount(t, byLabel["Key Photographer (Mira)"], decimal.NewFromInt(350))

	fundTotal := decimal.Zero
	for _, d := range details {
		if d.UserID == nil && d.RoleLabel != constants.NetProfitLabel {
			fundTotal = fundTotal.Add(d.Amount)
		}
	}
	assertAmount(t, fundTotal, decimal.NewFromInt(390))
	assertAmount(t, byLabel[constants.NetProfitLabel], decimal.NewFromInt(260))

	if details[len(details)-1].RoleLabel != constants.NetProfitLabel {
		t.Errorf("net profit must be the final row, got %q", details[len(details)-1].RoleLabel)
	}
}

func TestCalculateKeyWithOneSupport(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	details := Calculate(decimal.NewFromInt(1000),
		[]Assignment{keyAssignment(), supportAssignment("Theo")}, pct)

	// budget=350, bonus=40, shareable=310, split two ways = 155 each
	byLabel := amountsByLabel(details)
	assertAmount(t, byLabel["Key Photographer (Mira)"], decimal.NewFromInt(195))
	assertAmount(t, byLabel["Support Photographer (Theo)"], decimal.NewFromInt(155))
}

func TestCalculateKeyWithTwoSupports(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	details := Calculate(decimal.NewFromInt(1000),
		[]Assignment{keyAssignment(), supportAssignment("Theo"), supportAssignment("Ada")}, pct)

	// budget=350, bonus_2 applies: bonus=30, shareable=320, split three ways
	byLabel := amountsByLabel(details)
	assertAmount(t, byLabel["Key Photographer (Mira)"], decimal.NewFromFloat(136.67))
	assertAmount(t, byLabel["Support Photographer (Theo)"], decimal.NewFromFloat(106.67))
	assertAmount(t, byLabel["Support Photographer (Ada)"], decimal.NewFromFloat(106.67))
}

func TestCalculateZeroPrice(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		details := Calculate(price, []Assignment{keyAssignment(), supportAssignment("Theo")}, defaultPercents())
		if len(details) != 0 {
			t.Errorf("price %s: expected no rows, got %d", price, len(details))
		}
	}
}

func TestCalculateConservation(t *testing.T) {
	cases := []struct {
		name        string
		price       decimal.Decimal
		assignments []Assignment
	}{
		{"key only", decimal.NewFromInt(1000), []Assignment{keyAssignment()}},
		{"key plus support", decimal.NewFromFloat(1234.56), []Assignment{keyAssignment(), supportAssignment("Theo")}},
		{"full crew", decimal.NewFromFloat(987.65), []Assignment{
			keyAssignment(),
			supportAssignment("Theo"),
			supportAssignment("Ada"),
			{ID: "a5", UserID: "u5", ShowRoleID: "r3", UserName: "Noor", RoleName: "Selective"},
			{ID: "a6", UserID: "u6", ShowRoleID: "r4", UserName: "Kim", RoleName: "Blend"},
			{ID: "a7", UserID: "u7", ShowRoleID: "r5", UserName: "Raj", RoleName: "Retouch"},
		}},
		{"no assignments", decimal.NewFromInt(500), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details := Calculate(tc.price, tc.assignments, defaultPercents())

			total := decimal.Zero
			for _, d := range details {
				total = total.Add(d.Amount)
			}
			// Every emitted amount is rounded, so the net-profit residual
			// makes the rows sum back to the price exactly.
			if !total.Equal(tc.price.Round(2)) {
				t.Errorf("rows sum to %s, want %s", total.StringFixed(2), tc.price.StringFixed(2))
			}
		})
	}
}

func TestCalculateRoleNameMatching(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	assignments := []Assignment{
		{ID: "a1", UserID: "u1", ShowRoleID: "r1", UserName: "Mira", RoleName: "  key "},
		{ID: "a2", UserID: "u2", ShowRoleID: "r2", UserName: "Theo", RoleName: "support photographer"},
		{ID: "a3", UserID: "u3", ShowRoleID: "r6", UserName: "Lena", RoleName: "Lighting Tech"},
	}
	details := Calculate(decimal.NewFromInt(1000), assignments, pct)

	byLabel := amountsByLabel(details)
	if _, ok := byLabel["Key Photographer (Mira)"]; !ok {
		t.Error("lowercase padded role name should still match the key role")
	}
	if _, ok := byLabel["Support Photographer (Theo)"]; !ok {
		t.Error("any role starting with SUPPORT should match the support role")
	}
	for label := range byLabel {
		if strings.Contains(label, "Lena") {
			t.Errorf("unrecognized role earned a row: %q", label)
		}
	}
}

func TestCalculateSecondKeyIgnored(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	second := keyAssignment()
	second.ID, second.UserID, second.UserName = "a2", "u2", "Theo"

	details := Calculate(decimal.NewFromInt(1000), []Assignment{keyAssignment(), second}, pct)

	keys := 0
	for _, d := range details {
		if strings.HasPrefix(d.RoleLabel, "Key Photographer") {
			keys++
		}
	}
	if keys != 1 {
		t.Errorf("expected exactly one key photographer row, got %d", keys)
	}
}

func TestCalculateSupportBonusNeedsKey(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	// One support, no key: the bonus is carved out of the budget but has
	// no key photographer to collect it.
	details := Calculate(decimal.NewFromInt(1000), []Assignment{supportAssignment("Theo")}, pct)

	byLabel := amountsByLabel(details)
	// budget=350, bonus=40, shareable=310, one sharer
	assertAmount(t, byLabel["Support Photographer (Theo)"], decimal.NewFromInt(310))
}

func TestCalculateFlatRolesDoNotSplit(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil

	assignments := []Assignment{
		{ID: "a1", UserID: "u1", ShowRoleID: "r3", UserName: "Noor", RoleName: "Selective"},
		{ID: "a2", UserID: "u2", ShowRoleID: "r3", UserName: "Kim", RoleName: "Selective"},
	}
	details := Calculate(decimal.NewFromInt(1000), assignments, pct)

	// Two selective editors each earn the full 5% cut.
	byLabel := amountsByLabel(details)
	assertAmount(t, byLabel["Selective Editor (Noor)"], decimal.NewFromInt(50))
	assertAmount(t, byLabel["Selective Editor (Kim)"], decimal.NewFromInt(50))
}

func TestCalculateBonusExceedsBudget(t *testing.T) {
	pct := defaultPercents()
	pct.Funds = nil
	pct.PhotographerBudget = pctFromFloat(0.02)
	pct.SupportBonus1 = pctFromFloat(0.04)

	details := Calculate(decimal.NewFromInt(1000),
		[]Assignment{keyAssignment(), supportAssignment("Theo")}, pct)

	// shareable would be negative; the share clamps to zero and the key
	// still collects the bonus.
	byLabel := amountsByLabel(details)
	assertAmount(t, byLabel["Key Photographer (Mira)"], decimal.NewFromInt(40))
	assertAmount(t, byLabel["Support Photographer (Theo)"], decimal.Zero)
}

func TestCalculateDeterministic(t *testing.T) {
	assignments := []Assignment{keyAssignment(), supportAssignment("Theo"), supportAssignment("Ada")}

	first := Calculate(decimal.NewFromInt(1000), assignments, defaultPercents())
	second := Calculate(decimal.NewFromInt(1000), assignments, defaultPercents())

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RoleLabel != second[i].RoleLabel || !first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("row %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
