package allocation

import (
	"fmt"

	"lumenstudio/darkroom/internal/constants"

	"github.com/shopspring/decimal"
)

// Assignment is the calculator's view of one person-on-show link. RoleName is
// the raw stored role name; matching is done on its normalized form.
type Assignment struct {
	ID         string
	UserID     string
	ShowRoleID string
	UserName   string
	RoleName   string
}

// Detail is one computed allocation line. Amounts are already rounded to two
// decimal places.
type Detail struct {
	RoleLabel  string
	UserID     *string
	ShowRoleID *string
	Amount     decimal.Decimal
	Notes      string
}

// FundPercent is one fixed fund with its resolved percentage.
type FundPercent struct {
	Label string
	Pct   decimal.Decimal
}

// Percents holds every percentage the calculation needs, fully resolved.
// Resolution (including critical-key validation) happens in the config
// service before Calculate is called, so the calculation itself stays pure.
type Percents struct {
	PhotographerBudget decimal.Decimal
	SupportBonus1      decimal.Decimal
	SupportBonus2      decimal.Decimal
	Selective          decimal.Decimal
	Blend              decimal.Decimal
	Retouch            decimal.Decimal
	Funds              []FundPercent
}

var hundred = decimal.NewFromInt(100)

// Calculate partitions a show's total price across role earners, fixed funds
// and a residual net-profit row. Deterministic, no I/O.
//
// Output order: key photographer, supports in assignment order, selective,
// blend, retouch assignees, funds in declaration order, net profit last.
func Calculate(totalPrice decimal.Decimal, assignments []Assignment, pct Percents) []Detail {
	if totalPrice.Cmp(decimal.Zero) <= 0 {
		return nil
	}

	var (
		key       *Assignment
		supports  []Assignment
		selective []Assignment
		blend     []Assignment
		retouch   []Assignment
	)

	for i := range assignments {
		a := assignments[i]
		switch name := constants.NormalizeShowRole(a.RoleName); {
		case name == constants.ShowRoleKey:
			if key == nil {
				key = &a
			}
		case constants.IsSupportRole(name):
			supports = append(supports, a)
		case name == constants.ShowRoleSelective:
			selective = append(selective, a)
		case name == constants.ShowRoleBlend:
			blend = append(blend, a)
		case name == constants.ShowRoleRetouch:
			retouch = append(retouch, a)
		}
	}

	details := make([]Detail, 0, len(assignments)+len(pct.Funds)+1)

	// Photographer budget split. The support bonus is carved out of the
	// shared budget and paid to the key photographer alone.
	budget := totalPrice.Mul(pct.PhotographerBudget)

	bonus := decimal.Zero
	bonusPct := decimal.Zero
	switch {
	case len(supports) == 1:
		bonusPct = pct.SupportBonus1
		bonus = totalPrice.Mul(bonusPct)
	case len(supports) >= 2:
		bonusPct = pct.SupportBonus2
		bonus = totalPrice.Mul(bonusPct)
	}

	shareable := budget.Sub(bonus)
	sharers := len(supports)
	if key != nil {
		sharers++
	}

	individualShare := decimal.Zero
	if sharers > 0 {
		individualShare = shareable.Div(decimal.NewFromInt(int64(sharers)))
		if individualShare.Cmp(decimal.Zero) < 0 {
			individualShare = decimal.Zero
		}
	}

	if key != nil {
		amount := individualShare.Add(bonus)
		notes := fmt.Sprintf("budget %s%% of %s split %d-way = %s, plus %s%% support bonus %s",
			pct.PhotographerBudget.Mul(hundred), totalPrice.StringFixed(2), sharers,
			individualShare.StringFixed(2), bonusPct.Mul(hundred), bonus.StringFixed(2))
		details = append(details, earnerDetail("Key Photographer", *key, amount, notes))
	}

	for _, sup := range supports {
		notes := fmt.Sprintf("budget %s%% of %s split %d-way = %s",
			pct.PhotographerBudget.Mul(hundred), totalPrice.StringFixed(2), sharers,
			individualShare.StringFixed(2))
		details = append(details, earnerDetail("Support Photographer", sup, individualShare, notes))
	}

	// Flat editing roles. Each assignee earns the full percentage cut,
	// regardless of how many share the role.
	flatRoles := []struct {
		label   string
		pct     decimal.Decimal
		members []Assignment
	}{
		{"Selective Editor", pct.Selective, selective},
		{"Blend Editor", pct.Blend, blend},
		{"Retouch Editor", pct.Retouch, retouch},
	}
	for _, fr := range flatRoles {
		for _, m := range fr.members {
			amount := totalPrice.Mul(fr.pct)
			notes := fmt.Sprintf("%s%% of %s", fr.pct.Mul(hundred), totalPrice.StringFixed(2))
			details = append(details, earnerDetail(fr.label, m, amount, notes))
		}
	}

	// Fixed funds carry no user. They are price-driven, so a show with no
	// assignments still emits every fund row.
	for _, f := range pct.Funds {
		amount := totalPrice.Mul(f.Pct)
		details = append(details, Detail{
			RoleLabel: f.Label,
			Amount:    amount.Round(2),
			Notes:     fmt.Sprintf("%s%% of %s", f.Pct.Mul(hundred), totalPrice.StringFixed(2)),
		})
	}

	allocated := decimal.Zero
	for _, d := range details {
		allocated = allocated.Add(d.Amount)
	}
	netProfit := totalPrice.Sub(allocated)
	details = append(details, Detail{
		RoleLabel: constants.NetProfitLabel,
		Amount:    netProfit.Round(2),
		Notes: fmt.Sprintf("%s minus %s allocated across %d rows",
			totalPrice.StringFixed(2), allocated.StringFixed(2), len(details)),
	})

	return details
}

func earnerDetail(label string, a Assignment, amount decimal.Decimal, notes string) Detail {
	userID := a.UserID
	roleID := a.ShowRoleID
	return Detail{
		RoleLabel:  fmt.Sprintf("%s (%s)", label, a.UserName),
		UserID:     &userID,
		ShowRoleID: &roleID,
		Amount:     amount.Round(2),
		Notes:      notes,
	}
}
