package constants

///////////////////////////////////////////////////////////////////////////////
// Studio configuration keys — just string constants
///////////////////////////////////////////////////////////////////////////////

const (
	ConfigKeyPhotographerBudgetPct = "photographer_budget_pct"
	ConfigKeySupportBonus1Pct      = "support_bonus_1_pct"
	ConfigKeySupportBonus2Pct      = "support_bonus_2_pct"
	ConfigKeySelectivePct          = "selective_pct"
	ConfigKeyBlendPct              = "blend_pct"
	ConfigKeyRetouchPct            = "retouch_pct"
	ConfigKeyLeadFundPct           = "lead_fund_pct"
	ConfigKeyMarketingFundPct      = "marketing_fund_pct"
	ConfigKeyArtDirectorFundPct    = "art_director_fund_pct"
	ConfigKeyManagerFundPct        = "manager_fund_pct"
	ConfigKeyWishlistFundPct       = "wishlist_fund_pct"
)

var AllowedConfigKeys = []string{
	ConfigKeyPhotographerBudgetPct,
	ConfigKeySupportBonus1Pct,
	ConfigKeySupportBonus2Pct,
	ConfigKeySelectivePct,
	ConfigKeyBlendPct,
	ConfigKeyRetouchPct,
	ConfigKeyLeadFundPct,
	ConfigKeyMarketingFundPct,
	ConfigKeyArtDirectorFundPct,
	ConfigKeyManagerFundPct,
	ConfigKeyWishlistFundPct,
}

// CriticalConfigKeys are percentages the allocation run cannot proceed without.
// Everything else defaults to 0 when absent.
var CriticalConfigKeys = map[string]bool{
	ConfigKeyPhotographerBudgetPct: true,
	ConfigKeySupportBonus1Pct:      true,
	ConfigKeySupportBonus2Pct:      true,
}

// FundDef pairs a fund's display label with the config key holding its percent.
type FundDef struct {
	Label string
	Key   string
}

// FundDefs is the canonical fund set, in emission order.
var FundDefs = []FundDef{
	{Label: "Lead Fund", Key: ConfigKeyLeadFundPct},
	{Label: "Marketing Fund", Key: ConfigKeyMarketingFundPct},
	{Label: "Art Director Fund", Key: ConfigKeyArtDirectorFundPct},
	{Label: "Manager Fund", Key: ConfigKeyManagerFundPct},
	{Label: "Wishlist Fund", Key: ConfigKeyWishlistFundPct},
}

// String slice ready for JSON response
func ListAllowedConfigKeys() []string { return AllowedConfigKeys }

// O(n) validator (fine for small list)
func IsValidConfigKey(k string) bool {
	for _, allowed := range AllowedConfigKeys {
		if allowed == k {
			return true
		}
	}
	return false
}

func IsCriticalConfigKey(k string) bool { return CriticalConfigKeys[k] }
