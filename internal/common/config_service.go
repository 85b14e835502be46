package common

import (
	stdCtx "context"
	"errors"
	"fmt"
	"time"

	"lumenstudio/darkroom/internal/allocation"
	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/logging"
	"lumenstudio/darkroom/internal/models/entities"

	"github.com/shopspring/decimal"
)

// ErrConfigMissing is returned when a critical percentage cannot be resolved
// to a number. Operators must fix the configuration row; retries won't help.
var ErrConfigMissing = errors.New("critical configuration missing")

// ConfigStore is the persistence boundary for configuration rows.
type ConfigStore interface {
	GetAll(ctx stdCtx.Context) (*[]entities.ConfigValueRow, error)
	Upsert(ctx stdCtx.Context, key, value, valueType string) error
}

type StudioConfigService struct {
	store ConfigStore
	cache CacheInterface
}

func NewStudioConfigService(store ConfigStore, cache CacheInterface) *StudioConfigService {
	return &StudioConfigService{store: store, cache: cache}
}

func configCacheKey() string {
	return string(constants.CachePrefixStudioConfig)
}

// Expose constants to API callers
func (s *StudioConfigService) ListPossibleKeys() []string { return constants.ListAllowedConfigKeys() }

// ---------------------------------------------------------------------------
// Set config value and return updated map
// ---------------------------------------------------------------------------
func (s *StudioConfigService) SetConfig(
	ctx stdCtx.Context,
	key string,
	value string,
) (*map[string]string, error) {

	if !constants.IsValidConfigKey(key) {
		return nil, fmt.Errorf("%q is not a valid key", key)
	}

	pct, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%q is not a numeric percentage: %w", value, err)
	}
	if pct.Cmp(decimal.Zero) < 0 || pct.Cmp(decimal.NewFromInt(1)) > 0 {
		return nil, fmt.Errorf("percentage %s out of range [0,1]", pct)
	}

	if err := s.store.Upsert(ctx, key, value, "number"); err != nil {
		return nil, fmt.Errorf("failed to set config: %w", err)
	}

	s.cache.Delete(configCacheKey())

	cfgs, err := s.GetAllConfigValues(ctx)
	if err != nil {
		return nil, err
	}
	return &cfgs, nil
}

// ---------------------------------------------------------------------------
// Get *all* values (cached)             map[string]string
// ---------------------------------------------------------------------------
func (s *StudioConfigService) GetAllConfigValues(ctx stdCtx.Context) (map[string]string, error) {

	ttl := 10 * time.Minute

	val, err := s.cache.GetOrSet(configCacheKey(), ttl, func() (any, error) {
		rows, err := s.store.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		m := make(map[string]string, len(*rows))
		for _, r := range *rows {
			if r.ValueType != "" && r.ValueType != "number" {
				// Only numeric percentages participate in allocation.
				continue
			}
			m[r.ConfigKey] = r.ConfigValue
		}

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	switch cfgs := val.(type) {
	case map[string]string:
		return cfgs, nil
	case map[string]interface{}:
		// Redis round-trips through JSON and loses the concrete map type.
		m := make(map[string]string, len(cfgs))
		for k, v := range cfgs {
			if str, ok := v.(string); ok {
				m[k] = str
			}
		}
		return m, nil
	default:
		return nil, errors.New("cache type assertion to map[string]string failed")
	}
}

// ---------------------------------------------------------------------------
// Get single value
// ---------------------------------------------------------------------------
func (s *StudioConfigService) GetConfigVal(ctx stdCtx.Context, key string) (string, error) {

	if !constants.IsValidConfigKey(key) {
		return "", fmt.Errorf("%q is not a valid key", key)
	}

	cfgs, err := s.GetAllConfigValues(ctx)
	if err != nil {
		return "", err
	}
	return cfgs[key], nil
}

// ---------------------------------------------------------------------------
// Resolve the full percentage set for an allocation run
// ---------------------------------------------------------------------------
func (s *StudioConfigService) ResolvePercents(ctx stdCtx.Context) (allocation.Percents, error) {

	cfgs, err := s.GetAllConfigValues(ctx)
	if err != nil {
		return allocation.Percents{}, err
	}

	resolve := func(key string) (decimal.Decimal, error) {
		raw, ok := cfgs[key]
		if ok {
			pct, perr := decimal.NewFromString(raw)
			if perr == nil {
				return pct, nil
			}
			if constants.IsCriticalConfigKey(key) {
				return decimal.Zero, fmt.Errorf("%w: %s is not numeric (%q)", ErrConfigMissing, key, raw)
			}
			logging.Warn("Non-numeric configuration value, defaulting to 0", "key", key, "value", raw)
			return decimal.Zero, nil
		}
		if constants.IsCriticalConfigKey(key) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrConfigMissing, key)
		}
		logging.Warn("Configuration value absent, defaulting to 0", "key", key)
		return decimal.Zero, nil
	}

	var pcts allocation.Percents
	if pcts.PhotographerBudget, err = resolve(constants.ConfigKeyPhotographerBudgetPct); err != nil {
		return allocation.Percents{}, err
	}
	if pcts.SupportBonus1, err = resolve(constants.ConfigKeySupportBonus1Pct); err != nil {
		return allocation.Percents{}, err
	}
	if pcts.SupportBonus2, err = resolve(constants.ConfigKeySupportBonus2Pct); err != nil {
		return allocation.Percents{}, err
	}
	if pcts.Selective, err = resolve(constants.ConfigKeySelectivePct); err != nil {
		return allocation.Percents{}, err
	}
	if pcts.Blend, err = resolve(constants.ConfigKeyBlendPct); err != nil {
		return allocation.Percents{}, err
	}
	if pcts.Retouch, err = resolve(constants.ConfigKeyRetouchPct); err != nil {
		return allocation.Percents{}, err
	}

	for _, fund := range constants.FundDefs {
		pct, ferr := resolve(fund.Key)
		if ferr != nil {
			return allocation.Percents{}, ferr
		}
		pcts.Funds = append(pcts.Funds, allocation.FundPercent{Label: fund.Label, Pct: pct})
	}

	return pcts, nil
}
