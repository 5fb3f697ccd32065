package salesboard

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

// Config consolidates everything the upstream spreadsheets duplicated per
// dashboard variant: channel predicates, goal ladders per category and the
// customer exclusion list. It is passed into the engine, never hard-coded.
type Config struct {
	Reporting ReportingConfig `toml:"reporting"`
	Channels  []ChannelConfig `toml:"channel"`
	Goals     []GoalConfig    `toml:"goal"`
}

// ReportingConfig holds general reporting preferences.
type ReportingConfig struct {
	Currency          string   `toml:"currency"`
	OrderKinds        []string `toml:"order_kinds"`
	ExcludedCustomers []string `toml:"excluded_customers,omitempty"`
}

// ChannelConfig is the TOML shape of a channel predicate.
type ChannelConfig struct {
	Name     string   `toml:"name"`
	Tags     []string `toml:"tags"`
	Statuses []string `toml:"statuses"`
}

// GoalConfig is one tier of one category's goal ladder, with one threshold
// per month (index 0 is January). Missing months read as zero and are
// skipped by TiersFor.
type GoalConfig struct {
	Category   string    `toml:"category"`
	Tier       string    `toml:"tier"`
	Thresholds []float64 `toml:"thresholds"`
}

// DefaultConfig returns the canonical dashboard configuration: the two
// historical channels plus their upstream tag spellings.
func DefaultConfig() Config {
	return Config{
		Reporting: ReportingConfig{
			Currency:   DefaultCurrency,
			OrderKinds: []string{"V"},
		},
		Channels: []ChannelConfig{
			{Name: "OPD", Tags: []string{"OPD"}, Statuses: []string{"F"}},
			{
				Name:     "Distribution",
				Tags:     []string{"DISTRIBICAO", "DISTRIBUICAO", "DISTRIBUIÇÃO", "LOJA"},
				Statuses: []string{"F", "N"},
			},
		},
	}
}

// LoadConfig reads a TOML config file, returning defaults when the file does
// not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.Reporting.Currency == "" {
		cfg.Reporting.Currency = DefaultCurrency
	}
	return cfg, nil
}

// ChannelSet returns the configured channel predicates in order.
func (c Config) ChannelSet() ChannelSet {
	set := make(ChannelSet, 0, len(c.Channels))
	for _, ch := range c.Channels {
		set = append(set, Channel{Name: ch.Name, Tags: ch.Tags, Statuses: ch.Statuses})
	}
	return set
}

// Filter returns the sales filter induced by the reporting config.
func (c Config) Filter() SalesFilter {
	return SalesFilter{
		Kinds:             c.Reporting.OrderKinds,
		ExcludedCustomers: c.Reporting.ExcludedCustomers,
	}
}

// TiersFor returns the category's goal ladder for the given month, ascending
// by threshold. Tiers with a zero or missing threshold for that month are
// skipped. It returns ErrMissingCategory when the category has no positive
// tier for that month.
func (c Config) TiersFor(category string, month time.Month) ([]GoalTier, error) {
	var tiers []GoalTier
	for _, g := range c.Goals {
		if g.Category != category {
			continue
		}
		i := int(month) - 1
		if i < 0 || i >= len(g.Thresholds) || g.Thresholds[i] <= 0 {
			continue
		}
		tiers = append(tiers, GoalTier{
			Name:      g.Tier,
			Month:     month,
			Threshold: M(g.Thresholds[i], c.Reporting.Currency),
		})
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("category %q month %d: %w", category, month, ErrMissingCategory)
	}
	slices.SortStableFunc(tiers, func(a, b GoalTier) int {
		switch {
		case a.Threshold.LessThan(b.Threshold):
			return -1
		case a.Threshold.GreaterThan(b.Threshold):
			return 1
		default:
			return 0
		}
	})
	return tiers, nil
}
