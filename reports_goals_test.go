package salesboard

import (
	"errors"
	"testing"
	"time"
)

func tiers(thresholds ...float64) []GoalTier {
	names := []string{"Meta Mensal", "Meta Desafio", "Super Meta"}
	out := make([]GoalTier, 0, len(thresholds))
	for i, t := range thresholds {
		name := names[i%len(names)]
		out = append(out, GoalTier{Name: name, Month: time.September, Threshold: BRL(t)})
	}
	return out
}

func TestNewGoalReport_Trend(t *testing.T) {
	// 1500 realized over 10 elapsed days projects 150/day over 10 more days.
	r, err := NewGoalReport("GERAL", time.September, BRL(1500), tiers(1000, 2000), 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if !r.DailyRate.Equal(BRL(150)) {
		t.Errorf("DailyRate = %s, want 150", r.DailyRate)
	}
	if !r.ProjectedTotal.Equal(BRL(3000)) {
		t.Errorf("ProjectedTotal = %s, want 3000", r.ProjectedTotal)
	}

	// Both policies share the same trend figures.
	r2, err := NewGoalReport("GERAL", time.September, BRL(1500), tiers(1000, 2000), 10, 10, IndependentTrend)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if !r2.DailyRate.Equal(r.DailyRate) || !r2.ProjectedTotal.Equal(r.ProjectedTotal) {
		t.Errorf("trend figures differ across policies: %s/%s vs %s/%s",
			r.DailyRate, r.ProjectedTotal, r2.DailyRate, r2.ProjectedTotal)
	}
}

func TestNewGoalReport_SequentialWaterfall(t *testing.T) {
	r, err := NewGoalReport("GERAL", time.September, BRL(1500), tiers(1000, 2000), 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if len(r.Tiers) != 2 {
		t.Fatalf("got %d tier statuses, want 2", len(r.Tiers))
	}

	first := r.Tiers[0]
	if first.State != TierAchieved {
		t.Errorf("tier 1 state = %s, want ACHIEVED", first.State)
	}
	if !first.Surplus.Equal(BRL(500)) {
		t.Errorf("tier 1 surplus = %s, want 500", first.Surplus)
	}

	second := r.Tiers[1]
	if second.State != TierInProgress {
		t.Errorf("tier 2 state = %s, want IN_PROGRESS", second.State)
	}
	if !second.Shortfall.Equal(BRL(1500)) {
		t.Errorf("tier 2 shortfall = %s, want 1500", second.Shortfall)
	}
	if !second.RequiredDailyPace.Equal(BRL(150)) {
		t.Errorf("tier 2 pace = %s, want 150", second.RequiredDailyPace)
	}
}

func TestNewGoalReport_SequentialStopsAtFirstMiss(t *testing.T) {
	r, err := NewGoalReport("GERAL", time.September, BRL(500), tiers(1000, 2000, 4000), 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	// The first tier already fails: later tiers are not evaluated.
	if len(r.Tiers) != 1 {
		t.Fatalf("got %d tier statuses, want 1", len(r.Tiers))
	}
	if r.Tiers[0].State != TierInProgress {
		t.Errorf("state = %s, want IN_PROGRESS", r.Tiers[0].State)
	}
}

func TestNewGoalReport_IndependentTrend(t *testing.T) {
	r, err := NewGoalReport("GERAL", time.September, BRL(1500), tiers(1000, 2000), 10, 10, IndependentTrend)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if len(r.Tiers) != 2 {
		t.Fatalf("got %d tier statuses, want 2", len(r.Tiers))
	}
	// Projected total 3000 covers both thresholds.
	for _, tier := range r.Tiers {
		if tier.State != TierOnTrend {
			t.Errorf("tier %q state = %s, want ON_TREND", tier.Tier.Name, tier.State)
		}
	}
	if !r.Tiers[1].TrendDelta.Equal(BRL(1000)) {
		t.Errorf("tier 2 delta = %s, want 1000", r.Tiers[1].TrendDelta)
	}
	if !r.Tiers[1].TrendDeltaPercent.Equal(Percent(50)) {
		t.Errorf("tier 2 delta%% = %s, want 50%%", r.Tiers[1].TrendDeltaPercent)
	}

	// Pace floors at zero once the threshold is already covered.
	if !r.Tiers[0].RequiredDailyPace.Equal(BRL(0)) {
		t.Errorf("tier 1 pace = %s, want 0", r.Tiers[0].RequiredDailyPace)
	}
}

func TestNewGoalReport_IndependentAtRisk(t *testing.T) {
	r, err := NewGoalReport("GERAL", time.September, BRL(100), tiers(1000), 10, 0, IndependentTrend)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	tier := r.Tiers[0]
	if tier.State != TierAtRisk {
		t.Errorf("state = %s, want AT_RISK", tier.State)
	}
	// With no remaining day the pace degrades to the absolute missing amount.
	if !tier.RequiredDailyPace.Equal(BRL(900)) {
		t.Errorf("pace = %s, want 900", tier.RequiredDailyPace)
	}
}

func TestNewGoalReport_ZeroRealized(t *testing.T) {
	r, err := NewGoalReport("GERAL", time.September, BRL(0), tiers(1000, 2000), 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if !r.DailyRate.IsZero() {
		t.Errorf("DailyRate = %s, want 0", r.DailyRate)
	}
	for _, tier := range r.Tiers {
		if tier.State == TierAchieved {
			t.Errorf("tier %q achieved with zero realized", tier.Tier.Name)
		}
	}
}

func TestNewGoalReport_AllAchieved(t *testing.T) {
	// Realized covers the sum of all thresholds.
	r, err := NewGoalReport("GERAL", time.September, BRL(3000), tiers(1000, 2000), 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if len(r.Tiers) != 2 {
		t.Fatalf("got %d tier statuses, want 2", len(r.Tiers))
	}
	for _, tier := range r.Tiers {
		if tier.State != TierAchieved {
			t.Errorf("tier %q state = %s, want ACHIEVED", tier.Tier.Name, tier.State)
		}
	}
}

func TestNewGoalReport_ZeroElapsedDays(t *testing.T) {
	// No extrapolation from a zero-day base: projected equals realized.
	r, err := NewGoalReport("GERAL", time.September, BRL(800), tiers(1000), 0, 20, IndependentTrend)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if !r.DailyRate.IsZero() {
		t.Errorf("DailyRate = %s, want 0", r.DailyRate)
	}
	if !r.ProjectedTotal.Equal(BRL(800)) {
		t.Errorf("ProjectedTotal = %s, want 800", r.ProjectedTotal)
	}
}

func TestNewGoalReport_MissingCategory(t *testing.T) {
	_, err := NewGoalReport("GERAL", time.September, BRL(100), nil, 10, 10, SequentialWaterfall)
	if !errors.Is(err, ErrMissingCategory) {
		t.Errorf("error = %v, want ErrMissingCategory", err)
	}
}

func TestNewGoalReport_SortsTiers(t *testing.T) {
	unordered := []GoalTier{
		{Name: "Super Meta", Month: time.September, Threshold: BRL(4000)},
		{Name: "Meta Mensal", Month: time.September, Threshold: BRL(1000)},
	}
	r, err := NewGoalReport("GERAL", time.September, BRL(1200), unordered, 10, 10, SequentialWaterfall)
	if err != nil {
		t.Fatalf("NewGoalReport() error = %v", err)
	}
	if r.Tiers[0].Tier.Name != "Meta Mensal" {
		t.Errorf("first evaluated tier = %q, want the lowest threshold", r.Tiers[0].Tier.Name)
	}
}
