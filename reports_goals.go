package salesboard

import (
	"fmt"
	"slices"
	"time"
)

// GoalTier is one revenue threshold of a category's goal ladder for a given
// month. Tiers are consumed in ascending threshold order.
type GoalTier struct {
	Name      string
	Month     time.Month
	Threshold Money
}

// GoalPolicy selects how tier attainment is judged. The source system uses
// both readings in different screens without reconciling them, so both are
// kept selectable per call.
type GoalPolicy int

const (
	// SequentialWaterfall walks tiers in ascending order, consuming the
	// realized amount tier by tier; the first tier that cannot be covered
	// stops the walk.
	SequentialWaterfall GoalPolicy = iota
	// IndependentTrend compares every tier independently against the
	// projected month-end total.
	IndependentTrend
)

func (p GoalPolicy) String() string {
	switch p {
	case SequentialWaterfall:
		return "sequential"
	case IndependentTrend:
		return "trend"
	default:
		return "unknown"
	}
}

// ParseGoalPolicy parses a string into a GoalPolicy.
func ParseGoalPolicy(s string) (GoalPolicy, error) {
	switch s {
	case "sequential", "waterfall":
		return SequentialWaterfall, nil
	case "trend", "independent":
		return IndependentTrend, nil
	default:
		return 0, fmt.Errorf("unknown goal policy: %q", s)
	}
}

// TierState is the attainment state of a single tier.
type TierState int

const (
	// TierAchieved means the tier threshold is covered by realized revenue
	// (sequential policy).
	TierAchieved TierState = iota
	// TierInProgress means the tier is the first uncovered one (sequential
	// policy); later tiers are not evaluated.
	TierInProgress
	// TierOnTrend means the projected total reaches the threshold
	// (independent policy).
	TierOnTrend
	// TierAtRisk means the projected total falls short of the threshold
	// (independent policy).
	TierAtRisk
)

func (s TierState) String() string {
	switch s {
	case TierAchieved:
		return "ACHIEVED"
	case TierInProgress:
		return "IN_PROGRESS"
	case TierOnTrend:
		return "ON_TREND"
	case TierAtRisk:
		return "AT_RISK"
	default:
		return "unknown"
	}
}

// TierStatus is the evaluation of one tier under the selected policy.
type TierStatus struct {
	Tier  GoalTier
	State TierState

	// Surplus is the credit left above the threshold (sequential, achieved).
	Surplus Money
	// Shortfall is the missing amount to cover the threshold (sequential, in
	// progress).
	Shortfall Money
	// RequiredDailyPace is the daily sales needed over the remaining business
	// days to cover the tier.
	RequiredDailyPace Money
	// TrendDelta is projected total minus threshold (independent policy).
	TrendDelta Money
	// TrendDeltaPercent is TrendDelta as a share of the threshold.
	TrendDeltaPercent Percent
}

// GoalReport is the goal attainment report for one category and month.
type GoalReport struct {
	Category string
	Month    time.Month
	Policy   GoalPolicy

	Realized       Money
	ElapsedDays    int // elapsed business days
	RemainingDays  int // remaining business days
	DailyRate      Money
	ProjectedTotal Money

	Tiers []TierStatus
}

// NewGoalReport evaluates realized revenue against the category's goal
// ladder.
//
// The trend figures are policy independent: dailyRate is realized/elapsed
// (zero when no business day elapsed, never a division error) and the
// projected total extrapolates that rate over the remaining business days.
func NewGoalReport(category string, month time.Month, realized Money, tiers []GoalTier, elapsed, remaining int, policy GoalPolicy) (*GoalReport, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("category %q month %d: %w", category, month, ErrMissingCategory)
	}

	ordered := slices.Clone(tiers)
	slices.SortStableFunc(ordered, func(a, b GoalTier) int {
		switch {
		case a.Threshold.LessThan(b.Threshold):
			return -1
		case a.Threshold.GreaterThan(b.Threshold):
			return 1
		default:
			return 0
		}
	})

	r := &GoalReport{
		Category:      category,
		Month:         month,
		Policy:        policy,
		Realized:      realized,
		ElapsedDays:   elapsed,
		RemainingDays: remaining,
	}

	if elapsed > 0 {
		r.DailyRate = realized.DivDays(elapsed)
		r.ProjectedTotal = realized.Add(r.DailyRate.MulDays(remaining))
	} else {
		// No extrapolation from a zero-day base.
		r.DailyRate = M(0, realized.Currency())
		r.ProjectedTotal = realized
	}

	switch policy {
	case SequentialWaterfall:
		r.Tiers = sequentialTiers(ordered, realized, remaining)
	case IndependentTrend:
		r.Tiers = trendTiers(ordered, realized, r.ProjectedTotal, remaining)
	default:
		return nil, fmt.Errorf("unknown goal policy %d", policy)
	}
	return r, nil
}

// sequentialTiers consumes the realized amount tier by tier. The credit left
// after covering a tier carries over to the next; the first uncovered tier is
// reported with its shortfall and required pace, and evaluation stops there.
func sequentialTiers(tiers []GoalTier, realized Money, remaining int) []TierStatus {
	statuses := make([]TierStatus, 0, len(tiers))
	credit := realized
	for _, tier := range tiers {
		if credit.GreaterThanOrEqual(tier.Threshold) {
			statuses = append(statuses, TierStatus{
				Tier:    tier,
				State:   TierAchieved,
				Surplus: credit.Sub(tier.Threshold),
			})
			credit = credit.Sub(tier.Threshold)
			continue
		}
		shortfall := tier.Threshold.Sub(credit)
		pace := shortfall
		if remaining > 0 {
			pace = shortfall.DivDays(remaining)
		}
		statuses = append(statuses, TierStatus{
			Tier:              tier,
			State:             TierInProgress,
			Shortfall:         shortfall,
			RequiredDailyPace: pace,
		})
		break
	}
	return statuses
}

// trendTiers compares every positive tier independently against the
// projected total.
func trendTiers(tiers []GoalTier, realized, projected Money, remaining int) []TierStatus {
	statuses := make([]TierStatus, 0, len(tiers))
	for _, tier := range tiers {
		if !tier.Threshold.IsPositive() {
			continue
		}

		pace := tier.Threshold.Sub(realized)
		if remaining > 0 {
			pace = pace.DivDays(remaining)
		}
		if pace.IsNegative() {
			pace = M(0, tier.Threshold.Currency()) // floor at zero
		}

		delta := projected.Sub(tier.Threshold)
		state := TierOnTrend
		if delta.IsNegative() {
			state = TierAtRisk
		}
		statuses = append(statuses, TierStatus{
			Tier:              tier,
			State:             state,
			RequiredDailyPace: pace,
			TrendDelta:        delta,
			TrendDeltaPercent: Percent(100 * delta.Ratio(tier.Threshold)),
		})
	}
	return statuses
}
