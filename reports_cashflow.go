package salesboard

import (
	"fmt"
	"slices"

	"github.com/ngaspar/salesboard/date"
)

// EntryStatus is the settlement status of a ledger entry.
type EntryStatus int

const (
	// Open entries feed the predicted series, keyed by due date.
	Open EntryStatus = iota
	// Settled entries feed the realized series, keyed by settlement date.
	Settled
)

func (s EntryStatus) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Settled:
		return "SETTLED"
	default:
		return "unknown"
	}
}

// ParseEntryStatus parses a string into an EntryStatus. It accepts the
// upstream spreadsheet codes as well.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch s {
	case "OPEN", "EM ABERTO":
		return Open, nil
	case "SETTLED", "PAGO":
		return Settled, nil
	default:
		return 0, fmt.Errorf("unknown entry status: %q", s)
	}
}

// LedgerSide selects the receivable or payable ledger.
type LedgerSide int

const (
	Receivable LedgerSide = iota // inflows
	Payable                      // outflows
)

// LedgerEntry is one row of a receivable or payable ledger. Both ledgers
// share this shape.
type LedgerEntry struct {
	Counterparty string      `json:"counterparty"`
	Amount       Money       `json:"amount"`
	DueDate      date.Date   `json:"dueDate"`
	SettledOn    *date.Date  `json:"settledOn,omitempty"`
	Status       EntryStatus `json:"-"`
	Delinquent   bool        `json:"delinquent,omitempty"`
}

// ScenarioEntry is a hypothetical ledger row injected into one side of the
// books for a single what-if projection call. It never persists.
type ScenarioEntry struct {
	Side  LedgerSide
	Entry LedgerEntry
}

// CashFlowDay is one day of the projection. The series is dense: every
// calendar day of the requested range is present, weekends and holidays
// included, because cash moves on calendar days.
type CashFlowDay struct {
	Date date.Date

	PredictedIn  Money
	PredictedOut Money
	RealizedIn   Money
	RealizedOut  Money

	PredictedNet Money
	RealizedNet  Money

	// Cumulative balances: opening balance plus the running sum of the net
	// series up to and including this day.
	PredictedBalance Money
	RealizedBalance  Money
}

// CashFlowReport is the reconciliation of the receivable and payable ledgers
// into a daily projection.
type CashFlowReport struct {
	Range          date.Range
	OpeningBalance Money
	Days           []CashFlowDay

	// KPIs, computed from the predicted series specifically.
	MinPredictedBalance     Money
	MinPredictedBalanceDate date.Date
	MaxPredictedBalance     Money
	NegativePredictedDays   int // days with a negative predicted net flow
}

// NewCashFlowReport reconciles the two ledgers into a dense daily series
// over the given range.
//
// Open entries are recognized on their due date (predicted series); settled
// entries on their settlement date (realized series). Entries settled
// without a settlement date are excluded from the realized series. Scenario
// entries are applied to copies of the ledgers: the originals are left
// untouched for a later non-scenario call.
//
// It returns ErrInvalidRange before any aggregation when the range is
// inverted, and ErrNoData when both ledgers are empty after filtering.
func NewCashFlowReport(receivable, payable []LedgerEntry, opening Money, rng date.Range, scenario ...ScenarioEntry) (*CashFlowReport, error) {
	if !rng.IsValid() {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidRange, rng.From, rng.To)
	}

	// Scenario entries go on copies; the caller's slices stay pristine.
	if len(scenario) > 0 {
		receivable = slices.Clone(receivable)
		payable = slices.Clone(payable)
		for _, s := range scenario {
			switch s.Side {
			case Receivable:
				receivable = append(receivable, s.Entry)
			case Payable:
				payable = append(payable, s.Entry)
			}
		}
	}

	type daySums struct {
		predictedIn, predictedOut Money
		realizedIn, realizedOut   Money
	}
	sums := make(map[date.Date]*daySums)
	at := func(on date.Date) *daySums {
		s, ok := sums[on]
		if !ok {
			s = &daySums{}
			sums[on] = s
		}
		return s
	}

	counted := 0
	tally := func(entries []LedgerEntry, side LedgerSide) {
		for _, e := range entries {
			switch e.Status {
			case Open:
				if !rng.Contains(e.DueDate) {
					continue
				}
				s := at(e.DueDate)
				if side == Receivable {
					s.predictedIn = s.predictedIn.Add(e.Amount)
				} else {
					s.predictedOut = s.predictedOut.Add(e.Amount)
				}
			case Settled:
				// No settlement date, no realized recognition.
				if e.SettledOn == nil || !rng.Contains(*e.SettledOn) {
					continue
				}
				s := at(*e.SettledOn)
				if side == Receivable {
					s.realizedIn = s.realizedIn.Add(e.Amount)
				} else {
					s.realizedOut = s.realizedOut.Add(e.Amount)
				}
			default:
				continue
			}
			counted++
		}
	}
	tally(receivable, Receivable)
	tally(payable, Payable)

	if counted == 0 {
		return nil, fmt.Errorf("cash flow %s: %w", rng.Identifier(), ErrNoData)
	}

	report := &CashFlowReport{
		Range:          rng,
		OpeningBalance: opening,
		Days:           make([]CashFlowDay, 0, rng.Days()),
	}

	zero := M(0, opening.Currency())
	predictedBalance, realizedBalance := opening, opening
	first := true
	for on := range rng.All() {
		day := CashFlowDay{
			Date:         on,
			PredictedIn:  zero,
			PredictedOut: zero,
			RealizedIn:   zero,
			RealizedOut:  zero,
		}
		if s, ok := sums[on]; ok {
			day.PredictedIn = day.PredictedIn.Add(s.predictedIn)
			day.PredictedOut = day.PredictedOut.Add(s.predictedOut)
			day.RealizedIn = day.RealizedIn.Add(s.realizedIn)
			day.RealizedOut = day.RealizedOut.Add(s.realizedOut)
		}
		day.PredictedNet = day.PredictedIn.Sub(day.PredictedOut)
		day.RealizedNet = day.RealizedIn.Sub(day.RealizedOut)

		predictedBalance = predictedBalance.Add(day.PredictedNet)
		realizedBalance = realizedBalance.Add(day.RealizedNet)
		day.PredictedBalance = predictedBalance
		day.RealizedBalance = realizedBalance

		if first || day.PredictedBalance.LessThan(report.MinPredictedBalance) {
			report.MinPredictedBalance = day.PredictedBalance
			report.MinPredictedBalanceDate = on
		}
		if first || day.PredictedBalance.GreaterThan(report.MaxPredictedBalance) {
			report.MaxPredictedBalance = day.PredictedBalance
		}
		if day.PredictedNet.IsNegative() {
			report.NegativePredictedDays++
		}
		first = false

		report.Days = append(report.Days, day)
	}

	return report, nil
}
