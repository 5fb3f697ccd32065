package salesboard

import (
	"errors"
	"testing"
	"time"

	"github.com/ngaspar/salesboard/date"
)

func septRange(from, to int) date.Range {
	return date.Range{From: date.New(2025, time.September, from), To: date.New(2025, time.September, to)}
}

func TestNewCashFlowReport_RoundTrip(t *testing.T) {
	// One receivable of 100 due on day 5, one payable of 40 due on day 5:
	// the predicted balance is 0 until day 4 and 60 from day 5 onward.
	recv := []LedgerEntry{{Counterparty: "acme", Amount: BRL(100), DueDate: date.New(2025, time.September, 5), Status: Open}}
	pay := []LedgerEntry{{Counterparty: "supplier", Amount: BRL(40), DueDate: date.New(2025, time.September, 5), Status: Open}}

	report, err := NewCashFlowReport(recv, pay, BRL(0), septRange(1, 10))
	if err != nil {
		t.Fatalf("NewCashFlowReport() error = %v", err)
	}
	if len(report.Days) != 10 {
		t.Fatalf("got %d days, want a dense series of 10", len(report.Days))
	}
	for _, day := range report.Days {
		want := BRL(0)
		if !day.Date.Before(date.New(2025, time.September, 5)) {
			want = BRL(60)
		}
		if !day.PredictedBalance.Equal(want) {
			t.Errorf("%s: predicted balance = %s, want %s", day.Date, day.PredictedBalance, want)
		}
	}
}

func TestNewCashFlowReport_SeriesSplit(t *testing.T) {
	settled := date.New(2025, time.September, 3)
	recv := []LedgerEntry{
		{Counterparty: "open", Amount: BRL(100), DueDate: date.New(2025, time.September, 8), Status: Open},
		{Counterparty: "paid", Amount: BRL(70), DueDate: date.New(2025, time.September, 2), SettledOn: &settled, Status: Settled},
		// Settled without a settlement date: excluded from the realized series.
		{Counterparty: "lost", Amount: BRL(999), DueDate: date.New(2025, time.September, 2), Status: Settled},
	}

	report, err := NewCashFlowReport(recv, nil, BRL(10), septRange(1, 10))
	if err != nil {
		t.Fatalf("NewCashFlowReport() error = %v", err)
	}

	day3 := report.Days[2]
	if !day3.RealizedIn.Equal(BRL(70)) {
		t.Errorf("day 3 realized in = %s, want 70", day3.RealizedIn)
	}
	if !day3.PredictedIn.IsZero() {
		t.Errorf("day 3 predicted in = %s, want 0: settled entries do not predict", day3.PredictedIn)
	}
	if !day3.RealizedBalance.Equal(BRL(80)) {
		t.Errorf("day 3 realized balance = %s, want opening 10 + 70", day3.RealizedBalance)
	}

	day8 := report.Days[7]
	if !day8.PredictedIn.Equal(BRL(100)) {
		t.Errorf("day 8 predicted in = %s, want 100", day8.PredictedIn)
	}

	last := report.Days[len(report.Days)-1]
	if !last.RealizedBalance.Equal(BRL(80)) {
		t.Errorf("final realized balance = %s, want 80: the 999 entry has no settlement date", last.RealizedBalance)
	}
}

func TestNewCashFlowReport_KPIs(t *testing.T) {
	recv := []LedgerEntry{{Counterparty: "acme", Amount: BRL(500), DueDate: date.New(2025, time.September, 6), Status: Open}}
	pay := []LedgerEntry{
		{Counterparty: "rent", Amount: BRL(300), DueDate: date.New(2025, time.September, 2), Status: Open},
		{Counterparty: "tax", Amount: BRL(100), DueDate: date.New(2025, time.September, 4), Status: Open},
	}

	report, err := NewCashFlowReport(recv, pay, BRL(50), septRange(1, 10))
	if err != nil {
		t.Fatalf("NewCashFlowReport() error = %v", err)
	}

	// Balance: 50, then -250 on day 2, -350 on day 4, +150 from day 6.
	if !report.MinPredictedBalance.Equal(BRL(-350)) {
		t.Errorf("min predicted balance = %s, want -350", report.MinPredictedBalance)
	}
	if report.MinPredictedBalanceDate != date.New(2025, time.September, 4) {
		t.Errorf("min balance date = %s, want 2025-09-04", report.MinPredictedBalanceDate)
	}
	if !report.MaxPredictedBalance.Equal(BRL(150)) {
		t.Errorf("max predicted balance = %s, want 150", report.MaxPredictedBalance)
	}
	if report.NegativePredictedDays != 2 {
		t.Errorf("negative predicted days = %d, want 2", report.NegativePredictedDays)
	}
}

func TestNewCashFlowReport_ScenarioIsolation(t *testing.T) {
	recv := []LedgerEntry{{Counterparty: "acme", Amount: BRL(100), DueDate: date.New(2025, time.September, 5), Status: Open}}

	scenario := ScenarioEntry{Side: Payable, Entry: LedgerEntry{
		Counterparty: "what-if loan", Amount: BRL(80), DueDate: date.New(2025, time.September, 7), Status: Open,
	}}

	withScenario, err := NewCashFlowReport(recv, nil, BRL(0), septRange(1, 10), scenario)
	if err != nil {
		t.Fatalf("scenario projection error = %v", err)
	}
	if !withScenario.Days[9].PredictedBalance.Equal(BRL(20)) {
		t.Errorf("scenario final balance = %s, want 20", withScenario.Days[9].PredictedBalance)
	}

	// A later non-scenario projection over the same slices is untouched.
	plain, err := NewCashFlowReport(recv, nil, BRL(0), septRange(1, 10))
	if err != nil {
		t.Fatalf("plain projection error = %v", err)
	}
	if !plain.Days[9].PredictedBalance.Equal(BRL(100)) {
		t.Errorf("plain final balance = %s, want 100: scenario leaked into the ledger", plain.Days[9].PredictedBalance)
	}
	if len(recv) != 1 {
		t.Errorf("ledger length = %d, want 1", len(recv))
	}
}

func TestNewCashFlowReport_InvalidRange(t *testing.T) {
	recv := []LedgerEntry{{Counterparty: "acme", Amount: BRL(100), DueDate: date.New(2025, time.September, 5), Status: Open}}
	_, err := NewCashFlowReport(recv, nil, BRL(0), date.Range{
		From: date.New(2025, time.September, 10),
		To:   date.New(2025, time.September, 1),
	})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestNewCashFlowReport_NoData(t *testing.T) {
	// Entries exist but none falls inside the range.
	recv := []LedgerEntry{{Counterparty: "acme", Amount: BRL(100), DueDate: date.New(2025, time.December, 5), Status: Open}}
	_, err := NewCashFlowReport(recv, nil, BRL(0), septRange(1, 10))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}

	_, err = NewCashFlowReport(nil, nil, BRL(0), septRange(1, 10))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("empty ledgers: error = %v, want ErrNoData", err)
	}
}
