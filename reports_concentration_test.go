package salesboard

import (
	"math"
	"testing"
	"time"

	"github.com/ngaspar/salesboard/date"
)

func TestNewConcentrationReport_Classifies(t *testing.T) {
	report := NewConcentrationReport([]EntityTotal{
		{Entity: "tail-1", Total: BRL(50)},
		{Entity: "big", Total: BRL(700)},
		{Entity: "mid", Total: BRL(200)},
		{Entity: "tail-2", Total: BRL(50)},
	})

	if !report.GrandTotal.Equal(BRL(1000)) {
		t.Fatalf("GrandTotal = %s, want 1000", report.GrandTotal)
	}
	if got := report.Rows[0].Entity; got != "big" {
		t.Errorf("rank 1 = %q, want big", got)
	}

	// tail-1 ranks before tail-2 (tie broken by id) and lands exactly on the
	// 95% boundary, which is still B.
	wantClasses := map[string]string{"big": ClassA, "mid": ClassB, "tail-1": ClassB, "tail-2": ClassC}
	for _, row := range report.Rows {
		if row.Class != wantClasses[row.Entity] {
			t.Errorf("%s: class = %s, want %s", row.Entity, row.Class, wantClasses[row.Entity])
		}
	}

	if report.CountClassA != 1 {
		t.Errorf("CountClassA = %d, want 1", report.CountClassA)
	}
	if !report.PercentInClassA.Equal(Percent(25)) {
		t.Errorf("PercentInClassA = %s, want 25%%", report.PercentInClassA)
	}
}

// Participations sum to 100% and every entity gets a class.
func TestNewConcentrationReport_Partition(t *testing.T) {
	totals := []EntityTotal{
		{Entity: "a", Total: BRL(123.45)},
		{Entity: "b", Total: BRL(67.89)},
		{Entity: "c", Total: BRL(1000)},
		{Entity: "d", Total: BRL(0.5)},
		{Entity: "e", Total: BRL(311)},
	}
	report := NewConcentrationReport(totals)

	var sum float64
	for _, row := range report.Rows {
		sum += float64(row.Participation)
		if row.Class != ClassA && row.Class != ClassB && row.Class != ClassC {
			t.Errorf("%s: unclassified row %q", row.Entity, row.Class)
		}
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("participation sum = %v, want 100", sum)
	}
	if last := report.Rows[len(report.Rows)-1]; !last.CumulativeShare.Equal(Percent(100)) {
		t.Errorf("last cumulative share = %s, want 100%%", last.CumulativeShare)
	}
}

// A single customer holding at least 80% of revenue is the A class on its
// own, even though its cumulative share overshoots the 80% line.
func TestNewConcentrationReport_DominantEntity(t *testing.T) {
	report := NewConcentrationReport([]EntityTotal{
		{Entity: "whale", Total: BRL(900)},
		{Entity: "shrimp", Total: BRL(100)},
	})
	if got := report.Rows[0].Class; got != ClassA {
		t.Errorf("whale class = %s, want A", got)
	}
	if got := report.Rows[1].Class; got == ClassA {
		t.Errorf("shrimp class = A, want B or C")
	}
	if report.CountClassA != 1 {
		t.Errorf("CountClassA = %d, want 1", report.CountClassA)
	}
}

func TestNewConcentrationReport_ZeroGrandTotal(t *testing.T) {
	report := NewConcentrationReport([]EntityTotal{
		{Entity: "a", Total: BRL(0)},
		{Entity: "b", Total: BRL(0)},
	})
	for _, row := range report.Rows {
		if row.Class != ClassC {
			t.Errorf("%s: class = %s, want C", row.Entity, row.Class)
		}
		if row.Participation != 0 || row.CumulativeShare != 0 {
			t.Errorf("%s: shares = %s/%s, want zero", row.Entity, row.Participation, row.CumulativeShare)
		}
	}
	if report.CountClassA != 0 {
		t.Errorf("CountClassA = %d, want 0", report.CountClassA)
	}
}

// Equal totals rank by entity id so the output is deterministic.
func TestNewConcentrationReport_TieBreak(t *testing.T) {
	report := NewConcentrationReport([]EntityTotal{
		{Entity: "zeta", Total: BRL(100)},
		{Entity: "alpha", Total: BRL(100)},
	})
	if report.Rows[0].Entity != "alpha" || report.Rows[1].Entity != "zeta" {
		t.Errorf("tie order = %s, %s; want alpha, zeta", report.Rows[0].Entity, report.Rows[1].Entity)
	}
}

func TestEntityTotals(t *testing.T) {
	on := date.New(2025, time.September, 3)
	txs := []Transaction{
		{Date: on, Customer: "acme", Amount: BRL(100)},
		{Date: on, Customer: "zenith", Amount: BRL(50)},
		{Date: on, Customer: "acme", Amount: BRL(25)},
	}
	totals := EntityTotals(txs)
	if len(totals) != 2 {
		t.Fatalf("got %d entities, want 2", len(totals))
	}
	if totals[0].Entity != "acme" || !totals[0].Total.Equal(BRL(125)) {
		t.Errorf("acme = %s %s, want acme 125", totals[0].Entity, totals[0].Total)
	}
}
