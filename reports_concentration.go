package salesboard

import (
	"slices"
	"strings"
)

// Concentration classes, by cumulative share of total value: A up to 80%,
// B up to 95%, C the tail.
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"
)

const (
	classAShare = 0.80
	classBShare = 0.95
)

// EntityTotal is one entity's aggregated value, one row per distinct entity.
type EntityTotal struct {
	Entity string
	Total  Money
}

// ConcentrationRow is an EntityTotal ranked and classified.
type ConcentrationRow struct {
	Entity          string
	Total           Money
	Participation   Percent // share of the grand total
	CumulativeShare Percent // running share, in rank order
	Class           string
}

// ConcentrationReport ranks entities by value and partitions them into
// ABC classes.
type ConcentrationReport struct {
	GrandTotal Money
	Rows       []ConcentrationRow

	// CountClassA is the number of entities classified A.
	CountClassA int
	// PercentInClassA is CountClassA as a share of all entities.
	PercentInClassA Percent
}

// NewConcentrationReport classifies entities by their cumulative share of
// the grand total.
//
// Rows are ranked by descending total; ties rank by entity id ascending so
// the output is deterministic. A zero grand total is degenerate but legal:
// every share is zero and every entity lands in class C.
func NewConcentrationReport(totals []EntityTotal) *ConcentrationReport {
	ranked := slices.Clone(totals)
	slices.SortStableFunc(ranked, func(a, b EntityTotal) int {
		switch {
		case a.Total.GreaterThan(b.Total):
			return -1
		case a.Total.LessThan(b.Total):
			return 1
		default:
			return strings.Compare(a.Entity, b.Entity)
		}
	})

	report := &ConcentrationReport{Rows: make([]ConcentrationRow, 0, len(ranked))}
	for _, row := range ranked {
		report.GrandTotal = report.GrandTotal.Add(row.Total)
	}

	cumulative := M(0, report.GrandTotal.Currency())
	for rank, row := range ranked {
		cumulative = cumulative.Add(row.Total)

		r := ConcentrationRow{Entity: row.Entity, Total: row.Total, Class: ClassC}
		if !report.GrandTotal.IsZero() {
			r.Participation = Percent(100 * row.Total.Ratio(report.GrandTotal))
			share := cumulative.Ratio(report.GrandTotal)
			r.CumulativeShare = Percent(100 * share)
			// The top contributor is A by definition: a single customer
			// holding 90% of revenue overshoots the 80% line on its own and
			// must not end up a B or C outlier.
			switch {
			case rank == 0 || share <= classAShare:
				r.Class = ClassA
			case share <= classBShare:
				r.Class = ClassB
			}
		}
		if r.Class == ClassA {
			report.CountClassA++
		}
		report.Rows = append(report.Rows, r)
	}

	if n := len(report.Rows); n > 0 {
		report.PercentInClassA = Percent(100 * float64(report.CountClassA) / float64(n))
	}
	return report
}

// EntityTotals aggregates the transaction table by customer, one row per
// distinct customer. It is the natural feed for NewConcentrationReport.
func EntityTotals(txs []Transaction) []EntityTotal {
	index := make(map[string]int)
	totals := make([]EntityTotal, 0)
	for _, tx := range txs {
		i, ok := index[tx.Customer]
		if !ok {
			i = len(totals)
			index[tx.Customer] = i
			totals = append(totals, EntityTotal{Entity: tx.Customer})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}
	return totals
}
