package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ngaspar/salesboard"
)

func GoalMarkdown(r *salesboard.GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Goals for %s", r.Category, r.Month))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Realized"),
			md.Bold(r.Realized.String()),
		},
		Rows: [][]string{
			{"Daily Rate", r.DailyRate.String()},
			{"Projected Month End", r.ProjectedTotal.String()},
			{"Business Days Elapsed", fmt.Sprintf("%d", r.ElapsedDays)},
			{"Business Days Remaining", fmt.Sprintf("%d", r.RemainingDays)},
		},
	})

	doc.H2("Tiers")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Tier", "Threshold", "State", "Delta", "Required Pace"},
	}
	for _, s := range r.Tiers {
		table.Rows = append(table.Rows, []string{
			s.Tier.Name,
			s.Tier.Threshold.String(),
			s.State.String(),
			tierDelta(s),
			s.RequiredDailyPace.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// tierDelta picks the figure that matters for the tier's state: surplus or
// shortfall under the waterfall reading, the trend delta otherwise.
func tierDelta(s salesboard.TierStatus) string {
	switch s.State {
	case salesboard.TierAchieved:
		return s.Surplus.SignedString()
	case salesboard.TierInProgress:
		return s.Shortfall.Neg().SignedString()
	default:
		return fmt.Sprintf("%s (%s)", s.TrendDelta.SignedString(), s.TrendDeltaPercent.SignedString())
	}
}
