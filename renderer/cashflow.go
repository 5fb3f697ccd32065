package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ngaspar/salesboard"
)

func CashFlowMarkdown(r *salesboard.CashFlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash Flow %s to %s", r.Range.From, r.Range.To))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Opening Balance"),
			md.Bold(r.OpeningBalance.String()),
		},
		Rows: [][]string{
			{fmt.Sprintf("Lowest Predicted Balance (%s)", r.MinPredictedBalanceDate), r.MinPredictedBalance.String()},
			{"Highest Predicted Balance", r.MaxPredictedBalance.String()},
			{"Days with Negative Net Flow", fmt.Sprintf("%d", r.NegativePredictedDays)},
		},
	})

	doc.H2("Daily Projection")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Predicted Net", "Predicted Balance", "Realized Net", "Realized Balance"},
	}
	for _, day := range r.Days {
		// Quiet days carry no flows; the balance columns tell the whole story.
		if day.PredictedNet.IsZero() && day.RealizedNet.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{
			day.Date.String(),
			day.PredictedNet.SignedString(),
			day.PredictedBalance.String(),
			day.RealizedNet.SignedString(),
			day.RealizedBalance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
