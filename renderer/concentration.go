package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ngaspar/salesboard"
)

func ConcentrationMarkdown(r *salesboard.ConcentrationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Revenue Concentration")
	doc.PlainText(fmt.Sprintf("Grand Total: %s across %s.", r.GrandTotal, count(len(r.Rows), "customer")))
	doc.PlainText(fmt.Sprintf("Class A: %s (%s of the base).", count(r.CountClassA, "customer"), r.PercentInClassA))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Customer", "Total", "Share", "Cumulative", "Class"},
	}
	for i, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			row.Entity,
			row.Total.String(),
			row.Participation.String(),
			row.CumulativeShare.String(),
			row.Class,
		})
	}
	doc.Table(table)

	return doc.String()
}
