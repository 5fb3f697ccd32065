package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ngaspar/salesboard"
)

func SalesMarkdown(s *salesboard.SalesSummary, daily []salesboard.DailySalesRow, people []salesboard.SalespersonRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales %s to %s", s.Range.From, s.Range.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total"),
			md.Bold(s.Total().String()),
		},
	}
	for _, c := range s.Channels {
		if c.Channel == salesboard.UnclassifiedChannel && c.Total.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{c.Channel, c.Total.String()})
	}
	doc.Table(table)
	if s.Unclassified > 0 {
		doc.PlainText(fmt.Sprintf("%s did not match any channel.", count(s.Unclassified, "transaction")))
	}

	if len(daily) > 0 {
		doc.H2("Daily Sales")
		doc.Table(dailyTable(daily, s))
	}

	if len(people) > 0 {
		doc.H2("Salespeople")
		doc.Table(salespersonTable(people, s))
	}

	return doc.String()
}

func RankingMarkdown(rows []salesboard.SalespersonRow, channel string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Ranking", channel))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"#", "Salesperson", channel},
	}
	for i, row := range rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			row.Salesperson,
			channelTotal(row.Channels, channel).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// channelNames lists the channels worth a column: the configured ones always,
// the catch-all only when it collected something.
func channelNames(s *salesboard.SalesSummary) []string {
	names := make([]string, 0, len(s.Channels))
	for _, c := range s.Channels {
		if c.Channel == salesboard.UnclassifiedChannel && s.Unclassified == 0 {
			continue
		}
		names = append(names, c.Channel)
	}
	return names
}

func dailyTable(rows []salesboard.DailySalesRow, s *salesboard.SalesSummary) md.TableSet {
	names := channelNames(s)
	table := md.TableSet{Header: append([]string{"Date"}, append(names, "Total")...)}
	for _, row := range rows {
		cells := []string{row.Date.String()}
		for _, name := range names {
			cells = append(cells, channelTotal(row.Channels, name).String())
		}
		cells = append(cells, row.Total.String())
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func salespersonTable(rows []salesboard.SalespersonRow, s *salesboard.SalesSummary) md.TableSet {
	names := channelNames(s)
	table := md.TableSet{Header: append([]string{"Salesperson"}, append(names, "Total")...)}
	for _, row := range rows {
		cells := []string{row.Salesperson}
		for _, name := range names {
			cells = append(cells, channelTotal(row.Channels, name).String())
		}
		cells = append(cells, row.Total.String())
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func channelTotal(channels []salesboard.ChannelTotal, name string) salesboard.Money {
	for _, c := range channels {
		if c.Channel == name {
			return c.Total
		}
	}
	return salesboard.Money{}
}
