package salesboard

import (
	"slices"
	"strings"

	"github.com/ngaspar/salesboard/date"
)

// ChannelTotal is one channel's realized total after classification.
type ChannelTotal struct {
	Channel string
	Total   Money
}

// SalesSummary is the per-channel aggregation of a filtered transaction
// table.
type SalesSummary struct {
	Range    date.Range
	Channels []ChannelTotal // configuration order, catch-all last

	// Unclassified is the number of transactions routed to the catch-all
	// channel. It is kept separate so tests and callers can see that no row
	// was silently dropped.
	Unclassified int
}

// Total returns the sum over all channels, catch-all included.
func (s *SalesSummary) Total() Money {
	var total Money
	for _, c := range s.Channels {
		total = total.Add(c.Total)
	}
	return total
}

// ChannelTotal returns the total of a named channel.
func (s *SalesSummary) ChannelTotal(name string) Money {
	for _, c := range s.Channels {
		if c.Channel == name {
			return c.Total
		}
	}
	return Money{}
}

// NewSalesSummary classifies the already filtered transactions into the
// configured channels and totals each one. Unmatched rows land in the
// catch-all channel and are counted, never dropped.
func NewSalesSummary(txs []Transaction, channels ChannelSet, rng date.Range) *SalesSummary {
	s := &SalesSummary{Range: rng}

	index := make(map[string]int, len(channels)+1)
	for _, name := range channels.Names() {
		index[name] = len(s.Channels)
		s.Channels = append(s.Channels, ChannelTotal{Channel: name})
	}
	index[UnclassifiedChannel] = len(s.Channels)
	s.Channels = append(s.Channels, ChannelTotal{Channel: UnclassifiedChannel})

	for _, tx := range txs {
		name := channels.Classify(tx)
		if name == UnclassifiedChannel {
			s.Unclassified++
		}
		i := index[name]
		s.Channels[i].Total = s.Channels[i].Total.Add(tx.Amount)
	}
	return s
}

// DailySalesRow is one day of the company-wide daily table.
type DailySalesRow struct {
	Date     date.Date
	Channels []ChannelTotal
	Total    Money
}

// NewDailySalesTable aggregates transactions per day per channel. Only days
// with at least one transaction appear; rows are in chronological order.
func NewDailySalesTable(txs []Transaction, channels ChannelSet) []DailySalesRow {
	byDay := make(map[date.Date]*SalesSummary)
	var days []date.Date
	for _, tx := range txs {
		s, ok := byDay[tx.Date]
		if !ok {
			s = NewSalesSummary(nil, channels, date.Range{From: tx.Date, To: tx.Date})
			byDay[tx.Date] = s
			days = append(days, tx.Date)
		}
		name := channels.Classify(tx)
		for i := range s.Channels {
			if s.Channels[i].Channel == name {
				s.Channels[i].Total = s.Channels[i].Total.Add(tx.Amount)
			}
		}
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	rows := make([]DailySalesRow, 0, len(days))
	for _, on := range days {
		s := byDay[on]
		rows = append(rows, DailySalesRow{Date: on, Channels: s.Channels, Total: s.Total()})
	}
	return rows
}

// SalespersonRow is one salesperson's channel totals.
type SalespersonRow struct {
	Salesperson string
	Channels    []ChannelTotal
	Total       Money
}

// NewSalespersonTable aggregates transactions per salesperson per channel,
// ranked by descending total with name as tie-break.
func NewSalespersonTable(txs []Transaction, channels ChannelSet) []SalespersonRow {
	byPerson := make(map[string][]Transaction)
	for _, tx := range txs {
		byPerson[tx.Salesperson] = append(byPerson[tx.Salesperson], tx)
	}

	rows := make([]SalespersonRow, 0, len(byPerson))
	for person, own := range byPerson {
		s := NewSalesSummary(own, channels, date.Range{})
		rows = append(rows, SalespersonRow{Salesperson: person, Channels: s.Channels, Total: s.Total()})
	}
	slices.SortFunc(rows, func(a, b SalespersonRow) int {
		switch {
		case a.Total.GreaterThan(b.Total):
			return -1
		case a.Total.LessThan(b.Total):
			return 1
		default:
			return strings.Compare(a.Salesperson, b.Salesperson)
		}
	})
	return rows
}

// Ranking returns the top n salespeople for one channel, ranked by that
// channel's total. Salespeople without sales in the channel are skipped.
func Ranking(table []SalespersonRow, channel string, n int) []SalespersonRow {
	ranked := make([]SalespersonRow, 0, len(table))
	for _, row := range table {
		for _, c := range row.Channels {
			if c.Channel == channel && c.Total.IsPositive() {
				ranked = append(ranked, row)
				break
			}
		}
	}
	slices.SortStableFunc(ranked, func(a, b SalespersonRow) int {
		at, bt := channelOf(a, channel), channelOf(b, channel)
		switch {
		case at.GreaterThan(bt):
			return -1
		case at.LessThan(bt):
			return 1
		default:
			return strings.Compare(a.Salesperson, b.Salesperson)
		}
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func channelOf(row SalespersonRow, channel string) Money {
	for _, c := range row.Channels {
		if c.Channel == channel {
			return c.Total
		}
	}
	return Money{}
}
