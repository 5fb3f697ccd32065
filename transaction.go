package salesboard

import (
	"slices"
	"strings"

	"github.com/ngaspar/salesboard/date"
)

// UnclassifiedChannel is the catch-all channel for transactions whose
// tag/status pair matches no configured channel. Such rows are routed, never
// dropped.
const UnclassifiedChannel = "Unclassified"

// Transaction is one sales order row as delivered by the data loader.
// Transactions are immutable once ingested.
type Transaction struct {
	Date        date.Date `json:"date"`
	Salesperson string    `json:"salesperson"`
	Customer    string    `json:"customer"`
	Kind        string    `json:"kind"`   // order kind code, e.g. "V" for a sale
	Tag         string    `json:"tag"`    // free-form classification tag
	Status      string    `json:"status"` // free-form status code
	Amount      Money     `json:"amount"`
}

// Channel names a sales channel and the tag/status predicate that routes
// transactions into it. A transaction belongs to the channel when its tag is
// one of Tags and its status one of Statuses.
type Channel struct {
	Name     string
	Tags     []string
	Statuses []string
}

// Matches reports whether the transaction's tag/status pair satisfies the
// channel predicate.
func (c Channel) Matches(tx Transaction) bool {
	return slices.Contains(c.Tags, tx.Tag) && slices.Contains(c.Statuses, tx.Status)
}

// ChannelSet is an ordered list of channel predicates. A transaction is
// classified into the first channel that matches, or into
// [UnclassifiedChannel].
type ChannelSet []Channel

// Classify returns the channel name for the transaction.
func (s ChannelSet) Classify(tx Transaction) string {
	for _, c := range s {
		if c.Matches(tx) {
			return c.Name
		}
	}
	return UnclassifiedChannel
}

// Names returns the channel names in configuration order, without the
// catch-all.
func (s ChannelSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, c := range s {
		names = append(names, c.Name)
	}
	return names
}

// SalesFilter narrows a transaction table before aggregation. The zero value
// keeps everything.
type SalesFilter struct {
	Range             date.Range // zero range keeps all dates
	Salesperson       string     // empty keeps all salespeople
	Kinds             []string   // empty keeps all order kinds
	ExcludedCustomers []string   // customer names removed before aggregation
}

func (f SalesFilter) keeps(tx Transaction) bool {
	if !f.Range.From.IsZero() || !f.Range.To.IsZero() {
		if !f.Range.Contains(tx.Date) {
			return false
		}
	}
	if f.Salesperson != "" && tx.Salesperson != f.Salesperson {
		return false
	}
	if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, tx.Kind) {
		return false
	}
	if slices.Contains(f.ExcludedCustomers, tx.Customer) {
		return false
	}
	return true
}

// Filter returns the transactions satisfying f, in input order. String
// fields are trimmed on comparison the same way the loader trims them on
// ingestion, so a stray space never splits a salesperson in two.
func (f SalesFilter) Filter(txs []Transaction) []Transaction {
	kept := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		tx.Salesperson = strings.TrimSpace(tx.Salesperson)
		tx.Customer = strings.TrimSpace(tx.Customer)
		tx.Tag = strings.TrimSpace(tx.Tag)
		if f.keeps(tx) {
			kept = append(kept, tx)
		}
	}
	return kept
}
