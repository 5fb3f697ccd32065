package salesboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ngaspar/salesboard/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// this file decodes the data loader's file formats. They are JSONL files:
// human readable, single file, trivial to merge and diff.

// jtransaction is the persisted shape of a transaction row.
type jtransaction struct {
	Date        date.Date       `json:"date"`
	Salesperson string          `json:"salesperson"`
	Customer    string          `json:"customer"`
	Kind        string          `json:"kind"`
	Tag         string          `json:"tag"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
}

// DecodeTransactions decodes a transaction table from a stream of JSONL
// data, one object per line.
func DecodeTransactions(r io.Reader, currency string) ([]Transaction, error) {
	var txs []Transaction
	err := scanLines(r, func(line []byte) error {
		var j jtransaction
		if err := json.Unmarshal(line, &j); err != nil {
			return fmt.Errorf("cannot parse transaction line %q: %w", string(line), err)
		}
		cur := j.Currency
		if cur == "" {
			cur = currency
		}
		txs = append(txs, Transaction{
			Date:        j.Date,
			Salesperson: j.Salesperson,
			Customer:    j.Customer,
			Kind:        j.Kind,
			Tag:         j.Tag,
			Status:      j.Status,
			Amount:      M(j.Amount, cur),
		})
		return nil
	})
	return txs, err
}

// EncodeTransactions writes a transaction table as JSONL, one object per
// line, the shape DecodeTransactions reads back.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	enc := json.NewEncoder(w)
	for _, tx := range txs {
		j := jtransaction{
			Date:        tx.Date,
			Salesperson: tx.Salesperson,
			Customer:    tx.Customer,
			Kind:        tx.Kind,
			Tag:         tx.Tag,
			Status:      tx.Status,
			Amount:      tx.Amount.value,
			Currency:    tx.Amount.Currency(),
		}
		if err := enc.Encode(j); err != nil {
			return err
		}
	}
	return nil
}

// jentry is the persisted shape of a ledger entry.
type jentry struct {
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty"`
	DueDate      date.Date       `json:"dueDate"`
	SettledOn    *date.Date      `json:"settledOn,omitempty"`
	Status       string          `json:"status"`
	Delinquent   bool            `json:"delinquent,omitempty"`
}

// DecodeLedgerEntries decodes a receivable or payable ledger from a stream
// of JSONL data, one entry per line.
func DecodeLedgerEntries(r io.Reader, currency string) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := scanLines(r, func(line []byte) error {
		var j jentry
		if err := json.Unmarshal(line, &j); err != nil {
			return fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
		status, err := ParseEntryStatus(j.Status)
		if err != nil {
			return fmt.Errorf("ledger line %q: %w", string(line), err)
		}
		cur := j.Currency
		if cur == "" {
			cur = currency
		}
		entries = append(entries, LedgerEntry{
			Counterparty: j.Counterparty,
			Amount:       M(j.Amount, cur),
			DueDate:      j.DueDate,
			SettledOn:    j.SettledOn,
			Status:       status,
			Delinquent:   j.Delinquent,
		})
		return nil
	})
	return entries, err
}

// DecodeHolidays decodes a holiday calendar from a stream of JSONL data.
// Each line is either a bare date string or an object with a "date"
// property, so both export styles are accepted.
func DecodeHolidays(r io.Reader) (*date.Calendar, error) {
	var holidays []date.Date
	err := scanLines(r, func(line []byte) error {
		var d date.Date
		if err := json.Unmarshal(line, &d); err == nil {
			holidays = append(holidays, d)
			return nil
		}
		var j struct {
			Date date.Date `json:"date"`
		}
		if err := json.Unmarshal(line, &j); err != nil {
			return fmt.Errorf("cannot parse holiday line %q: %w", string(line), err)
		}
		holidays = append(holidays, j.Date)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return date.NewCalendar(holidays...), nil
}

// EncodeScenarioEntries writes scenario entries in the same JSONL shape the
// ledger files use, with an extra "side" property.
func EncodeScenarioEntries(w io.Writer, entries []ScenarioEntry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		j := struct {
			Side string `json:"side"`
			jentry
		}{
			Side: sideName(e.Side),
			jentry: jentry{
				Counterparty: e.Entry.Counterparty,
				Amount:       e.Entry.Amount.value,
				Currency:     e.Entry.Amount.Currency(),
				DueDate:      e.Entry.DueDate,
				SettledOn:    e.Entry.SettledOn,
				Status:       e.Entry.Status.String(),
				Delinquent:   e.Entry.Delinquent,
			},
		}
		if err := enc.Encode(j); err != nil {
			return err
		}
	}
	return nil
}

// DecodeScenarioEntries decodes what-if entries from a stream of JSONL data.
func DecodeScenarioEntries(r io.Reader, currency string) ([]ScenarioEntry, error) {
	var entries []ScenarioEntry
	err := scanLines(r, func(line []byte) error {
		var j struct {
			Side string `json:"side"`
			jentry
		}
		if err := json.Unmarshal(line, &j); err != nil {
			return fmt.Errorf("cannot parse scenario line %q: %w", string(line), err)
		}
		side, err := parseSide(j.Side)
		if err != nil {
			return fmt.Errorf("scenario line %q: %w", string(line), err)
		}
		status, err := ParseEntryStatus(j.Status)
		if err != nil {
			return fmt.Errorf("scenario line %q: %w", string(line), err)
		}
		cur := j.Currency
		if cur == "" {
			cur = currency
		}
		entries = append(entries, ScenarioEntry{
			Side: side,
			Entry: LedgerEntry{
				Counterparty: j.Counterparty,
				Amount:       M(j.Amount, cur),
				DueDate:      j.DueDate,
				SettledOn:    j.SettledOn,
				Status:       status,
				Delinquent:   j.Delinquent,
			},
		})
		return nil
	})
	return entries, err
}

func sideName(s LedgerSide) string {
	if s == Payable {
		return "payable"
	}
	return "receivable"
}

func parseSide(s string) (LedgerSide, error) {
	switch s {
	case "receivable":
		return Receivable, nil
	case "payable":
		return Payable, nil
	default:
		return 0, fmt.Errorf("unknown ledger side: %q", s)
	}
}

// scanLines runs fn over every non-empty line of r.
func scanLines(r io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
