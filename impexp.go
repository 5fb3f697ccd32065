package salesboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ngaspar/salesboard/date"
)

// this file imports transaction rows from arbitrary ERP JSON exports.
// Every ERP names its columns differently; instead of one bespoke parser per
// export, the mapping is a set of jsonpath expressions evaluated against
// each row.

// ImportMapping maps an ERP JSON export onto transaction fields. Rows
// selects the row objects from the document; the field paths are evaluated
// relative to each row.
type ImportMapping struct {
	Rows        string `toml:"rows" json:"rows"`
	Date        string `toml:"date" json:"date"`
	Salesperson string `toml:"salesperson" json:"salesperson"`
	Customer    string `toml:"customer" json:"customer"`
	Kind        string `toml:"kind" json:"kind"`
	Tag         string `toml:"tag" json:"tag"`
	Status      string `toml:"status" json:"status"`
	Amount      string `toml:"amount" json:"amount"`
}

// DefaultImportMapping matches the historical ERP export column names.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Rows:        "$[*]",
		Date:        "$.DAT_CAD",
		Salesperson: "$.VEN_NOME",
		Customer:    "$.CLI_RAZ",
		Kind:        "$.PED_TIPO",
		Tag:         "$.PED_OBS_INT",
		Status:      "$.PED_STATUS",
		Amount:      "$.PED_TOTAL",
	}
}

// ImportTransactions reads a JSON document from r and maps its rows into
// transactions using the jsonpath mapping.
func ImportTransactions(r io.Reader, mapping ImportMapping, currency string) ([]Transaction, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jrows, err := jsonpath.Get(mapping.Rows, doc)
	if err != nil {
		return nil, fmt.Errorf("rows path %q: %w", mapping.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer; a lone object is a one-row table.
		rows = []any{jrows}
	}

	txs := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := importRow(row, mapping, currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func importRow(row any, mapping ImportMapping, currency string) (Transaction, error) {
	dateStr, err := stringAt(row, mapping.Date)
	if err != nil {
		return Transaction{}, err
	}
	on, err := date.Parse(dateStr)
	if err != nil {
		return Transaction{}, err
	}

	amount, err := floatAt(row, mapping.Amount)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{Date: on, Amount: M(amount, currency)}
	for _, f := range []struct {
		path string
		dst  *string
	}{
		{mapping.Salesperson, &tx.Salesperson},
		{mapping.Customer, &tx.Customer},
		{mapping.Kind, &tx.Kind},
		{mapping.Tag, &tx.Tag},
		{mapping.Status, &tx.Status},
	} {
		if f.path == "" {
			continue
		}
		v, err := stringAt(row, f.path)
		if err != nil {
			return Transaction{}, err
		}
		*f.dst = v
	}
	return tx, nil
}

func stringAt(row any, path string) (string, error) {
	v, err := jsonpath.Get(path, row)
	if err != nil {
		return "", fmt.Errorf("path %q: %w", path, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, v)
	}
	return s, nil
}

func floatAt(row any, path string) (float64, error) {
	v, err := jsonpath.Get(path, row)
	if err != nil {
		return 0, fmt.Errorf("path %q: %w", path, err)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("path %q: not a number: %v", path, v)
	}
	return f, nil
}
