package salesboard

import (
	"strings"
	"testing"
	"time"

	"github.com/ngaspar/salesboard/date"
)

func TestImportTransactions(t *testing.T) {
	// A trimmed ERP export with the historical column names.
	doc := `[
		{"DAT_CAD":"2025-09-01","VEN_NOME":"ana","CLI_RAZ":"acme","PED_TIPO":"V","PED_OBS_INT":"OPD","PED_STATUS":"F","PED_TOTAL":100.5},
		{"DAT_CAD":"2025-09-02","VEN_NOME":"rui","CLI_RAZ":"beta","PED_TIPO":"V","PED_OBS_INT":"LOJA","PED_STATUS":"N","PED_TOTAL":20}
	]`

	txs, err := ImportTransactions(strings.NewReader(doc), DefaultImportMapping(), "BRL")
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	got := txs[0]
	if got.Date != date.New(2025, time.September, 1) {
		t.Errorf("date = %s, want 2025-09-01", got.Date)
	}
	if got.Salesperson != "ana" || got.Customer != "acme" {
		t.Errorf("salesperson/customer = %q/%q, want ana/acme", got.Salesperson, got.Customer)
	}
	if got.Kind != "V" || got.Tag != "OPD" || got.Status != "F" {
		t.Errorf("kind/tag/status = %q/%q/%q, want V/OPD/F", got.Kind, got.Tag, got.Status)
	}
	if !got.Amount.Equal(BRL(100.5)) {
		t.Errorf("amount = %s, want 100.50", got.Amount)
	}
}

func TestImportTransactions_CustomMapping(t *testing.T) {
	doc := `{"orders":[{"when":"2025-09-03","rep":"eva","total":42}]}`
	mapping := ImportMapping{
		Rows:        "$.orders[*]",
		Date:        "$.when",
		Salesperson: "$.rep",
		Amount:      "$.total",
	}
	txs, err := ImportTransactions(strings.NewReader(doc), mapping, "BRL")
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Salesperson != "eva" || !txs[0].Amount.Equal(BRL(42)) {
		t.Errorf("transaction = %+v", txs[0])
	}
	if txs[0].Customer != "" {
		t.Errorf("customer = %q, want empty: the mapping has no customer path", txs[0].Customer)
	}
}

func TestImportTransactions_BadRow(t *testing.T) {
	doc := `[{"DAT_CAD":"not a date","VEN_NOME":"ana","CLI_RAZ":"acme","PED_TIPO":"V","PED_OBS_INT":"OPD","PED_STATUS":"F","PED_TOTAL":1}]`
	if _, err := ImportTransactions(strings.NewReader(doc), DefaultImportMapping(), "BRL"); err == nil {
		t.Error("want an error for an unparseable date")
	}
}
