package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"fintrack/models"
)

func TestWriteCSV(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Description: "groceries",
			Category:    "food",
			Type:        models.TypeExpense,
			Amount:      50,
		},
		{
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Description: "march salary",
			Category:    "salary",
			Type:        models.TypeIncome,
			Amount:      1200.5,
		},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, txs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if lines[0] != "Date,Description,Category,Type,Amount" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "2024-03-02,groceries,food,expense,50" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "2024-03-15,march salary,salary,income,1200.5" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Description: "dinner, drinks",
			Category:    "food",
			Type:        models.TypeExpense,
			Amount:      80,
		},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, txs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), `"dinner, drinks"`) {
		t.Fatalf("embedded comma not quoted: %q", buf.String())
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "Date,Description,Category,Type,Amount" {
		t.Fatalf("empty export = %q, want header only", got)
	}
}
