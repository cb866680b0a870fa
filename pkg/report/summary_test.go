package report

import (
	"testing"
	"time"

	"fintrack/models"
)

func tx(day int, typ, category string, amount float64) models.Transaction {
	return models.Transaction{
		Date:     time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Type:     typ,
		Category: category,
		Amount:   amount,
		Currency: "USD",
	}
}

func TestSummarizeMarchExample(t *testing.T) {
	txs := []models.Transaction{
		tx(2, models.TypeExpense, "food", 50),
		tx(10, models.TypeExpense, "food", 20),
		tx(15, models.TypeIncome, "salary", 200),
	}
	s := Summarize(txs)
	if s.TotalIncome != 200 {
		t.Fatalf("totalIncome = %v, want 200", s.TotalIncome)
	}
	if s.TotalExpenses != 70 {
		t.Fatalf("totalExpenses = %v, want 70", s.TotalExpenses)
	}
	if s.Balance != 130 {
		t.Fatalf("balance = %v, want 130", s.Balance)
	}
	if len(s.CategoryBreakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1: %+v", len(s.CategoryBreakdown), s.CategoryBreakdown)
	}
	if s.CategoryBreakdown[0].Category != "food" || s.CategoryBreakdown[0].Total != 70 {
		t.Fatalf("breakdown[0] = %+v, want {food 70}", s.CategoryBreakdown[0])
	}
}

func TestSummarizeDiscoveryOrder(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "rent", 900),
		tx(2, models.TypeExpense, "food", 30),
		tx(3, models.TypeExpense, "rent", 50),
		tx(4, models.TypeExpense, "travel", 120),
	}
	s := Summarize(txs)
	want := []string{"rent", "food", "travel"}
	if len(s.CategoryBreakdown) != len(want) {
		t.Fatalf("breakdown has %d entries, want %d", len(s.CategoryBreakdown), len(want))
	}
	for i, cat := range want {
		if s.CategoryBreakdown[i].Category != cat {
			t.Fatalf("breakdown[%d] = %q, want %q", i, s.CategoryBreakdown[i].Category, cat)
		}
	}
	if s.CategoryBreakdown[0].Total != 950 {
		t.Fatalf("rent total = %v, want 950", s.CategoryBreakdown[0].Total)
	}
}

func TestSummarizeInvariants(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeIncome, "salary", 1200.50),
		tx(3, models.TypeExpense, "food", 45.25),
		tx(5, models.TypeExpense, "travel", 80),
		tx(9, models.TypeIncome, "gift", 20),
		tx(20, models.TypeExpense, "food", 12.75),
	}
	s := Summarize(txs)
	if s.Balance != s.TotalIncome-s.TotalExpenses {
		t.Fatalf("balance %v != income %v - expenses %v", s.Balance, s.TotalIncome, s.TotalExpenses)
	}
	var catSum float64
	for _, ct := range s.CategoryBreakdown {
		catSum += ct.Total
	}
	if catSum != s.TotalExpenses {
		t.Fatalf("category sum %v != totalExpenses %v", catSum, s.TotalExpenses)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Balance != 0 {
		t.Fatalf("empty summary has non-zero totals: %+v", s)
	}
	if s.CategoryBreakdown == nil || len(s.CategoryBreakdown) != 0 {
		t.Fatalf("empty summary breakdown should be an empty slice, got %#v", s.CategoryBreakdown)
	}
}

func TestSummarizeIncomeExcludedFromBreakdown(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeIncome, "food", 100), // income in an expense-looking category
		tx(2, models.TypeExpense, "food", 40),
	}
	s := Summarize(txs)
	if s.CategoryBreakdown[0].Total != 40 {
		t.Fatalf("food total = %v, want 40 (income must not count)", s.CategoryBreakdown[0].Total)
	}
}
