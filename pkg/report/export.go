package report

import (
	"time"

	"fintrack/models"
)

// TransactionSummary is the compact per-transaction view used in exports.
type TransactionSummary struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// DayBreakdown subtotals one calendar day.
type DayBreakdown struct {
	Expenses     float64              `json:"expenses"`
	Income       float64              `json:"income"`
	Transactions []TransactionSummary `json:"transactions"`
}

// ExportedTransaction is one row of the flat chronological list.
type ExportedTransaction struct {
	TransactionSummary
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

// Export is the full month export: aggregate summary, per-day breakdown
// keyed by YYYY-MM-DD, and the flat chronological transaction list.
type Export struct {
	Month          string                   `json:"month"`
	Summary        Summary                  `json:"summary"`
	DailyBreakdown map[string]*DayBreakdown `json:"dailyBreakdown"`
	Transactions   []ExportedTransaction    `json:"transactions"`
}

// BuildExport assembles the export for one month. txs must already be in
// chronological order.
func BuildExport(month string, txs []models.Transaction) Export {
	ex := Export{
		Month:          month,
		Summary:        Summarize(txs),
		DailyBreakdown: make(map[string]*DayBreakdown),
		Transactions:   make([]ExportedTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		ts := TransactionSummary{
			ID:          tx.ID,
			Type:        tx.Type,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Description: tx.Description,
		}

		day := tx.Date.Format("2006-01-02")
		db, ok := ex.DailyBreakdown[day]
		if !ok {
			db = &DayBreakdown{Transactions: []TransactionSummary{}}
			ex.DailyBreakdown[day] = db
		}
		if tx.Type == models.TypeExpense {
			db.Expenses += tx.Amount
		} else {
			db.Income += tx.Amount
		}
		db.Transactions = append(db.Transactions, ts)

		ex.Transactions = append(ex.Transactions, ExportedTransaction{
			TransactionSummary: ts,
			Date:               tx.Date.Format(time.RFC3339),
			CreatedAt:          tx.CreatedAt.Format(time.RFC3339),
		})
	}
	return ex
}
