package report

import "fintrack/models"

// CategoryTotal is a per-category sum of expense amounts.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary aggregates one month of transactions.
type Summary struct {
	TotalIncome       float64         `json:"totalIncome"`
	TotalExpenses     float64         `json:"totalExpenses"`
	Balance           float64         `json:"balance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
}

// Summarize computes income and expense totals plus the expense-only
// category breakdown. Categories keep the order they are first seen in.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{CategoryBreakdown: []CategoryTotal{}}
	idx := make(map[string]int)
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			s.TotalIncome += tx.Amount
		case models.TypeExpense:
			s.TotalExpenses += tx.Amount
			i, ok := idx[tx.Category]
			if !ok {
				i = len(s.CategoryBreakdown)
				idx[tx.Category] = i
				s.CategoryBreakdown = append(s.CategoryBreakdown, CategoryTotal{Category: tx.Category})
			}
			s.CategoryBreakdown[i].Total += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}
