package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"fintrack/models"
)

// WriteCSV renders transactions as comma-separated text with the header
// row Date,Description,Category,Type,Amount. Dates are YYYY-MM-DD and
// amounts plain numbers; fields containing delimiters are quoted.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return err
	}
	for _, tx := range txs {
		rec := []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.Category,
			tx.Type,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
