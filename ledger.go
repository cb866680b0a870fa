package main

import (
	"time"

	"fintrack/models"
	"fintrack/pkg/report"

	"gorm.io/gorm"
)

// LedgerService owns the transaction collection: CRUD plus monthly
// aggregates and export assembly. Every query is scoped to the owner.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// NewTransaction carries the fields of a ledger entry submission.
type NewTransaction struct {
	Description string
	Amount      float64
	Category    string
	Type        string
	Date        time.Time // zero means "now"
}

// Add validates and persists a transaction for user, stamping the owner's
// currency on the record.
func (s *LedgerService) Add(user *models.User, in NewTransaction) (*models.Transaction, error) {
	if in.Description == "" || in.Category == "" {
		return nil, validationErr("description and category are required")
	}
	if in.Amount < 0 {
		return nil, validationErr("amount must be >= 0")
	}
	if !models.ValidType(in.Type) {
		return nil, validationErr("type must be 'expense' or 'income'")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	tx := models.Transaction{
		UserID:      user.ID,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    user.Currency,
		Category:    in.Category,
		Type:        in.Type,
		Date:        date,
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// TransactionPatch holds a partial update; nil fields keep the stored value.
type TransactionPatch struct {
	Description *string
	Amount      *float64
	Category    *string
	Type        *string
	Date        *time.Time
}

// Update overwrites the provided fields of a transaction owned by user.
func (s *LedgerService) Update(user *models.User, id uint, patch TransactionPatch) (*models.Transaction, error) {
	tx, err := s.byOwner(user, id)
	if err != nil {
		return nil, err
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return nil, validationErr("description cannot be empty")
		}
		tx.Description = *patch.Description
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, validationErr("amount must be >= 0")
		}
		tx.Amount = *patch.Amount
	}
	if patch.Category != nil {
		if *patch.Category == "" {
			return nil, validationErr("category cannot be empty")
		}
		tx.Category = *patch.Category
	}
	if patch.Type != nil {
		if !models.ValidType(*patch.Type) {
			return nil, validationErr("type must be 'expense' or 'income'")
		}
		tx.Type = *patch.Type
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	// Currency follows the owner's current preference on every write.
	tx.Currency = user.Currency
	if err := s.db.Save(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes a transaction owned by user.
func (s *LedgerService) Delete(user *models.User, id uint) error {
	tx, err := s.byOwner(user, id)
	if err != nil {
		return err
	}
	return s.db.Delete(tx).Error
}

func (s *LedgerService) byOwner(user *models.User, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, user.ID).First(&tx).Error; err != nil {
		return nil, ErrTransactionNotFound
	}
	return &tx, nil
}

// List returns the user's transactions, optionally restricted to one
// month, newest first.
func (s *LedgerService) List(user *models.User, month string) ([]models.Transaction, error) {
	q := s.db.Where("user_id = ?", user.ID)
	if month != "" {
		start, end, err := report.MonthWindow(month)
		if err != nil {
			return nil, validationErr(err.Error())
		}
		q = q.Where("date >= ? AND date < ?", start, end)
	}
	var items []models.Transaction
	if err := q.Order("date desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// monthAsc loads one month of the user's transactions in chronological
// order, which fixes both the breakdown discovery order and the export
// row order.
func (s *LedgerService) monthAsc(user *models.User, month string) ([]models.Transaction, error) {
	start, end, err := report.MonthWindow(month)
	if err != nil {
		return nil, validationErr(err.Error())
	}
	var items []models.Transaction
	err = s.db.Where("user_id = ? AND date >= ? AND date < ?", user.ID, start, end).
		Order("date asc, id asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Summary aggregates one month of the user's transactions.
func (s *LedgerService) Summary(user *models.User, month string) (report.Summary, error) {
	items, err := s.monthAsc(user, month)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(items), nil
}

// Export assembles the full month export and returns the chronological
// transaction list alongside it for CSV rendering.
func (s *LedgerService) Export(user *models.User, month string) (report.Export, []models.Transaction, error) {
	items, err := s.monthAsc(user, month)
	if err != nil {
		return report.Export{}, nil, err
	}
	return report.BuildExport(month, items), items, nil
}
