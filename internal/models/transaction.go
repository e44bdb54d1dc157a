package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the effect a transaction has on the balance.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// The maximum length for a transaction note. Longer notes are truncated
// on save.
const noteMaxLength = 500

// Transaction is a single income or expense record. The amount is always
// stored positive, the sign is implied by the type.
type Transaction struct {
	DefaultModel
	Type       TransactionType `json:"type" example:"EXPENSE"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Date       time.Time       `json:"date" example:"2024-06-05T00:00:00Z"`
	Note       string          `json:"note" example:"Lunch"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   Category        `json:"category"`
	UserID     uuid.UUID       `json:"userId" gorm:"index"`
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be INCOME or EXPENSE")
)

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	if len(t.Note) > noteMaxLength {
		t.Note = t.Note[:noteMaxLength]
	}

	if t.Type == "" {
		t.Type = Expense
	}

	if t.Type != Income && t.Type != Expense {
		return ErrTransactionTypeInvalid
	}

	// Dates are stored in UTC, the same timezone period bucketing uses
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, analogous to the
// timestamp handling in DefaultModel.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
