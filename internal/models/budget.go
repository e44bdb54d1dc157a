package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
)

// Budget is the amount a user plans to spend in a category in one month.
//
// Uniqueness of (user, category, month) is not enforced. Reconciliation
// keys comparisons by category name so that a duplicate can never
// double-count spending, the last budget written wins.
type Budget struct {
	DefaultModel
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
	Month      types.Month     `json:"month" example:"2024-06-01T00:00:00Z"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   Category        `json:"category"`
	UserID     uuid.UUID       `json:"userId" gorm:"index"`
}

var (
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetMonthNotSet       = errors.New("the budget month must be set")
)

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Month.IsZero() {
		return ErrBudgetMonthNotSet
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrBudgetAmountNotPositive
	}

	return nil
}
