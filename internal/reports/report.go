package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Period selects the window for the category report.
type Period string

const (
	PeriodCurrent     Period = "current" // the calendar month "now" falls into
	PeriodThreeMonths Period = "3months" // the three months up to "now"
	PeriodSixMonths   Period = "6months" // the six months up to "now"
)

// incomeCategories are category names that represent income sources. They
// are excluded from the category report even when their transactions are
// typed EXPENSE.
var incomeCategories = []string{"Income", "Salary", "Business", "Freelance", "Investment", "Other Incomes"}

// MonthlyTotals is the income and spending for one month bucket.
type MonthlyTotals struct {
	Income  decimal.Decimal `json:"income" example:"2317.34"`
	Expense decimal.Decimal `json:"expense" example:"1833.70"`
}

// MonthlyReport groups all transactions by month-of-year and sums income
// and expense amounts per bucket. Keys are 0-indexed months, January is 0.
//
// The bucketing deliberately ignores the year: transactions from January of
// different years share bucket 0. The dashboard indexes the result with the
// current month number and relies on this shape.
func MonthlyReport(transactions []models.Transaction) map[int]MonthlyTotals {
	report := make(map[int]MonthlyTotals)

	for _, t := range transactions {
		if !t.Amount.IsPositive() {
			continue
		}

		bucket := int(t.Date.UTC().Month()) - 1
		totals := report[bucket]

		if t.Type == models.Income {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}

		report[bucket] = totals
	}

	return report
}

// CategoryReport sums expense amounts by category name for all transactions
// in the selected window. The window ends at now and starts at the first day
// of the month now-N months, N being 0, 3 or 6 depending on the period.
// Unknown periods fall back to the current month.
//
// Categories representing income sources are excluded regardless of the
// transaction type.
func CategoryReport(transactions []models.Transaction, period Period, now time.Time) map[string]decimal.Decimal {
	monthsBack := 0
	switch period {
	case PeriodThreeMonths:
		monthsBack = 3
	case PeriodSixMonths:
		monthsBack = 6
	}

	start := time.Time(types.MonthOf(now).AddDate(0, -monthsBack))

	report := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != models.Expense || !t.Amount.IsPositive() {
			continue
		}

		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}

		name := t.Category.Name
		if name == "" {
			name = "Uncategorized"
		}

		if slices.Contains(incomeCategories, name) {
			continue
		}

		report[name] = report[name].Add(t.Amount)
	}

	return report
}

// Balance is the lifetime income, spending and the resulting balance.
type Balance struct {
	Income  decimal.Decimal `json:"income" example:"2317.34"`
	Expense decimal.Decimal `json:"expense" example:"1833.70"`
	Balance decimal.Decimal `json:"balance" example:"483.64"`
}

// BalanceReport sums all income and all expense amounts over the full,
// unfiltered transaction history.
func BalanceReport(transactions []models.Transaction) Balance {
	income, expense := decimal.Zero, decimal.Zero

	for _, t := range transactions {
		if !t.Amount.IsPositive() {
			continue
		}

		if t.Type == models.Income {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return Balance{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
