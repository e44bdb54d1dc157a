package reports

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// TrendPoint is the total budgeted and the total spent in one month,
// summed over all categories.
type TrendPoint struct {
	Month    types.Month     `json:"month" example:"2024-06-01T00:00:00Z"`
	Budgeted decimal.Decimal `json:"budgeted" example:"2100"`
	Actual   decimal.Decimal `json:"actual" example:"1833.70"`
}

// TrendSeries builds the chronological budgeted-vs-spent series over the
// full history of a user.
//
// The series has one point for every month that appears in a budget or an
// EXPENSE transaction, in ascending order without duplicates. Months without
// any data are not synthesized. Unlike Reconcile, the sums ignore category
// alignment: a point answers "how much was budgeted and how much was spent
// this month" across all categories.
func TrendSeries(budgets []models.Budget, transactions []models.Transaction) []TrendPoint {
	months := make(map[string]types.Month)

	for _, budget := range budgets {
		if budget.Month.IsZero() {
			continue
		}

		months[budget.Month.String()] = budget.Month
	}

	for _, t := range transactions {
		if t.Type != models.Expense || t.Date.IsZero() {
			continue
		}

		month := types.MonthOf(t.Date)
		months[month.String()] = month
	}

	// The zero-padded YYYY-MM representation sorts chronologically
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	series := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		month := months[key]

		budgeted := decimal.Zero
		for _, budget := range budgets {
			if budget.Month.Equal(month) && budget.Amount.IsPositive() {
				budgeted = budgeted.Add(budget.Amount)
			}
		}

		actual := decimal.Zero
		for _, t := range transactions {
			if t.Type == models.Expense && t.Amount.IsPositive() && month.Contains(t.Date) {
				actual = actual.Add(t.Amount)
			}
		}

		series = append(series, TrendPoint{
			Month:    month,
			Budgeted: budgeted,
			Actual:   actual,
		})
	}

	return series
}
