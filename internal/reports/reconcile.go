package reports

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// Status classifies how much of a budget has been consumed.
type Status string

const (
	StatusOnTrack           Status = "on-track"            // less than 70% consumed
	StatusWarning           Status = "warning"             // 70% or more consumed
	StatusOverBudgetWarning Status = "over-budget-warning" // 90% or more consumed
	StatusExceeded          Status = "exceeded"            // 100% or more consumed
)

var (
	percentWarning  = decimal.NewFromInt(70)
	percentCritical = decimal.NewFromInt(90)
	percentExceeded = decimal.NewFromInt(100)
)

// ComparisonStatus returns the status for a percentage of budget consumed.
func ComparisonStatus(percentage decimal.Decimal) Status {
	switch {
	case percentage.GreaterThanOrEqual(percentExceeded):
		return StatusExceeded
	case percentage.GreaterThanOrEqual(percentCritical):
		return StatusOverBudgetWarning
	case percentage.GreaterThanOrEqual(percentWarning):
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// BudgetComparison is the actual spending in a budget's category for one
// month, compared to the budgeted amount.
type BudgetComparison struct {
	CategoryName string          `json:"categoryName" example:"Food"`
	Budgeted     decimal.Decimal `json:"budgeted" example:"500"`
	Actual       decimal.Decimal `json:"actual" example:"350"`
	Remaining    decimal.Decimal `json:"remaining" example:"150"`  // Budgeted minus actual, negative when the budget is exceeded
	Percentage   decimal.Decimal `json:"percentage" example:"70"`  // 100 * actual / budgeted, 0 when nothing is budgeted
	Status       Status          `json:"status" example:"warning"` // Classification of the percentage
}

// Reconcile matches every budget of the month against the actual spending in
// its category and returns one comparison per budgeted category.
//
// Actual spending is the sum of all EXPENSE transactions in the budget's
// category whose date falls into the month. Budgeted categories without
// transactions get an actual of 0; transactions in categories without a
// budget do not appear at all. If the caller passes two budgets for the same
// category and month, the last one wins, spending is never counted twice.
func Reconcile(budgets []models.Budget, transactions []models.Transaction, month types.Month) []BudgetComparison {
	comparisons := make([]BudgetComparison, 0, len(budgets))
	index := make(map[string]int)

	for _, budget := range budgets {
		if !budget.Month.Equal(month) {
			continue
		}

		actual := decimal.Zero
		for _, t := range transactions {
			if t.Type != models.Expense || !t.Amount.IsPositive() {
				continue
			}

			if t.Category.Name != budget.Category.Name || !month.Contains(t.Date) {
				continue
			}

			actual = actual.Add(t.Amount)
		}

		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			percentage = actual.Div(budget.Amount).Mul(percentExceeded)
		}

		comparison := BudgetComparison{
			CategoryName: budget.Category.Name,
			Budgeted:     budget.Amount,
			Actual:       actual,
			Remaining:    budget.Amount.Sub(actual),
			Percentage:   percentage,
			Status:       ComparisonStatus(percentage),
		}

		if i, ok := index[budget.Category.Name]; ok {
			comparisons[i] = comparison
			continue
		}

		index[budget.Category.Name] = len(comparisons)
		comparisons = append(comparisons, comparison)
	}

	return comparisons
}
