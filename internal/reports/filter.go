// Package reports implements the aggregations behind the dashboard and
// report views: transaction filtering, budget-vs-actual reconciliation,
// trend series and the monthly, category and balance reports.
//
// All functions in this package are pure. They operate on collections the
// caller has already fetched, perform no I/O and never read the wall clock.
// Computations that are relative to the current time take it as a parameter.
package reports

import (
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// CategoryAll is the sentinel for the category filter that matches every
// transaction.
const CategoryAll = "All"

// Filter is a set of optional predicates for transactions. Zero values do
// not constrain the result, an empty Filter matches every transaction.
type Filter struct {
	From      time.Time       // Transactions at or after this instant
	Until     time.Time       // Transactions at or before this instant
	Category  string          // Case-insensitive substring of the category name. "" and "All" match everything.
	MinAmount decimal.Decimal // Inclusive lower bound for the amount
	MaxAmount decimal.Decimal // Inclusive upper bound for the amount. Zero means unbounded.
	Search    string          // Case-insensitive substring of the note or the category name
}

// FilterTransactions returns the transactions matching all predicates of the
// filter, in the order they were passed in. Applying the same filter to its
// own output is a no-op.
func FilterTransactions(transactions []models.Transaction, filter Filter) []models.Transaction {
	minAmount, maxAmount := filter.amountBounds()

	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !filter.From.IsZero() && t.Date.Before(filter.From) {
			continue
		}

		if !filter.Until.IsZero() && t.Date.After(filter.Until) {
			continue
		}

		if filter.Category != "" && !strings.EqualFold(filter.Category, CategoryAll) && !contains(t.Category.Name, filter.Category) {
			continue
		}

		if t.Amount.LessThan(minAmount) {
			continue
		}

		if !maxAmount.IsZero() && t.Amount.GreaterThan(maxAmount) {
			continue
		}

		if filter.Search != "" && !contains(t.Note, filter.Search) && !contains(t.Category.Name, filter.Search) {
			continue
		}

		matched = append(matched, t)
	}

	return matched
}

// amountBounds normalizes the amount range. The bounds come from query
// parameters, a reversed range is swapped instead of rejected so that the
// filter never fails.
func (f Filter) amountBounds() (decimal.Decimal, decimal.Decimal) {
	minAmount, maxAmount := f.MinAmount, f.MaxAmount

	if !minAmount.IsZero() && !maxAmount.IsZero() && minAmount.GreaterThan(maxAmount) {
		minAmount, maxAmount = maxAmount, minAmount
	}

	return minAmount, maxAmount
}

// contains reports whether sub occurs in s, ignoring case.
func contains(s, sub string) bool {
	return glob.Glob("*"+strings.ToLower(sub)+"*", strings.ToLower(s))
}
