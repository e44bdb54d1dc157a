package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/reports"
)

type MonthlyReportResponse struct {
	Error *string                       `json:"error"` // The error, if any occurred
	Data  map[int]reports.MonthlyTotals `json:"data"`  // Income and expense totals by 0-indexed month of year
}

type CategoryReportResponse struct {
	Error *string                    `json:"error"` // The error, if any occurred
	Data  map[string]decimal.Decimal `json:"data"`  // Expense totals by category name
}

type BalanceReportResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  *reports.Balance `json:"data"`  // Lifetime income, expense and balance
}

type ComparisonReportResponse struct {
	Error *string                    `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  []reports.BudgetComparison `json:"data"`                                                  // One comparison per budgeted category
}

type TrendReportResponse struct {
	Error *string              `json:"error"` // The error, if any occurred
	Data  []reports.TrendPoint `json:"data"`  // Budgeted and spent totals by month, ascending
}

type ReportQueryPeriod struct {
	Period reports.Period `form:"period" example:"3months"` // Window for the report: current, 3months or 6months. Defaults to current.
}
