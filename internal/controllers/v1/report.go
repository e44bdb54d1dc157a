package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/reports"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsReports)
	r.GET("/monthly", GetMonthlyReport)

	r.OPTIONS("/category", OptionsReports)
	r.GET("/category", GetCategoryReport)

	r.OPTIONS("/balance", OptionsReports)
	r.GET("/balance", GetBalanceReport)

	r.OPTIONS("/comparison", OptionsReports)
	r.GET("/comparison", GetComparisonReport)

	r.OPTIONS("/trend", OptionsReports)
	r.GET("/trend", GetTrendReport)
}

func OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// userTransactions returns all transactions of the authenticated user with
// their categories preloaded.
func userTransactions(c *gin.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.
		Preload("Category").
		Where(&models.Transaction{UserID: userID(c)}).
		Find(&transactions).Error

	return transactions, err
}

// userBudgets returns all budgets of the authenticated user with their
// categories preloaded.
func userBudgets(c *gin.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	err := models.DB.
		Preload("Category").
		Where(&models.Budget{UserID: userID(c)}).
		Find(&budgets).Error

	return budgets, err
}

// GetMonthlyReport returns the income and expense totals of the
// authenticated user grouped by month of year. January is bucket 0. The
// grouping ignores the year, see the dashboard documentation.
func GetMonthlyReport(c *gin.Context) {
	transactions, err := userTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{
		Data: reports.MonthlyReport(transactions),
	})
}

// GetCategoryReport returns the expense totals of the authenticated user
// by category for the requested period.
func GetCategoryReport(c *gin.Context) {
	var query ReportQueryPeriod
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryReportResponse{
			Error: &e,
		})
		return
	}

	if query.Period == "" {
		query.Period = reports.PeriodCurrent
	}

	if !slices.Contains([]reports.Period{reports.PeriodCurrent, reports.PeriodThreeMonths, reports.PeriodSixMonths}, query.Period) {
		e := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryReportResponse{
			Error: &e,
		})
		return
	}

	transactions, err := userTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryReportResponse{
		Data: reports.CategoryReport(transactions, query.Period, time.Now().UTC()),
	})
}

// GetBalanceReport returns the lifetime income, expense and balance of the
// authenticated user.
func GetBalanceReport(c *gin.Context) {
	transactions, err := userTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceReportResponse{
			Error: &e,
		})
		return
	}

	balance := reports.BalanceReport(transactions)
	c.JSON(http.StatusOK, BalanceReportResponse{Data: &balance})
}

// GetComparisonReport returns the budget-vs-actual comparison of the
// authenticated user for one month. The month query parameter is required.
func GetComparisonReport(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ComparisonReportResponse{
			Error: &e,
		})
		return
	}

	if query.Month.IsZero() {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, ComparisonReportResponse{
			Error: &e,
		})
		return
	}

	budgets, err := userBudgets(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonReportResponse{
			Error: &e,
		})
		return
	}

	transactions, err := userTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ComparisonReportResponse{
		Data: reports.Reconcile(budgets, transactions, types.MonthOf(query.Month)),
	})
}

// GetTrendReport returns the budgeted-vs-spent series of the authenticated
// user over the full history.
func GetTrendReport(c *gin.Context) {
	budgets, err := userBudgets(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendReportResponse{
			Error: &e,
		})
		return
	}

	transactions, err := userTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TrendReportResponse{
		Data: reports.TrendSeries(budgets, transactions),
	})
}
