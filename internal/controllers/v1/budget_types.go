package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

type BudgetEditable struct {
	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The budgeted amount

	Month    uint8  `json:"month" example:"6" minimum:"1" maximum:"12"`      // Month the budget is for, 1 is January
	Year     int    `json:"year" example:"2024" minimum:"2000" maximum:"2100"` // Year the budget is for
	Category string `json:"category" example:"Food"`                         // Name of the category. Categories are created on first use
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(userID, categoryID uuid.UUID) (models.Budget, error) {
	if editable.Month < 1 || editable.Month > 12 {
		return models.Budget{}, errBudgetMonthInvalid
	}

	if editable.Year < 2000 || editable.Year > 2100 {
		return models.Budget{}, errBudgetYearInvalid
	}

	return models.Budget{
		Amount:     editable.Amount,
		Month:      types.NewMonth(editable.Year, time.Month(editable.Month)),
		CategoryID: categoryID,
		UserID:     userID,
	}, nil
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
}

// newBudget returns the API v1 representation of the resource. The model's
// Category needs to be preloaded.
func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Amount:   model.Amount,
			Month:    uint8(model.Month.MonthOfYear()),
			Year:     model.Month.Year(),
			Category: model.Category.Name,
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if the request was successful
}

type BudgetQueryFilter struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" filterField:"false"` // Budgets for this month in YYYY-MM format
}
