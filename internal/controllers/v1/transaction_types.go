package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/reports"
)

type TransactionEditable struct {
	Type models.TransactionType `json:"type" example:"EXPENSE" default:"EXPENSE"` // INCOME or EXPENSE

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Date     time.Time `json:"date" example:"2024-06-01T00:00:00Z"` // Date of the transaction. Defaults to the current time
	Note     string    `json:"note" example:"Lunch" default:""`     // A note
	Category string    `json:"category" example:"Food"`             // Name of the category. Categories are created on first use
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID, categoryID uuid.UUID) models.Transaction {
	return models.Transaction{
		Type:       editable.Type,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,
		CategoryID: categoryID,
		UserID:     userID,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API v1 representation of the resource. The
// model's Category needs to be preloaded.
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:     model.Type,
			Amount:   model.Amount,
			Date:     model.Date,
			Note:     model.Note,
			Category: model.Category.Name,
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	FromDate  time.Time       `form:"fromDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"`  // Transactions at and after this date
	UntilDate time.Time       `form:"untilDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"` // Transactions before and at this date
	Category  string          `form:"category" filterField:"false"`                                        // Category name contains this string. "All" matches everything
	MinAmount decimal.Decimal `form:"minAmount" filterField:"false"`                                       // Amount more than or equal to this
	MaxAmount decimal.Decimal `form:"maxAmount" filterField:"false"`                                       // Amount less than or equal to this
	Search    string          `form:"search" filterField:"false"`                                          // Note or category name contains this string
	Offset    uint            `form:"offset" filterField:"false"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`                                           // Maximum number of Transactions to return. Defaults to 50.
}

// filter returns the predicates for the aggregation engine. The untilDate
// matches on the day, so the bound is the last instant of that day.
func (f TransactionQueryFilter) filter() reports.Filter {
	until := f.UntilDate
	if !until.IsZero() {
		until = until.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return reports.Filter{
		From:      f.FromDate,
		Until:     until,
		Category:  f.Category,
		MinAmount: f.MinAmount,
		MaxAmount: f.MaxAmount,
		Search:    f.Search,
	}
}
