package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/reports"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetTransaction returns a specific transaction of the authenticated user.
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Category").Where(&models.Transaction{UserID: userID(c)}).First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// GetTransactions returns the transactions of the authenticated user,
// newest first. All filter predicates are optional and combined with a
// logical AND.
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var transactions []models.Transaction
	err := models.DB.
		Preload("Category").
		Where(&models.Transaction{UserID: userID(c)}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	matched := reports.FilterTransactions(transactions, filter.filter())
	total := int64(len(matched))

	// Cut the page out of the matched transactions. The offset does not
	// need checking since the default is 0, a limit below 0 disables the
	// limit. Defaults to 50 transactions.
	if filter.Offset > uint(len(matched)) {
		matched = nil
	} else {
		matched = matched[filter.Offset:]
	}

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	data := make([]Transaction, 0)
	for _, transaction := range matched {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// CreateTransactions creates transactions from the list of submitted
// transaction data. The response code is the highest response code number
// that a single transaction creation would have caused. If it is not equal
// to 201, at least one transaction has an error.
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		category, err := models.CategoryByName(models.DB, editable.Category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		transaction := editable.model(userID(c), category.ID)
		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		transaction.Category = category
		data := newTransaction(transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// UpdateTransaction updates an existing transaction. Only values to be
// updated need to be specified.
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Category").Where(&models.Transaction{UserID: userID(c)}).First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Type") {
		transaction.Type = update.Type
	}

	if slices.Contains(updateFields, "Amount") {
		transaction.Amount = update.Amount
	}

	if slices.Contains(updateFields, "Date") {
		transaction.Date = update.Date
	}

	if slices.Contains(updateFields, "Note") {
		transaction.Note = update.Note
	}

	if slices.Contains(updateFields, "Category") {
		category, err := models.CategoryByName(models.DB, update.Category)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &e,
			})
			return
		}

		transaction.CategoryID = category.ID
		transaction.Category = category
	}

	err = models.DB.Save(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// DeleteTransaction deletes a transaction of the authenticated user.
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Where(&models.Transaction{UserID: userID(c)}).First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
