package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetBudget returns a specific budget of the authenticated user.
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.Preload("Category").Where(&models.Budget{UserID: userID(c)}).First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// GetBudgets returns the budgets of the authenticated user, optionally
// restricted to one month.
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Preload("Category").
		Where(&models.Budget{UserID: userID(c)}).
		Order("budgets.month ASC, budgets.created_at ASC")

	if !filter.Month.IsZero() {
		q = q.Where("budgets.month = ?", types.MonthOf(filter.Month))
	}

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// CreateBudgets creates budgets from the list of submitted budget data.
// The response code is the highest response code number that a single
// budget creation would have caused.
func CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		category, err := models.CategoryByName(models.DB, editable.Category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		budget, err := editable.model(userID(c), category.ID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		budget.Category = category
		data := newBudget(budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// UpdateBudget updates an existing budget. Only values to be updated need
// to be specified.
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.Preload("Category").Where(&models.Budget{UserID: userID(c)}).First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update BudgetEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	// Fill the untouched fields with the current values so that the
	// month and year validation works on the combined state
	if !slices.Contains(updateFields, "Month") {
		update.Month = uint8(budget.Month.MonthOfYear())
	}

	if !slices.Contains(updateFields, "Year") {
		update.Year = budget.Month.Year()
	}

	if slices.Contains(updateFields, "Amount") {
		budget.Amount = update.Amount
	}

	updated, err := update.model(budget.UserID, budget.CategoryID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}
	budget.Month = updated.Month

	if slices.Contains(updateFields, "Category") {
		category, err := models.CategoryByName(models.DB, update.Category)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetResponse{
				Error: &e,
			})
			return
		}

		budget.CategoryID = category.ID
		budget.Category = category
	}

	err = models.DB.Save(&budget).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// DeleteBudget deletes a budget of the authenticated user.
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.Where(&models.Budget{UserID: userID(c)}).First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
