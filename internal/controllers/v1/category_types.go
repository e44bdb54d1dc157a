package v1

import (
	"github.com/spendwise/backend/internal/models"
)

type CategoryEditable struct {
	Name string `json:"name" example:"Groceries"` // Name of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
}

// newCategory returns the API v1 representation of the resource
func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                            // List of categories
	Error *string    `json:"error" example:"the category name must be unique"` // The error, if any occurred
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the category name must be unique"` // The error, if any occurred
	Data  *Category `json:"data"`                                             // The Category data, if the request was successful
}
