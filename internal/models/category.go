package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Category groups transactions and budgets. Categories are shared between
// users and referenced by name: resources attach to a category by matching
// its name, creating it if it does not exist yet.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
}

var ErrCategoryNameNotUnique = errors.New("the category name is already in use")

var ErrCategoryNameEmpty = errors.New("the category name must be set")

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// CategoryByName returns the category with the name, creating it if no
// category with that name exists yet.
func CategoryByName(db *gorm.DB, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrCategoryNameEmpty
	}

	var category Category
	err := db.Where(&Category{Name: name}).FirstOrCreate(&category, Category{Name: name}).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}
