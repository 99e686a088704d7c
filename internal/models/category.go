package models

import (
	"errors"

	"gorm.io/gorm"
)

// CategoryType is the direction of money flow for a category and the
// transactions referencing it.
type CategoryType string

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

// Category represents a transaction category, e.g. 餐饮 or 工资.
type Category struct {
	Model
	Name   string       `json:"name" gorm:"uniqueIndex:category_user_name"`
	Type   CategoryType `json:"type"`
	UserID uint         `json:"userId" gorm:"uniqueIndex:category_user_name"`
}

// CategoryForName returns the category with this name for the user,
// creating it when it does not exist yet.
//
// The type is only used on creation. Anything other than Income creates an
// expense category, since imported rows carry no category type of their own.
// Concurrent creates are resolved like in AccountForName.
func CategoryForName(db *gorm.DB, userID uint, name string, categoryType CategoryType) (Category, error) {
	var category Category

	err := db.Where(&Category{Name: name, UserID: userID}, "Name", "UserID").First(&category).Error
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Category{}, err
	}

	if categoryType != Income {
		categoryType = Expense
	}

	category = Category{Name: name, Type: categoryType, UserID: userID}
	err = db.Create(&category).Error
	if err == nil {
		return category, nil
	}

	if errors.Is(err, ErrCategoryNameNotUnique) {
		var existing Category
		if lookupErr := db.Where(&Category{Name: name, UserID: userID}, "Name", "UserID").First(&existing).Error; lookupErr == nil {
			return existing, nil
		}
	}

	return Category{}, err
}

// TransactionCount returns the number of transactions referencing the
// category. Categories with transactions cannot be deleted.
func (c Category) TransactionCount(db *gorm.DB) (int64, error) {
	var count int64

	err := db.Model(&Transaction{}).Where(&Transaction{CategoryID: c.ID}, "CategoryID").Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
