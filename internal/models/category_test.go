package models_test

import (
	"time"

	"gorm.io/gorm"

	"github.com/zhangben/backend/internal/models"
)

func (suite *TestSuiteEnv) TestCategoryForNameDefaultsToExpense() {
	user := suite.createUser("types")

	// Anything that is not income creates an expense category.
	category, err := models.CategoryForName(models.DB, user.ID, "餐饮", "")
	suite.Require().NoError(err)
	suite.Assert().Equal(models.Expense, category.Type)

	income, err := models.CategoryForName(models.DB, user.ID, "工资", models.Income)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.Income, income.Type)
}

func (suite *TestSuiteEnv) TestCategoryForNameKeepsExistingType() {
	user := suite.createUser("existing")

	created, err := models.CategoryForName(models.DB, user.ID, "工资", models.Income)
	suite.Require().NoError(err)

	// The type argument only matters on creation.
	again, err := models.CategoryForName(models.DB, user.ID, "工资", models.Expense)
	suite.Require().NoError(err)
	suite.Assert().Equal(created.ID, again.ID)
	suite.Assert().Equal(models.Income, again.Type)
}

func (suite *TestSuiteEnv) TestCategoryForNameLosesCreateRace() {
	user := suite.createUser("race")

	// Same setup as the account variant: a competing row appears between
	// the missed lookup and the insert.
	var injected bool
	err := models.DB.Callback().Create().Before("gorm:create").Register("zhangben:test_race", func(tx *gorm.DB) {
		if injected || tx.Statement.Table != "categories" {
			return
		}
		injected = true

		now := time.Now().In(time.UTC)
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO categories (name, type, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			"餐饮", string(models.Expense), user.ID, now, now)
		suite.Require().NoError(err)
	})
	suite.Require().NoError(err)
	defer func() {
		suite.Require().NoError(models.DB.Callback().Create().Remove("zhangben:test_race"))
	}()

	db := models.DB.Session(&gorm.Session{SkipDefaultTransaction: true})

	category, err := models.CategoryForName(db, user.ID, "餐饮", models.Expense)
	suite.Require().NoError(err)
	suite.Assert().True(injected)

	var existing models.Category
	suite.Require().NoError(models.DB.First(&existing, "name = ? AND user_id = ?", "餐饮", user.ID).Error)
	suite.Assert().Equal(existing.ID, category.ID)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Where("name = ?", "餐饮").Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteEnv) TestCategoryNameNotUnique() {
	user := suite.createUser("unique")

	suite.Require().NoError(models.DB.Create(&models.Category{Name: "餐饮", Type: models.Expense, UserID: user.ID}).Error)

	err := models.DB.Create(&models.Category{Name: "餐饮", Type: models.Expense, UserID: user.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}
