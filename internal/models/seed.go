package models

import (
	"errors"

	"gorm.io/gorm"
)

// Seed creates the demo user and their starter categories and accounts.
// Every resource is guarded by a lookup, so seeding is idempotent.
func Seed(db *gorm.DB) error {
	var user User

	err := db.Where(&User{Username: "admin"}).First(&user).Error
	if errors.Is(err, ErrResourceNotFound) {
		user = User{Username: "admin", Password: "password"}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	categories := []Category{
		{Name: "餐饮", Type: Expense},
		{Name: "交通", Type: Expense},
		{Name: "工资", Type: Income},
		{Name: "奖金", Type: Income},
	}

	for _, category := range categories {
		if _, err := CategoryForName(db, user.ID, category.Name, category.Type); err != nil {
			return err
		}
	}

	for _, name := range []string{"现金", "支付宝", "微信", "银行卡 1234"} {
		if _, err := AccountForName(db, user.ID, name); err != nil {
			return err
		}
	}

	return nil
}
