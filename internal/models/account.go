package models

import (
	"errors"

	"gorm.io/gorm"
)

// Account represents a payment account, e.g. a wallet or a masked bank card.
type Account struct {
	Model
	Name   string `json:"name" gorm:"uniqueIndex:account_user_name"`
	UserID uint   `json:"userId" gorm:"uniqueIndex:account_user_name"`
}

// AccountForName returns the account with this name for the user, creating
// it when it does not exist yet.
//
// When two imports discover the same account concurrently, one create wins
// and the other resolves the unique constraint error with a second lookup.
func AccountForName(db *gorm.DB, userID uint, name string) (Account, error) {
	var account Account

	err := db.Where(&Account{Name: name, UserID: userID}, "Name", "UserID").First(&account).Error
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Account{}, err
	}

	account = Account{Name: name, UserID: userID}
	err = db.Create(&account).Error
	if err == nil {
		return account, nil
	}

	if errors.Is(err, ErrAccountNameNotUnique) {
		var existing Account
		if lookupErr := db.Where(&Account{Name: name, UserID: userID}, "Name", "UserID").First(&existing).Error; lookupErr == nil {
			return existing, nil
		}
	}

	return Account{}, err
}

// TransactionCount returns the number of transactions referencing the
// account. Accounts with transactions cannot be deleted.
func (a Account) TransactionCount(db *gorm.DB) (int64, error) {
	var count int64

	err := db.Model(&Transaction{}).Where(&Transaction{AccountID: a.ID}, "AccountID").Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
