package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	Model
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Type       CategoryType    `json:"type"`
	Time       time.Time       `json:"time"`
	Note       string          `json:"note"`
	CategoryID uint            `json:"categoryId"`
	Category   Category        `json:"category"`
	AccountID  uint            `json:"accountId"`
	Account    Account         `json:"account"`
	UserID     uint            `json:"userId"`
}

// BeforeSave sets the timezone for the Time to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Time.IsZero() {
		t.Time = time.Now().In(time.UTC)
	} else {
		t.Time = t.Time.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamp to use UTC as timezone, not +0000.
//
// We already store it in UTC, but reading it from the database returns
// it as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Time = t.Time.In(time.UTC)
	return nil
}

// FindDuplicate returns an existing transaction of the user with the same
// amount, time, account and note.
//
// This fingerprint stands in for a stable provider transaction ID, which
// the export formats do not carry. Two genuinely distinct transactions
// that agree on all four fields are treated as the same event.
//
// Stored times are normalized to UTC by BeforeSave, so the probe time is
// converted to UTC as well and the column compared directly. This keeps
// the query portable across the sqlite and postgresql drivers.
func FindDuplicate(db *gorm.DB, userID uint, amount decimal.Decimal, occurredAt time.Time, accountID uint, note string) (Transaction, bool, error) {
	var transaction Transaction

	err := db.
		Where(&Transaction{
			UserID:    userID,
			AccountID: accountID,
			Amount:    amount,
			Note:      note,
			Time:      occurredAt.In(time.UTC),
		}, "UserID", "AccountID", "Amount", "Note", "Time").
		First(&transaction).Error
	if err == nil {
		return transaction, true, nil
	}

	if errors.Is(err, ErrResourceNotFound) {
		return Transaction{}, false, nil
	}

	return Transaction{}, false, err
}
