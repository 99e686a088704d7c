package models

// User represents a registered user. All accounts, categories and
// transactions belong to exactly one user.
type User struct {
	Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
}
