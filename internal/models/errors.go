package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique  = errors.New("the account name must be unique for the user")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")

	// ErrResourceInUse is returned when a category or account still has
	// transactions referencing it and therefore cannot be deleted.
	ErrResourceInUse = errors.New("the resource is still referenced by transactions")

	ErrAmountNotPositive = errors.New("the transaction amount must be positive")
)
