package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrNationalIDExists  = errors.New("national id already registered")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
)
