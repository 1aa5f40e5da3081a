package entity

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrIllegalState = errors.New("operation is not allowed in current order state")
)
