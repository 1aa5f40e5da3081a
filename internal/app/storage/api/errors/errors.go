package storage

import "errors"

var (
	ErrOrderNotFound = errors.New("order with given id doesn't exist in storage")
)
