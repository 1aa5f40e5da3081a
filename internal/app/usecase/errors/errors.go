package usecase

import "errors"

var (
	ErrNoCapableProvider   = errors.New("no registered provider supports requested payment method")
	ErrNoEvaluableProvider = errors.New("every capable provider failed to produce a commission quote")
	ErrProviderOperation   = errors.New("provider operation failed")
)
