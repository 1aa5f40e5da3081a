package entity

import "fmt"

type PaymentMethod string

const (
	MethodCash         PaymentMethod = `CASH`
	MethodCreditCard   PaymentMethod = `CREDIT_CARD`
	MethodDebitCard    PaymentMethod = `DEBIT_CARD`
	MethodBankTransfer PaymentMethod = `BANK_TRANSFER`
)

func (m PaymentMethod) String() string {
	return string(m)
}

// ParsePaymentMethod maps the wire representation of a payment method
// to its enum value.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch PaymentMethod(value) {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodBankTransfer:
		return PaymentMethod(value), nil
	default:
		return PaymentMethod(""), fmt.Errorf("unknown payment method %q: %w", value, ErrValidation)
	}
}
