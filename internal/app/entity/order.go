package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCreated    OrderStatus = `CREATED`
	StatusProcessing OrderStatus = `PROCESSING`
	StatusPaid       OrderStatus = `PAID`
	StatusCancelled  OrderStatus = `CANCELLED`
	StatusFailed     OrderStatus = `FAILED`
)

func (s OrderStatus) String() string {
	return string(s)
}

type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is always derived, never stored.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Fee struct {
	Name   string
	Amount decimal.Decimal
}

type Orders []*Order

// Order is the aggregate tracking a payment from creation to a terminal
// state. Fields are unexported so every mutation goes through a method
// that preserves the lifecycle and amount invariants.
type Order struct {
	id int64

	method PaymentMethod
	items  []Item
	fees   []Fee
	amount decimal.Decimal
	status OrderStatus

	providerName string
	providerRef  string

	createdAt   time.Time
	paidAt      *time.Time
	cancelledAt *time.Time
}

func NewOrder(method PaymentMethod, items []Item) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", ErrValidation)
	}

	for _, item := range items {
		if len(strings.TrimSpace(item.Name)) == 0 {
			return nil, fmt.Errorf("item name is empty: %w", ErrValidation)
		}
		if !item.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("item %q unit price must be positive: %w", item.Name, ErrValidation)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %q quantity must be positive: %w", item.Name, ErrValidation)
		}
	}

	order := &Order{
		method:    method,
		items:     append([]Item(nil), items...),
		status:    StatusCreated,
		createdAt: time.Now(),
	}
	order.recalculateAmount()

	return order, nil
}

func (o *Order) ID() int64 {
	return o.id
}

// SetID is called by the storage layer at first persistence. The id is
// assigned exactly once.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return fmt.Errorf("order id already assigned: %w", ErrIllegalState)
	}
	if id <= 0 {
		return fmt.Errorf("order id must be positive: %w", ErrValidation)
	}

	o.id = id

	return nil
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.method
}

func (o *Order) Status() OrderStatus {
	return o.status
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Fees() []Fee {
	return append([]Fee(nil), o.fees...)
}

func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

func (o *Order) ProviderName() string {
	return o.providerName
}

func (o *Order) ProviderRef() string {
	return o.providerRef
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// AssignToProvider records the provider the order has been routed to and
// moves the order to PROCESSING. Legal only for a freshly created order.
func (o *Order) AssignToProvider(providerName, providerRef string) error {
	if o.status != StatusCreated {
		return fmt.Errorf("cannot assign order in status %s to provider: %w", o.status, ErrIllegalState)
	}
	if len(strings.TrimSpace(providerName)) == 0 {
		return fmt.Errorf("provider name is empty: %w", ErrValidation)
	}
	if len(strings.TrimSpace(providerRef)) == 0 {
		return fmt.Errorf("provider order reference is empty: %w", ErrValidation)
	}

	o.providerName = providerName
	o.providerRef = providerRef
	o.status = StatusProcessing

	return nil
}

func (o *Order) MarkAsPaid() error {
	if o.status != StatusProcessing {
		return fmt.Errorf("cannot pay order in status %s: %w", o.status, ErrIllegalState)
	}

	now := time.Now()
	o.status = StatusPaid
	o.paidAt = &now

	return nil
}

func (o *Order) Cancel() error {
	if o.status != StatusCreated && o.status != StatusProcessing {
		return fmt.Errorf("cannot cancel order in status %s: %w", o.status, ErrIllegalState)
	}

	now := time.Now()
	o.status = StatusCancelled
	o.cancelledAt = &now

	return nil
}

// MarkAsFailed moves the order to FAILED. The reason is logged by the
// caller, not stored on the order.
func (o *Order) MarkAsFailed(reason string) error {
	if o.status != StatusCreated && o.status != StatusProcessing {
		return fmt.Errorf("cannot fail order in status %s: %w", o.status, ErrIllegalState)
	}

	o.status = StatusFailed

	return nil
}

// AddFee appends a surcharge and recomputes the order amount. Settled
// orders keep their totals, so fees are accepted only while the order is
// CREATED or PROCESSING.
func (o *Order) AddFee(name string, amount decimal.Decimal) error {
	if o.status != StatusCreated && o.status != StatusProcessing {
		return fmt.Errorf("cannot add fee to order in status %s: %w", o.status, ErrIllegalState)
	}
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("fee name is empty: %w", ErrValidation)
	}
	if amount.IsNegative() {
		return fmt.Errorf("fee %q amount must be non-negative: %w", name, ErrValidation)
	}

	o.fees = append(o.fees, Fee{Name: name, Amount: amount})
	o.recalculateAmount()

	return nil
}

func (o *Order) recalculateAmount() {
	amount := decimal.Zero
	for _, item := range o.items {
		amount = amount.Add(item.Subtotal())
	}
	for _, fee := range o.fees {
		amount = amount.Add(fee.Amount)
	}

	o.amount = amount
}
