package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avorobev/payment-router/internal/app/entity"
)

// Response is the uniform shape every provider operation resolves to,
// regardless of the concrete provider behind the contract.
type Response struct {
	Success   bool
	Message   string
	OrderRef  string
	Amount    decimal.Decimal
	Status    string
	Timestamp time.Time
	Payload   map[string]any
}

// PaymentProvider is the capability contract an integrated payment
// provider must satisfy. The core routes orders purely through this
// interface and never sees concrete adapter types.
type PaymentProvider interface {
	Name() string
	SupportsMethod(method entity.PaymentMethod) bool

	// Commission quotes the provider's charge for handling the given
	// order. Quoting mutates no provider state.
	Commission(ctx context.Context, order *entity.Order) (decimal.Decimal, error)

	CreateOrder(ctx context.Context, order *entity.Order) (Response, error)
	CancelOrder(ctx context.Context, providerRef string) (Response, error)
	PayOrder(ctx context.Context, providerRef string) (Response, error)
	GetOrder(ctx context.Context, providerRef string) (Response, error)
	ListOrders(ctx context.Context) ([]Response, error)
}
