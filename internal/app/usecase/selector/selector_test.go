package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/provider"
	err_usecase "github.com/avorobev/payment-router/internal/app/usecase/errors"
)

type stubProvider struct {
	name       string
	methods    []entity.PaymentMethod
	commission decimal.Decimal
	quoteErr   error

	quoteCalls int
}

func (p *stubProvider) Name() string {
	return p.name
}

func (p *stubProvider) SupportsMethod(method entity.PaymentMethod) bool {
	for _, m := range p.methods {
		if m == method {
			return true
		}
	}
	return false
}

func (p *stubProvider) Commission(ctx context.Context, order *entity.Order) (decimal.Decimal, error) {
	p.quoteCalls++
	return p.commission, p.quoteErr
}

func (p *stubProvider) CreateOrder(ctx context.Context, order *entity.Order) (provider.Response, error) {
	return provider.Response{}, nil
}

func (p *stubProvider) CancelOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	return provider.Response{}, nil
}

func (p *stubProvider) PayOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	return provider.Response{}, nil
}

func (p *stubProvider) GetOrder(ctx context.Context, providerRef string) (provider.Response, error) {
	return provider.Response{}, nil
}

func (p *stubProvider) ListOrders(ctx context.Context) ([]provider.Response, error) {
	return nil, nil
}

func cashOrder(t *testing.T) *entity.Order {
	t.Helper()

	order, err := entity.NewOrder(entity.MethodCash, []entity.Item{
		{Name: "router", UnitPrice: decimal.NewFromInt(100), Quantity: 1},
	})
	require.NoError(t, err)

	return order
}

func TestSelectOptimalProvider(t *testing.T) {
	t.Run("picks cheapest provider", func(t *testing.T) {
		a := &stubProvider{name: "A", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(12.00)}
		b := &stubProvider{name: "B", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(8.50)}
		c := &stubProvider{name: "C", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(9.99)}

		s := New(a, b, c)

		winner, commission, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
		require.NoError(t, err)
		assert.Equal(t, "B", winner.Name())
		assert.True(t, commission.Equal(decimal.NewFromFloat(8.50)))
	})

	t.Run("quote failure excludes provider without aborting", func(t *testing.T) {
		a := &stubProvider{name: "A", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(12.00)}
		b := &stubProvider{name: "B", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(8.50)}
		c := &stubProvider{name: "C", methods: []entity.PaymentMethod{entity.MethodCash}, quoteErr: errors.New("connection refused")}

		s := New(a, b, c)

		winner, commission, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
		require.NoError(t, err)
		assert.Equal(t, "B", winner.Name())
		assert.True(t, commission.Equal(decimal.NewFromFloat(8.50)))
	})

	t.Run("all capable providers fail to quote", func(t *testing.T) {
		a := &stubProvider{name: "A", methods: []entity.PaymentMethod{entity.MethodCash}, quoteErr: errors.New("timeout")}
		b := &stubProvider{name: "B", methods: []entity.PaymentMethod{entity.MethodCash}, quoteErr: errors.New("internal error")}

		s := New(a, b)

		_, _, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
		require.ErrorIs(t, err, err_usecase.ErrNoEvaluableProvider)
	})

	t.Run("no capable provider", func(t *testing.T) {
		a := &stubProvider{name: "A", methods: []entity.PaymentMethod{entity.MethodCreditCard}, commission: decimal.NewFromInt(1)}

		s := New(a)

		_, _, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
		require.ErrorIs(t, err, err_usecase.ErrNoCapableProvider)
		assert.Zero(t, a.quoteCalls)
	})

	t.Run("incapable provider is never queried nor selected", func(t *testing.T) {
		cardOnly := &stubProvider{name: "cards", methods: []entity.PaymentMethod{entity.MethodCreditCard, entity.MethodDebitCard}, commission: decimal.NewFromFloat(0.01)}
		cash := &stubProvider{name: "cash", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromInt(50)}

		s := New(cardOnly, cash)

		winner, _, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
		require.NoError(t, err)
		assert.Equal(t, "cash", winner.Name())
		assert.Zero(t, cardOnly.quoteCalls)
		assert.Equal(t, 1, cash.quoteCalls)
	})

	t.Run("equal minimum goes to first registered provider", func(t *testing.T) {
		a := &stubProvider{name: "A", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(5.00)}
		b := &stubProvider{name: "B", methods: []entity.PaymentMethod{entity.MethodCash}, commission: decimal.NewFromFloat(5.00)}

		s := New(a, b)

		for i := 0; i < 20; i++ {
			winner, _, err := s.SelectOptimalProvider(context.Background(), cashOrder(t))
			require.NoError(t, err)
			require.Equal(t, "A", winner.Name())
		}
	})
}

func TestGetProviderByName(t *testing.T) {
	a := &stubProvider{name: "AlphaPay"}
	b := &stubProvider{name: "BetaPay"}

	s := New(a, b)

	found, ok := s.GetProviderByName("alphapay")
	require.True(t, ok)
	assert.Equal(t, "AlphaPay", found.Name())

	found, ok = s.GetProviderByName("BETAPAY")
	require.True(t, ok)
	assert.Equal(t, "BetaPay", found.Name())

	_, ok = s.GetProviderByName("GammaPay")
	assert.False(t, ok)
}
