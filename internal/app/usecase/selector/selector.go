package selector

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/provider"
	err_usecase "github.com/avorobev/payment-router/internal/app/usecase/errors"
)

// quoteResult pairs a provider with the outcome of its commission quote.
// A failed quote excludes the provider from consideration without
// aborting the selection.
type quoteResult struct {
	provider   provider.PaymentProvider
	commission decimal.Decimal
	err        error
}

// Selector performs cost-optimal provider routing over a fixed set of
// providers established at construction time.
type Selector struct {
	providers []provider.PaymentProvider
}

func New(providers ...provider.PaymentProvider) *Selector {
	return &Selector{
		providers: providers,
	}
}

// SelectOptimalProvider returns the capable provider quoting the lowest
// commission for the given order. Quotes are requested concurrently, but
// the minimum scan walks results in registration order, so on an equal
// minimum the first registered provider wins.
func (s *Selector) SelectOptimalProvider(ctx context.Context, order *entity.Order) (provider.PaymentProvider, decimal.Decimal, error) {
	capable := make([]provider.PaymentProvider, 0, len(s.providers))
	for _, p := range s.providers {
		if p.SupportsMethod(order.PaymentMethod()) {
			capable = append(capable, p)
		}
	}

	if len(capable) == 0 {
		return nil, decimal.Zero, fmt.Errorf("payment method %s: %w", order.PaymentMethod(), err_usecase.ErrNoCapableProvider)
	}

	results := make([]quoteResult, len(capable))

	wg := sync.WaitGroup{}
	for i, p := range capable {
		wg.Add(1)
		go func(i int, p provider.PaymentProvider) {
			defer wg.Done()

			commission, err := p.Commission(ctx, order)
			results[i] = quoteResult{
				provider:   p,
				commission: commission,
				err:        err,
			}
		}(i, p)
	}
	wg.Wait()

	var best *quoteResult
	for i := range results {
		result := &results[i]
		if result.err != nil {
			zap.L().Warn("provider excluded from selection: commission quote failed",
				zap.String("provider", result.provider.Name()),
				zap.Error(result.err))
			continue
		}

		if best == nil || result.commission.LessThan(best.commission) {
			best = result
		}
	}

	if best == nil {
		return nil, decimal.Zero, err_usecase.ErrNoEvaluableProvider
	}

	return best.provider, best.commission, nil
}

// GetProviderByName looks a provider up by case-insensitive name.
// Absence is a lookup miss, not an error; the caller decides whether it
// is fatal.
func (s *Selector) GetProviderByName(name string) (provider.PaymentProvider, bool) {
	for _, p := range s.providers {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}

	return nil, false
}
