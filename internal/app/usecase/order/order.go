package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avorobev/payment-router/internal/app/entity"
	"github.com/avorobev/payment-router/internal/app/provider"
	"github.com/avorobev/payment-router/internal/app/storage/api/model"
	err_usecase "github.com/avorobev/payment-router/internal/app/usecase/errors"
)

// ProviderSelector abstracts the routing component so the orchestration
// flow can be exercised with stub provider sets in tests.
type ProviderSelector interface {
	SelectOptimalProvider(ctx context.Context, order *entity.Order) (provider.PaymentProvider, decimal.Decimal, error)
	GetProviderByName(name string) (provider.PaymentProvider, bool)
}

// Service combines the order aggregate, the provider selector and the
// order storage into the create/cancel/pay flows.
type Service struct {
	storage  model.Storage
	selector ProviderSelector
}

func New(storage model.Storage, selector ProviderSelector) *Service {
	return &Service{
		storage:  storage,
		selector: selector,
	}
}

// CreateOrder persists a fresh order, routes it to the cheapest capable
// provider, charges that provider's commission as a fee and mirrors the
// order remotely. If selection fails, the order stays persisted in
// CREATED state with no provider assigned. If the remote create fails,
// the order is marked FAILED and persisted.
func (s *Service) CreateOrder(ctx context.Context, method entity.PaymentMethod, items []entity.Item) (*entity.Order, error) {
	order, err := entity.NewOrder(method, items)
	if err != nil {
		return nil, err
	}

	err = s.storage.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error while saving order: %w", err)
	}

	winner, commission, err := s.selector.SelectOptimalProvider(ctx, order)
	if err != nil {
		return nil, err
	}

	err = order.AddFee(fmt.Sprintf("%s commission", winner.Name()), commission)
	if err != nil {
		return nil, err
	}

	resp, err := winner.CreateOrder(ctx, order)
	if err != nil || !resp.Success {
		s.failOrder(ctx, order, winner.Name(), resp.Message, err)
		return nil, fmt.Errorf("create order at provider %s: %w", winner.Name(), err_usecase.ErrProviderOperation)
	}

	err = order.AssignToProvider(winner.Name(), resp.OrderRef)
	if err != nil {
		return nil, err
	}

	err = s.storage.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error while updating order after provider assignment: %w", err)
	}

	zap.L().Info("order routed to provider",
		zap.Int64("order_id", order.ID()),
		zap.String("provider", winner.Name()),
		zap.String("commission", commission.String()))

	return order, nil
}

// CancelOrder cancels an order. When a provider is attached, the remote
// cancellation runs first and its failure blocks the local transition.
func (s *Service) CancelOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(order.ProviderName()) != 0 {
		err = s.mirrorRemote(ctx, order, provider.PaymentProvider.CancelOrder)
		if err != nil {
			return nil, err
		}
	}

	err = order.Cancel()
	if err != nil {
		return nil, err
	}

	err = s.storage.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error while updating cancelled order: %w", err)
	}

	return order, nil
}

// PayOrder marks a PROCESSING order as paid, mirroring the state change
// at the assigned provider before committing it locally.
func (s *Service) PayOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status() != entity.StatusProcessing {
		return nil, fmt.Errorf("cannot pay order in status %s: %w", order.Status(), entity.ErrIllegalState)
	}

	if len(order.ProviderName()) != 0 {
		err = s.mirrorRemote(ctx, order, provider.PaymentProvider.PayOrder)
		if err != nil {
			return nil, err
		}
	}

	err = order.MarkAsPaid()
	if err != nil {
		return nil, err
	}

	err = s.storage.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error while updating paid order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	return s.storage.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) (entity.Orders, error) {
	return s.storage.GetAll(ctx)
}

// mirrorRemote replays a local state change at the assigned provider.
// The local order is left untouched on any remote failure.
func (s *Service) mirrorRemote(ctx context.Context, order *entity.Order, op func(provider.PaymentProvider, context.Context, string) (provider.Response, error)) error {
	p, ok := s.selector.GetProviderByName(order.ProviderName())
	if !ok {
		return fmt.Errorf("provider %s is not registered: %w", order.ProviderName(), err_usecase.ErrProviderOperation)
	}

	resp, err := op(p, ctx, order.ProviderRef())
	if err != nil {
		return fmt.Errorf("provider %s: %s: %w", p.Name(), err.Error(), err_usecase.ErrProviderOperation)
	}
	if !resp.Success {
		return fmt.Errorf("provider %s: %s: %w", p.Name(), resp.Message, err_usecase.ErrProviderOperation)
	}

	return nil
}

func (s *Service) failOrder(ctx context.Context, order *entity.Order, providerName, message string, cause error) {
	zap.L().Error("remote order creation failed",
		zap.Int64("order_id", order.ID()),
		zap.String("provider", providerName),
		zap.String("message", message),
		zap.Error(cause))

	err := order.MarkAsFailed(message)
	if err != nil {
		zap.L().Error("error while marking order as failed", zap.Error(err))
		return
	}

	err = s.storage.Update(ctx, order)
	if err != nil {
		zap.L().Error("error while persisting failed order", zap.Error(err))
	}
}
